package metadata

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/dsapi/internal/cmd/base"
	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

type GetCommand struct {
	*base.Command

	conn   base.ConnectionFlags
	output base.OutputFlags

	flagHandle string
	flagID     string
	flagField  string
}

func (c *GetCommand) Synopsis() string {
	return "Print the metadata of an item"
}

func (c *GetCommand) Help() string {
	return `Usage: dsapi get-metadata [options]

  This command prints the metadata of the item identified by -handle or -id.
  With -field, only the non-empty values of that field are printed, one per
  line.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get-metadata", flag.ContinueOnError))
	c.conn.AddFlags(f)
	c.output.AddFlags(f)

	f.StringVar(
		&c.flagHandle, "handle", "",
		"Handle of the item, e.g. 123456789/1. Takes precedence over -id.",
	)
	f.StringVar(
		&c.flagID, "id", "",
		"Internal id of the item.",
	)
	f.StringVar(
		&c.flagField, "field", "",
		"Only print the values of this metadata field, e.g. dc.title.",
	)

	return f
}

func (c *GetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if err := c.output.Validate(); err != nil {
		ui.Error(err.Error())
		return 1
	}

	// Build the request before connecting so bad input costs no login.
	req, err := dspace.GetItemMetadata(dspace.ItemRef{Handle: c.flagHandle, ID: c.flagID})
	if err != nil {
		ui.Error(fmt.Sprintf("error building request: %v", err))
		return 1
	}

	ctx := context.Background()

	client, err := c.Connect(ctx, &c.conn)
	if err != nil {
		ui.Error(fmt.Sprintf("error connecting to DSpace: %v", err))
		return 1
	}

	payload, err := client.Send(ctx, req)
	if err != nil {
		ui.Error(fmt.Sprintf("error getting item metadata: %v", err))
		return 1
	}

	if c.flagField == "" {
		if err := c.Output(payload, &c.output); err != nil {
			ui.Error(err.Error())
			return 1
		}
		return 0
	}

	md, err := dspace.Metadata(payload)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading item metadata: %v", err))
		return 1
	}
	for _, v := range dspace.MetadataValues(md, c.flagField) {
		ui.Output(v)
	}

	return 0
}
