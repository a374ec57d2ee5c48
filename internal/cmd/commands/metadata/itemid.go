package metadata

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/dsapi/internal/cmd/base"
	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

type ItemIDCommand struct {
	*base.Command

	conn base.ConnectionFlags

	flagHandle string
}

func (c *ItemIDCommand) Synopsis() string {
	return "Print the internal id of the item with a handle"
}

func (c *ItemIDCommand) Help() string {
	return `Usage: dsapi item-id -handle <handle> [options]

  This command resolves a handle to the internal item id needed by
  edit-metadata.` +
		c.Flags().Help()
}

func (c *ItemIDCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("item-id", flag.ContinueOnError))
	c.conn.AddFlags(f)

	f.StringVar(
		&c.flagHandle, "handle", "",
		"(Required) Handle of the item, e.g. 123456789/1.",
	)

	return f
}

func (c *ItemIDCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagHandle == "" {
		ui.Error("handle flag is required")
		return 1
	}

	req, err := dspace.GetItemMetadata(dspace.ItemRef{Handle: c.flagHandle})
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
		ui.Error(fmt.Sprintf("error getting item: %v", err))
		return 1
	}

	id, err := dspace.ItemID(payload)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading item id: %v", err))
		return 1
	}

	ui.Output(id)
	return 0
}
