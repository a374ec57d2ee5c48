package status

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/dsapi/internal/cmd/base"
	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

type Command struct {
	*base.Command

	conn   base.ConnectionFlags
	output base.OutputFlags
}

func (c *Command) Synopsis() string {
	return "Show the DSpace API status for the logged-in e-person"
}

func (c *Command) Help() string {
	return `Usage: dsapi status [options]

  This command logs in to DSpace and prints the reply of the status endpoint.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("status", flag.ContinueOnError))
	c.conn.AddFlags(f)
	c.output.AddFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
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

	ctx := context.Background()

	client, err := c.Connect(ctx, &c.conn)
	if err != nil {
		ui.Error(fmt.Sprintf("error connecting to DSpace: %v", err))
		return 1
	}

	payload, err := client.Send(ctx, dspace.Status())
	if err != nil {
		ui.Error(fmt.Sprintf("error getting status: %v", err))
		return 1
	}

	if err := c.Output(payload, &c.output); err != nil {
		ui.Error(err.Error())
		return 1
	}

	return 0
}
