package version

import (
	"github.com/hashicorp-forge/dsapi/internal/cmd/base"
	"github.com/hashicorp-forge/dsapi/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the dsapi version"
}

func (c *Command) Help() string {
	return "Usage: dsapi version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output("dsapi v" + version.Version)
	return 0
}
