package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/dsapi/internal/cmd/base"
	"github.com/hashicorp-forge/dsapi/internal/cmd/commands/metadata"
	"github.com/hashicorp-forge/dsapi/internal/cmd/commands/status"
	"github.com/hashicorp-forge/dsapi/internal/cmd/commands/version"
)

// Commands returns the factories for every dsapi subcommand.
func Commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := base.New(log, ui)

	return map[string]cli.CommandFactory{
		"status": func() (cli.Command, error) {
			return &status.Command{Command: b}, nil
		},
		"get-metadata": func() (cli.Command, error) {
			return &metadata.GetCommand{Command: b}, nil
		},
		"edit-metadata": func() (cli.Command, error) {
			return &metadata.EditCommand{Command: b}, nil
		},
		"item-id": func() (cli.Command, error) {
			return &metadata.ItemIDCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
