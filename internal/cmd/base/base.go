// Package base holds what every dsapi command shares: the logger, the UI,
// flag handling and the connection to DSpace.
package base

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Command is embedded by every dsapi command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	Fs  afero.Fs

	// LookupEnv is used for flag fallbacks and env() in config files.
	LookupEnv func(string) (string, bool)
}

// New returns a Command backed by the OS filesystem and environment.
func New(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:       log,
		UI:        ui,
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

func (c *Command) lookupEnv(name string) (string, bool) {
	if c.LookupEnv == nil {
		return os.LookupEnv(name)
	}
	return c.LookupEnv(name)
}

// FlagSet wraps flag.FlagSet to render help text in command usage.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Flag output is discarded; commands report parse errors
// through the UI.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(&bytes.Buffer{})
	return &FlagSet{FlagSet: f}
}

// Help returns the flag section of a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s\n", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "      Default: %s\n", fl.DefValue)
		}
		fmt.Fprintf(&b, "      %s\n", fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}
