package base

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

// OutputFlags select how structured payloads are printed.
type OutputFlags struct {
	Format string
}

// AddFlags registers the output flags on f.
func (of *OutputFlags) AddFlags(f *FlagSet) {
	f.StringVar(
		&of.Format, "format", "json",
		"Output format for JSON payloads: json or yaml. XML payloads are always printed as XML.",
	)
}

// Validate checks the output format.
func (of *OutputFlags) Validate() error {
	switch of.Format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid format %q, must be json or yaml", of.Format)
	}
}

// Output prints a decoded payload to the UI.
func (c *Command) Output(p dspace.Payload, of *OutputFlags) error {
	if tree, ok := p.(dspace.Tree); ok {
		doc := etree.NewDocument()
		doc.SetRoot(tree.Root.Copy())
		doc.Indent(2)
		out, err := doc.WriteToString()
		if err != nil {
			return fmt.Errorf("error rendering XML: %w", err)
		}
		c.UI.Output(strings.TrimRight(out, "\n"))
		return nil
	}

	return c.OutputValue(p.Value(), of)
}

// OutputValue prints v as JSON or YAML.
func (c *Command) OutputValue(v any, of *OutputFlags) error {
	var (
		out []byte
		err error
	)
	switch of.Format {
	case "yaml":
		out, err = yaml.Marshal(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", of.Format, err)
	}

	c.UI.Output(strings.TrimRight(string(out), "\n"))
	return nil
}
