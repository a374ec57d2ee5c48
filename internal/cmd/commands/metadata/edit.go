package metadata

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/dsapi/internal/cmd/base"
	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

type EditCommand struct {
	*base.Command

	conn base.ConnectionFlags

	flagID   string
	flagFile string
}

func (c *EditCommand) Synopsis() string {
	return "Replace metadata fields of an item"
}

func (c *EditCommand) Help() string {
	return `Usage: dsapi edit-metadata -id <item id> -file <entry file> [options]

  This command sends a metadata entry to DSpace for the item with the given
  internal id. The entry file holds a list of {key, value, language} records
  in JSON, or in YAML when the file name ends in .yaml or .yml.` +
		c.Flags().Help()
}

func (c *EditCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("edit-metadata", flag.ContinueOnError))
	c.conn.AddFlags(f)

	f.StringVar(
		&c.flagID, "id", "",
		"(Required) Internal id of the item. DSpace cannot edit metadata by handle.",
	)
	f.StringVar(
		&c.flagFile, "file", "",
		"(Required) Path to the metadata entry file.",
	)

	return f
}

func (c *EditCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagFile == "" {
		ui.Error("file flag is required")
		return 1
	}

	entry, err := c.readEntry(c.flagFile)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading metadata entry: %v", err))
		return 1
	}

	req, err := dspace.EditItemMetadata(c.flagID, entry)
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

	if _, err := client.Send(ctx, req); err != nil {
		ui.Error(fmt.Sprintf("error editing item metadata: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Updated metadata of item %s", c.flagID))
	return 0
}

// readEntry decodes the entry file without imposing a shape; validation is
// left to dspace.EditItemMetadata.
func (c *EditCommand) readEntry(path string) (any, error) {
	src, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		return nil, err
	}

	var entry any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(src, &entry)
	default:
		err = json.Unmarshal(src, &entry)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return entry, nil
}
