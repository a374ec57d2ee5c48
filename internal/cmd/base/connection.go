package base

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/dsapi/internal/config"
	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

// ConnectionFlags are the flags every command talking to DSpace accepts.
// Flags win over environment variables, which win over the config file.
type ConnectionFlags struct {
	Config      string
	BaseURL     string
	Username    string
	Password    string
	ContentType string
	LogLevel    string
}

// AddFlags registers the connection flags on f.
func (cf *ConnectionFlags) AddFlags(f *FlagSet) {
	f.StringVar(
		&cf.Config, "config", "",
		"[DSPACE_CONFIG] Path to the dsapi config file.",
	)
	f.StringVar(
		&cf.BaseURL, "url", "",
		"[DSPACE_URL] DSpace REST API base URL, e.g. https://demo.dspace.org/rest.",
	)
	f.StringVar(
		&cf.Username, "username", "",
		"[DSPACE_USERNAME] E-person email used to log in.",
	)
	f.StringVar(
		&cf.Password, "password", "",
		"[DSPACE_PASSWORD] E-person password.",
	)
	f.StringVar(
		&cf.ContentType, "content-type", "",
		"Content type requested from DSpace: json or xml. Default: json.",
	)
	f.StringVar(
		&cf.LogLevel, "log-level", "",
		"[DSPACE_LOG_LEVEL] Log level: trace, debug, info, warn or error.",
	)
}

// Connect resolves the connection settings and logs in to DSpace.
func (c *Command) Connect(ctx context.Context, cf *ConnectionFlags) (*dspace.Client, error) {
	cfg := config.Default()

	if path := c.resolve(cf.Config, "DSPACE_CONFIG", ""); path != "" {
		loader := &config.Loader{Fs: c.Fs, LookupEnv: c.lookupEnv}
		loaded, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	levelName := c.resolve(cf.LogLevel, "DSPACE_LOG_LEVEL", cfg.LogLevel)
	level := hclog.LevelFromString(levelName)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}
	c.Log.SetLevel(level)

	d := cfg.DSpace
	d.BaseURL = c.resolve(cf.BaseURL, "DSPACE_URL", d.BaseURL)
	d.Username = c.resolve(cf.Username, "DSPACE_USERNAME", d.Username)
	d.Password = c.resolve(cf.Password, "DSPACE_PASSWORD", d.Password)
	if cf.ContentType != "" {
		d.ContentType = cf.ContentType
	}

	clientCfg, err := d.ClientConfig()
	if err != nil {
		return nil, err
	}
	clientCfg.Logger = c.Log

	c.Log.Debug("connecting to DSpace", "base_url", clientCfg.BaseURL, "username", clientCfg.Username)

	return dspace.New(ctx, clientCfg)
}

// resolve returns the flag value, else the environment variable, else
// fallback.
func (c *Command) resolve(flagValue, envName, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := c.lookupEnv(envName); ok && v != "" {
		return v
	}
	return fallback
}
