// Package config loads the dsapi CLI configuration file.
//
// Example configuration:
//
//	log_level = "info"
//
//	dspace {
//	  base_url     = "https://demo.dspace.org/rest"
//	  username     = "admin@example.com"
//	  password     = env("DSPACE_PASSWORD")
//	  content_type = "json"
//	  timeout      = "30s"
//	}
package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

// Config is the root of the configuration file.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error. Default: info.
	LogLevel string `hcl:"log_level,optional"`

	// DSpace configures the connection to the repository.
	DSpace *DSpace `hcl:"dspace,block"`
}

// DSpace configures the connection to a DSpace REST API.
type DSpace struct {
	BaseURL       string `hcl:"base_url,optional"`
	Username      string `hcl:"username,optional"`
	Password      string `hcl:"password,optional"`
	ContentType   string `hcl:"content_type,optional"`
	Timeout       string `hcl:"timeout,optional"`
	TLSVerify     *bool  `hcl:"tls_verify,optional"`
	VerifySession bool   `hcl:"verify_session,optional"`
}

// Loader reads configuration files.
type Loader struct {
	Fs afero.Fs

	// LookupEnv resolves env() calls in the file. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load parses and validates the configuration file at path.
func (l *Loader) Load(path string) (*Config, error) {
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, src, l.evalContext(), &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					value, _ := lookup(args[0].AsString())
					return cty.StringVal(value), nil
				},
			}),
		},
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DSpace == nil {
		c.DSpace = &DSpace{}
	}
}

// Validate checks the values that can be checked without the flag
// overrides; required connection settings are checked by dspace.New.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.In("trace", "debug", "info", "warn", "error")),
	); err != nil {
		return err
	}

	if c.DSpace == nil {
		return nil
	}
	return validation.ValidateStruct(c.DSpace,
		validation.Field(&c.DSpace.ContentType, validation.In(string(dspace.JSON), string(dspace.XML))),
		validation.Field(&c.DSpace.Timeout, validation.By(validDuration)),
	)
}

func validDuration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a duration such as \"30s\": %w", err)
	}
	return nil
}

// ClientConfig converts the dspace block into a client configuration.
func (d *DSpace) ClientConfig() (dspace.Config, error) {
	cfg := dspace.Config{
		BaseURL:       d.BaseURL,
		Username:      d.Username,
		Password:      d.Password,
		ContentType:   d.ContentType,
		TLSVerify:     d.TLSVerify,
		VerifySession: d.VerifySession,
	}

	if d.Timeout != "" {
		timeout, err := time.ParseDuration(d.Timeout)
		if err != nil {
			return dspace.Config{}, fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}
