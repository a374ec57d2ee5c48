package dspace

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Config contains everything needed to open a session with a DSpace REST API.
type Config struct {
	// BaseURL is the REST API root, e.g. "https://repository.example.org/rest".
	BaseURL string `json:"baseUrl"`

	// Username is the e-person email used to log in.
	Username string `json:"username"`

	// Password is never marshaled to JSON.
	Password string `json:"-"`

	// ContentType is the default for requests sent without an explicit
	// override: "json" or "xml". Default: "json".
	ContentType string `json:"contentType,omitempty"`

	// Timeout for each HTTP exchange. Zero leaves the transport default.
	Timeout time.Duration `json:"timeout,omitempty"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// VerifySession makes New call the status endpoint once after logging in.
	VerifySession bool `json:"verifySession,omitempty"`

	// HTTPClient overrides the client built from Timeout and TLSVerify.
	HTTPClient *http.Client `json:"-"`

	// Logger defaults to a null logger.
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		ContentType: string(JSON),
		TLSVerify:   &tlsVerify,
	}
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.ContentType == "" {
		c.ContentType = defaults.ContentType
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// Validate checks if the configuration is valid. Every failure matches
// ErrInvalidConfig; an unknown content type also matches
// ErrInvalidContentType.
func (c *Config) Validate() error {
	if c.ContentType != "" {
		if _, err := ParseContentType(c.ContentType); err != nil {
			return err
		}
	}

	if err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(validBaseURL)),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func validBaseURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	parsedURL, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return errors.New("host is required")
	}

	return nil
}

// NewHTTPClient creates the HTTP client used for every exchange. It has no
// cookie jar, so nothing but the token carries over between calls.
func (c *Config) NewHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
