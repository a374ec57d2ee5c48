package dspace

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid config",
			config: &Config{
				BaseURL:  "https://demo.dspace.org/rest",
				Username: "admin@example.com",
				Password: "secret",
			},
		},
		{
			name: "Valid xml config",
			config: &Config{
				BaseURL:     "http://localhost:8080/rest",
				Username:    "admin@example.com",
				Password:    "secret",
				ContentType: "xml",
			},
		},
		{
			name: "Missing base URL",
			config: &Config{
				Username: "admin@example.com",
				Password: "secret",
			},
			wantError: true,
			errorMsg:  "baseUrl",
		},
		{
			name: "Invalid URL scheme",
			config: &Config{
				BaseURL:  "ftp://demo.dspace.org/rest",
				Username: "admin@example.com",
				Password: "secret",
			},
			wantError: true,
			errorMsg:  "scheme",
		},
		{
			name: "Missing password",
			config: &Config{
				BaseURL:  "https://demo.dspace.org/rest",
				Username: "admin@example.com",
			},
			wantError: true,
			errorMsg:  "Password",
		},
		{
			name: "Negative timeout",
			config: &Config{
				BaseURL:  "https://demo.dspace.org/rest",
				Username: "admin@example.com",
				Password: "secret",
				Timeout:  -1 * time.Second,
			},
			wantError: true,
			errorMsg:  "timeout",
		},
		{
			name: "Unknown content type",
			config: &Config{
				BaseURL:     "https://demo.dspace.org/rest",
				Username:    "admin@example.com",
				Password:    "secret",
				ContentType: "csv",
			},
			wantError: true,
			errorMsg:  "content type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "json", cfg.ContentType)
	require.NotNil(t, cfg.TLSVerify)
	assert.True(t, *cfg.TLSVerify)
	assert.NotNil(t, cfg.Logger)
}

func TestConfigNewHTTPClient(t *testing.T) {
	insecure := false
	cfg := &Config{Timeout: 5 * time.Second, TLSVerify: &insecure}

	client := cfg.NewHTTPClient()
	assert.Equal(t, 5*time.Second, client.Timeout)
	assert.Nil(t, client.Jar)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)

	custom := &http.Client{}
	cfg.HTTPClient = custom
	assert.Same(t, custom, cfg.NewHTTPClient())
}
