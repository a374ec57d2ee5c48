package base

import (
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/dsapi/pkg/dspace"
)

func TestFlagSetHelp(t *testing.T) {
	var cf ConnectionFlags
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	cf.AddFlags(f)

	help := f.Help()
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-url")
	assert.Contains(t, help, "[DSPACE_PASSWORD]")
}

func TestConnect_Precedence(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /flag/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("abc123"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "dsapi.hcl", []byte(`
log_level = "warn"
dspace {
  base_url     = "http://file.invalid/rest"
  username     = "file@example.com"
  password     = "file-secret"
  content_type = "xml"
}
`), 0o600))

	c := &Command{
		Log: hclog.NewNullLogger(),
		UI:  cli.NewMockUi(),
		Fs:  fs,
		LookupEnv: func(name string) (string, bool) {
			switch name {
			case "DSPACE_CONFIG":
				return "dsapi.hcl", true
			case "DSPACE_USERNAME":
				return "env@example.com", true
			}
			return "", false
		},
	}

	client, err := c.Connect(context.Background(), &ConnectionFlags{BaseURL: srv.URL + "/flag"})
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/flag", client.BaseURL())
	assert.Equal(t, "env@example.com", client.Username())
	assert.Equal(t, dspace.XML, client.ContentType())
	assert.Equal(t, dspace.Token("abc123"), client.Token())
}

func TestConnect_InvalidLogLevel(t *testing.T) {
	c := &Command{
		Log:       hclog.NewNullLogger(),
		UI:        cli.NewMockUi(),
		Fs:        afero.NewMemMapFs(),
		LookupEnv: func(string) (string, bool) { return "", false },
	}

	_, err := c.Connect(context.Background(), &ConnectionFlags{LogLevel: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestOutputValue(t *testing.T) {
	ui := cli.NewMockUi()
	c := &Command{UI: ui}

	require.NoError(t, c.OutputValue(map[string]any{"okay": true}, &OutputFlags{Format: "yaml"}))
	assert.Equal(t, "okay: true\n", ui.OutputWriter.String())
}
