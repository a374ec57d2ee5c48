package dspace

import (
	"net/http"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeHeaders(t *testing.T) {
	tests := []struct {
		name      string
		token     mo.Option[Token]
		ct        ContentType
		wantToken string
		wantMIME  string
	}{
		{name: "no token json", token: mo.None[Token](), ct: JSON, wantToken: "null", wantMIME: "application/json"},
		{name: "no token xml", token: mo.None[Token](), ct: XML, wantToken: "null", wantMIME: "application/xml"},
		{name: "token json", token: mo.Some(Token("abc123")), ct: JSON, wantToken: "abc123", wantMIME: "application/json"},
		{name: "token xml", token: mo.Some(Token("abc123")), ct: XML, wantToken: "abc123", wantMIME: "application/xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ComposeHeaders(tt.token, tt.ct)
			require.NoError(t, err)

			assert.Equal(t, Headers{
				Token:         tt.wantToken,
				Accept:        tt.wantMIME,
				AcceptCharset: "UTF-8",
				ContentType:   tt.wantMIME,
			}, h)
		})
	}
}

func TestComposeHeaders_InvalidContentType(t *testing.T) {
	for _, ct := range []ContentType{"", "yaml", "JSON", "application/json"} {
		_, err := ComposeHeaders(mo.None[Token](), ct)
		assert.ErrorIs(t, err, ErrInvalidContentType, "content type %q", ct)
		assert.ErrorIs(t, err, ErrInvalidConfig, "content type %q", ct)
	}
}

func TestHeadersApply(t *testing.T) {
	h, err := ComposeHeaders(mo.Some(Token("abc123")), JSON)
	require.NoError(t, err)

	header := http.Header{}
	h.Apply(header)

	assert.Equal(t, "abc123", header.Get("rest-dspace-token"))
	assert.Equal(t, "application/json", header.Get("Accept"))
	assert.Equal(t, "UTF-8", header.Get("Accept-Charset"))
	assert.Equal(t, "application/json", header.Get("Content-Type"))
}

func TestParseContentType(t *testing.T) {
	ct, err := ParseContentType("xml")
	require.NoError(t, err)
	assert.Equal(t, XML, ct)
	assert.True(t, ct.Valid())

	_, err = ParseContentType("html")
	assert.ErrorIs(t, err, ErrInvalidContentType)
	assert.False(t, ContentType("html").Valid())
}
