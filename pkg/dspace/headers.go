package dspace

import (
	"fmt"
	"net/http"

	"github.com/samber/mo"
)

// TokenHeader carries the session token on every request.
const TokenHeader = "rest-dspace-token"

// nullToken is sent before login. DSpace expects the literal string rather
// than a missing header.
const nullToken = "null"

// ContentType selects both the request encoding and the decoding of the reply.
type ContentType string

const (
	JSON ContentType = "json"
	XML  ContentType = "xml"
)

// ParseContentType returns the ContentType named by s.
func ParseContentType(s string) (ContentType, error) {
	switch ct := ContentType(s); ct {
	case JSON, XML:
		return ct, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
	}
}

// MIME returns the media type used in the Accept and Content-Type headers.
func (ct ContentType) MIME() string {
	return "application/" + string(ct)
}

// Valid reports whether ct is one of the recognized content types.
func (ct ContentType) Valid() bool {
	_, err := ParseContentType(string(ct))
	return err == nil
}

// Token is the session credential returned by the login endpoint.
type Token string

// Headers is the fixed header set sent with every DSpace request.
type Headers struct {
	Token         string
	Accept        string
	AcceptCharset string
	ContentType   string
}

// ComposeHeaders builds the headers for a request. An absent token is sent
// as "null".
func ComposeHeaders(token mo.Option[Token], ct ContentType) (Headers, error) {
	if _, err := ParseContentType(string(ct)); err != nil {
		return Headers{}, err
	}

	return Headers{
		Token:         string(token.OrElse(Token(nullToken))),
		Accept:        ct.MIME(),
		AcceptCharset: "UTF-8",
		ContentType:   ct.MIME(),
	}, nil
}

// Apply writes the headers onto h.
func (hd Headers) Apply(h http.Header) {
	h.Set(TokenHeader, hd.Token)
	h.Set("Accept", hd.Accept)
	h.Set("Accept-Charset", hd.AcceptCharset)
	h.Set("Content-Type", hd.ContentType)
}
