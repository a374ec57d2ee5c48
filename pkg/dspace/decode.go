package dspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Payload is a decoded DSpace response. It is one of LoginToken, Structured
// or Tree.
type Payload interface {
	// Value returns the decoded body as a plain Go value.
	Value() any

	payload()
}

// LoginToken is the body of the login endpoint, which answers with the bare
// token as text rather than JSON.
type LoginToken string

func (t LoginToken) Value() any {
	return map[string]any{"api-token": string(t)}
}

// Structured is a JSON response body.
type Structured struct {
	Data any
}

func (s Structured) Value() any {
	return s.Data
}

// Tree is an XML response body.
type Tree struct {
	Root *etree.Element
}

func (t Tree) Value() any {
	return t.Root
}

func (LoginToken) payload() {}
func (Structured) payload() {}
func (Tree) payload()       {}

// Response is a raw reply from the DSpace API with its body fully read.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	// URL is the final request URL, after redirects.
	URL *url.URL
}

// Reason returns the reason phrase of the status line.
func (r *Response) Reason() string {
	reason := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if reason == "" {
		reason = http.StatusText(r.StatusCode)
	}
	return reason
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode turns a raw response into a Payload according to ct. A non-2xx
// status is returned as a *StatusError whatever the content type. A 2xx
// response without a body, as DSpace sends for metadata writes, decodes to
// an empty Structured payload.
func Decode(resp *Response, ct ContentType) (Payload, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: nil response", ErrDecode)
	}

	if !resp.OK() {
		return nil, &StatusError{Code: resp.StatusCode, Reason: resp.Reason()}
	}

	if !ct.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContentType, ct)
	}

	if ct == JSON && isLoginURL(resp.URL) {
		return LoginToken(resp.Body), nil
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return Structured{}, nil
	}

	switch ct {
	case JSON:
		var data any
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return nil, &DecodeError{ContentType: ct, Err: err}
		}
		return Structured{Data: data}, nil

	case XML:
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(resp.Body); err != nil {
			return nil, &DecodeError{ContentType: ct, Err: err}
		}
		root := doc.Root()
		if root == nil {
			return nil, &DecodeError{ContentType: ct, Err: errors.New("document has no root element")}
		}
		return Tree{Root: root}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidContentType, ct)
	}
}

func isLoginURL(u *url.URL) bool {
	if u == nil {
		return false
	}
	return strings.HasSuffix(u.Path, "/"+loginPath) || u.Path == loginPath
}
