package dspace

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Dispatcher binds request descriptors to HTTP and performs the exchange.
type Dispatcher struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     hclog.Logger
}

// URL joins the base URL and a request path with exactly one separator.
func (d *Dispatcher) URL(path string) string {
	return strings.TrimRight(d.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Dispatch sends req with the given headers and returns the raw response.
// Errors from the HTTP client are returned as is.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request, h Headers) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, d.URL(req.Path), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	h.Apply(httpReq.Header)

	logger := d.logger()
	logger.Debug("sending request", "method", httpReq.Method, "url", httpReq.URL.String())
	if logger.IsTrace() {
		logger.Trace("request headers", headerFields(httpReq.Header)...)
	}

	client := d.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	logger.Debug("received response",
		"method", httpReq.Method,
		"url", httpResp.Request.URL.String(),
		"status", httpResp.StatusCode,
	)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Header:     httpResp.Header,
		Body:       respBody,
		URL:        httpResp.Request.URL,
	}, nil
}

func (d *Dispatcher) logger() hclog.Logger {
	if d.Logger == nil {
		return hclog.NewNullLogger()
	}
	return d.Logger
}

// headerFields flattens h into hclog key/value pairs with the token redacted.
func headerFields(h http.Header) []interface{} {
	fields := make([]interface{}, 0, 2*len(h))
	for name := range h {
		value := h.Get(name)
		if strings.EqualFold(name, TokenHeader) && value != nullToken {
			value = "<redacted>"
		}
		fields = append(fields, name, value)
	}
	return fields
}
