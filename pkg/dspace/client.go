package dspace

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/mo"
)

// Client is an authenticated session with a DSpace REST API. A Client only
// exists once login has succeeded; see New.
//
// The token is set once by New and only read afterwards. Client has no
// mutators, but callers sharing one across goroutines should treat it as
// confined to one logical thread of control.
type Client struct {
	username    string
	password    string
	contentType ContentType
	token       Token

	dispatcher *Dispatcher
	logger     hclog.Logger
}

// New validates cfg, logs in and returns the authenticated client. Nothing is
// sent when the configuration is invalid, and a failed login is not retried.
func New(ctx context.Context, cfg Config) (*Client, error) {
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate has already checked the content type.
	ct, _ := ParseContentType(cfg.ContentType)
	logger := cfg.Logger.Named("dspace")

	c := &Client{
		username:    cfg.Username,
		password:    cfg.Password,
		contentType: ct,
		dispatcher: &Dispatcher{
			BaseURL:    cfg.BaseURL,
			HTTPClient: cfg.NewHTTPClient(),
			Logger:     logger,
		},
		logger: logger,
	}

	if err := c.connect(ctx); err != nil {
		return nil, err
	}

	if cfg.VerifySession {
		status, err := c.Send(ctx, Status(), WithContentType(JSON))
		if err != nil {
			return nil, fmt.Errorf("error checking session status: %w", err)
		}
		logger.Debug("session status", "status", status.Value())
	}

	return c, nil
}

// connect exchanges the credentials for a token. Login always uses JSON,
// whatever the client default.
func (c *Client) connect(ctx context.Context) error {
	payload, err := c.exchange(ctx, mo.None[Token](), Connect(c.username, c.password), JSON)
	if err != nil {
		return fmt.Errorf("error logging in to %s: %w", c.dispatcher.BaseURL, err)
	}

	token, ok := payload.(LoginToken)
	if !ok || token == "" {
		return fmt.Errorf("error logging in to %s: %w: login returned no token",
			c.dispatcher.BaseURL, ErrDecode)
	}

	c.token = Token(token)
	c.logger.Debug("connected to DSpace API", "base_url", c.dispatcher.BaseURL, "username", c.username)

	return nil
}

// SendOption adjusts a single Send call.
type SendOption func(*sendOptions)

type sendOptions struct {
	contentType mo.Option[ContentType]
}

// WithContentType overrides the client's default content type for one call.
func WithContentType(ct ContentType) SendOption {
	return func(o *sendOptions) {
		o.contentType = mo.Some(ct)
	}
}

// Send dispatches req with the session token and decodes the reply.
func (c *Client) Send(ctx context.Context, req Request, opts ...SendOption) (Payload, error) {
	var o sendOptions
	for _, opt := range opts {
		opt(&o)
	}

	return c.exchange(ctx, mo.Some(c.token), req, o.contentType.OrElse(c.contentType))
}

func (c *Client) exchange(
	ctx context.Context, token mo.Option[Token], req Request, ct ContentType,
) (Payload, error) {
	headers, err := ComposeHeaders(token, ct)
	if err != nil {
		return nil, err
	}

	resp, err := c.dispatcher.Dispatch(ctx, req, headers)
	if err != nil {
		return nil, err
	}

	return Decode(resp, ct)
}

// Username returns the e-person the session belongs to.
func (c *Client) Username() string {
	return c.username
}

// BaseURL returns the REST API root.
func (c *Client) BaseURL() string {
	return c.dispatcher.BaseURL
}

// ContentType returns the default content type.
func (c *Client) ContentType() ContentType {
	return c.contentType
}

// Token returns the session token.
func (c *Client) Token() Token {
	return c.token
}
