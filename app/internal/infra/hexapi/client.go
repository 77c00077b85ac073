// Package hexapi talks to the remote admin REST API on behalf of the console.
package hexapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	domsession "example.com/catalog-console/app/internal/domain/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client struct {
	baseURL    string
	apiPath    string
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

// New returns a client for baseURL; apiPath is the per-shop segment used
// in /api/{apiPath}/admin/... routes.
func New(baseURL, apiPath string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiPath:    strings.Trim(apiPath, "/"),
		httpClient: &http.Client{},
		timeout:    10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope holds the fields every response may carry.
type envelope struct {
	Success *bool               `json:"success"`
	Message jsoniter.RawMessage `json:"message"`
}

// do sends one request. The session token in ctx, if any, becomes the
// Authorization header. out is decoded only for successful responses.
func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	header := gout.H{"Accept": "application/json"}
	if token := domsession.FromContext(ctx); token != "" {
		header["Authorization"] = token
	}

	g := gout.New(c.httpClient)
	flow := g.GET(url)
	switch method {
	case http.MethodPost:
		flow = g.POST(url)
	case http.MethodPut:
		flow = g.PUT(url)
	case http.MethodDelete:
		flow = g.DELETE(url)
	}
	flow = flow.WithContext(ctx).SetHeader(header)
	if body != nil {
		flow = flow.SetJSON(body)
	}

	var (
		raw  []byte
		code int
	)
	started := time.Now()
	if err := flow.BindBody(&raw).Code(&code).Do(); err != nil {
		return errors.Wrapf(err, "%s %s", method, url)
	}
	zap.L().Debug("remote api call",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", code),
		zap.Duration("took", time.Since(started)),
	)

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && code >= 200 && code < 300 {
			return errors.Wrapf(err, "decode %s %s", method, url)
		}
	}
	if code < 200 || code >= 300 || (env.Success != nil && !*env.Success) {
		return &APIError{Status: code, Message: parseMessage(env.Message)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrapf(err, "decode %s %s", method, url)
		}
	}
	return nil
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

func (c *Client) adminURL(path string) string {
	return c.baseURL + "/api/" + c.apiPath + "/admin" + path
}
