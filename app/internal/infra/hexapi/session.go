package hexapi

import (
	"context"
	"net/http"

	domsession "example.com/catalog-console/app/internal/domain/session"
)

type signInResponse struct {
	Token   string `json:"token"`
	Expired int64  `json:"expired"`
}

type checkResponse struct {
	Success bool `json:"success"`
}

func (c *Client) SignIn(ctx context.Context, creds domsession.Credentials) (*domsession.Token, error) {
	var resp signInResponse
	if err := c.do(ctx, http.MethodPost, c.url("/admin/signin"), creds, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &APIError{Status: http.StatusOK, Message: "empty token in sign-in response"}
	}
	return &domsession.Token{
		Value:   resp.Token,
		Expires: domsession.ExpiresFromMillis(resp.Expired),
	}, nil
}

// Check succeeds only on an explicit "success": true; a 2xx reply
// without it does not authenticate.
func (c *Client) Check(ctx context.Context) error {
	if domsession.FromContext(ctx) == "" {
		return domsession.ErrNoToken
	}
	var resp checkResponse
	if err := c.do(ctx, http.MethodPost, c.url("/api/user/check"), nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Status: http.StatusOK}
	}
	return nil
}

func (c *Client) SignOut(ctx context.Context) error {
	if domsession.FromContext(ctx) == "" {
		return domsession.ErrNoToken
	}
	return c.do(ctx, http.MethodPost, c.url("/logout"), nil, nil)
}
