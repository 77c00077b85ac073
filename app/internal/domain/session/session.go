package session

import (
	"context"
	"time"
)

// CookieName is the browser cookie that persists the admin token.
const CookieName = "hexToken"

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Token struct {
	Value   string
	Expires time.Time
}

// ExpiresFromMillis converts the API's millisecond timestamp. Zero maps
// to the zero time, i.e. a browser-session cookie.
func ExpiresFromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

type ctxTokenKey struct{}

// NewContext attaches the token to ctx; remote calls made with the
// returned context carry it as the Authorization header.
func NewContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

func FromContext(ctx context.Context) string {
	if token, ok := ctx.Value(ctxTokenKey{}).(string); ok {
		return token
	}
	return ""
}
