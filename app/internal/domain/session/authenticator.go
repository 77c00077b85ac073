package session

import "context"

type Authenticator interface {
	SignIn(ctx context.Context, creds Credentials) (*Token, error)
	// Check validates the token carried by ctx.
	Check(ctx context.Context) error
	SignOut(ctx context.Context) error
}
