package session

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNoToken         = errors.New("no session token")
)
