package hexapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	domsession "example.com/catalog-console/app/internal/domain/session"
)

// APIError is a response the remote API rejected. Message is the
// server-provided text and may be empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote api: status %d", e.Status)
	}
	return fmt.Sprintf("remote api: status %d: %s", e.Status, e.Message)
}

// Is lets callers match rejected credentials with
// errors.Is(err, session.ErrUnauthenticated).
func (e *APIError) Is(target error) bool {
	if target != domsession.ErrUnauthenticated {
		return false
	}
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// parseMessage accepts the two shapes the API uses for "message": a
// string, or an array of strings joined with ", ".
func parseMessage(raw jsoniter.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return ""
}

// UserMessage is the server text shown to the operator.
func (e *APIError) UserMessage() string {
	return e.Message
}
