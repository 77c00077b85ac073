package console

import (
	"errors"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

// GenericFailure is shown when a failed call carries no server message.
const GenericFailure = "Operation failed"

// userMessager is implemented by remote errors that carry text meant
// for the operator.
type userMessager interface {
	UserMessage() string
}

// FailureMessage returns the server-provided message in err, or
// GenericFailure.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var m userMessager
	if errors.As(err, &m) && m.UserMessage() != "" {
		return m.UserMessage()
	}
	switch {
	case errors.Is(err, domproduct.ErrMissingProductID):
		return "Product id is missing"
	case errors.Is(err, domproduct.ErrProductNotFound):
		return "Product not found"
	}
	return GenericFailure
}
