package product

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrMissingProductID = errors.New("product id is required")
	ErrModalClosed      = errors.New("modal is not open")
	ErrInvalidMode      = errors.New("invalid modal mode")
	ErrTooManyImages    = errors.New("too many secondary images")
)
