// Package console holds the admin console state for one request: the
// session, the cached product page and the product dialog.
package console

import (
	"github.com/go-playground/validator/v10"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	domsession "example.com/catalog-console/app/internal/domain/session"
)

type Console struct {
	Session  *SessionManager
	Products *ProductList
	Modal    *Modal
}

// Backend is the remote API the console drives.
type Backend interface {
	domsession.Authenticator
	domproduct.Catalog
}

func New(backend Backend, filter domproduct.ListFilter, validate *validator.Validate) *Console {
	products := NewProductList(backend, filter)
	return &Console{
		Session:  NewSessionManager(backend, products, validate),
		Products: products,
		Modal:    NewModal(backend, products),
	}
}
