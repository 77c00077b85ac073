package product

import "context"

// Catalog is the remote admin product API as seen by the console.
type Catalog interface {
	List(ctx context.Context, filter ListFilter) (*Page, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id string, p *Product) error
	Delete(ctx context.Context, id string) error
}

// Repository stores products for the sandbox API.
type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
}
