package memory

import (
	"context"
	"sync"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

// ProductRepository keeps products in insertion order.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domproduct.Product
	order    []string
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*domproduct.Product)}
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(p)
	if _, exists := r.products[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.products[p.ID] = stored
	return clone(stored), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return nil, domproduct.ErrProductNotFound
	}
	r.products[p.ID] = clone(p)
	return clone(p), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(r.products, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.products[id]; ok {
		return clone(p), nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domproduct.Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, clone(r.products[id]))
	}
	return result, nil
}

func clone(p *domproduct.Product) *domproduct.Product {
	out := *p
	if p.ImageURL != nil {
		main := *p.ImageURL
		out.ImageURL = &main
	}
	out.ImagesURL = append([]string{}, p.ImagesURL...)
	return &out
}
