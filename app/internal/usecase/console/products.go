package console

import (
	"context"

	"go.uber.org/zap"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

// ProductList caches the last page fetched from the catalog.
type ProductList struct {
	catalog domproduct.Catalog

	Filter     domproduct.ListFilter
	Products   []*domproduct.Product
	Pagination *domproduct.Pagination
}

func NewProductList(catalog domproduct.Catalog, filter domproduct.ListFilter) *ProductList {
	return &ProductList{
		catalog:  catalog,
		Filter:   filter,
		Products: []*domproduct.Product{},
	}
}

// Refresh replaces the cache with a fresh fetch. On error the cache is
// left as it was.
func (l *ProductList) Refresh(ctx context.Context) error {
	page, err := l.catalog.List(ctx, l.Filter)
	if err != nil {
		zap.L().Error("fetch products failed", zap.Int("page", l.Filter.Page), zap.Error(err))
		return err
	}
	l.Products = page.Products
	if l.Products == nil {
		l.Products = []*domproduct.Product{}
	}
	l.Pagination = page.Pagination
	return nil
}

func (l *ProductList) Find(id string) (*domproduct.Product, bool) {
	for _, p := range l.Products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
