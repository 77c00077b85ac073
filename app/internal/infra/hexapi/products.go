package hexapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

type listResponse struct {
	Products   []*domproduct.Product  `json:"products"`
	Pagination *domproduct.Pagination `json:"pagination"`
}

type productRequest struct {
	Data *domproduct.Product `json:"data"`
}

func (c *Client) List(ctx context.Context, filter domproduct.ListFilter) (*domproduct.Page, error) {
	q := url.Values{}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	target := c.adminURL("/products")
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, target, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Products == nil {
		resp.Products = []*domproduct.Product{}
	}
	return &domproduct.Page{Products: resp.Products, Pagination: resp.Pagination}, nil
}

func (c *Client) Create(ctx context.Context, p *domproduct.Product) error {
	return c.do(ctx, http.MethodPost, c.adminURL("/product"), productRequest{Data: p}, nil)
}

func (c *Client) Update(ctx context.Context, id string, p *domproduct.Product) error {
	if id == "" {
		return domproduct.ErrMissingProductID
	}
	return c.do(ctx, http.MethodPut, c.adminURL("/product/"+url.PathEscape(id)), productRequest{Data: p}, nil)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domproduct.ErrMissingProductID
	}
	return c.do(ctx, http.MethodDelete, c.adminURL("/product/"+url.PathEscape(id)), nil, nil)
}
