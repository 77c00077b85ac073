package product

import (
	"context"
	"strings"

	dom "example.com/catalog-console/app/internal/domain/product"
)

const DefaultPageSize = 10

type IDGenerator interface {
	NextID() string
}

// Service backs the sandbox catalog endpoints.
type Service struct {
	repo     dom.Repository
	ids      IDGenerator
	pageSize int
}

func NewService(repo dom.Repository, ids IDGenerator) *Service {
	return &Service{repo: repo, ids: ids, pageSize: DefaultPageSize}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if len(p.ImagesURL) > dom.MaxImages {
		return nil, dom.ErrTooManyImages
	}
	created := normalize(p)
	created.ID = s.ids.NextID()
	return s.repo.Create(ctx, created)
}

// Update replaces every field of an existing product.
func (s *Service) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, dom.ErrMissingProductID
	}
	if len(p.ImagesURL) > dom.MaxImages {
		return nil, dom.ErrTooManyImages
	}
	if _, err := s.repo.GetByID(ctx, p.ID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, normalize(p))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return dom.ErrMissingProductID
	}
	return s.repo.Delete(ctx, id)
}

// List returns one page of products, optionally narrowed to a category.
// Pages are 1-based; out of range pages yield an empty product slice.
func (s *Service) List(ctx context.Context, filter dom.ListFilter) (*dom.Page, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*dom.Product, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		matched = append(matched, p)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	totalPages := (len(matched) + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return &dom.Page{
		Products: matched[start:end],
		Pagination: &dom.Pagination{
			TotalPages:  totalPages,
			CurrentPage: page,
			HasPre:      page > 1,
			HasNext:     page < totalPages,
			Category:    filter.Category,
		},
	}, nil
}

func normalize(p *dom.Product) *dom.Product {
	out := *p
	out.Title = strings.TrimSpace(p.Title)
	out.Category = strings.TrimSpace(p.Category)
	out.Unit = strings.TrimSpace(p.Unit)
	if out.IsEnabled != 0 {
		out.IsEnabled = 1
	}
	if p.ImageURL != nil {
		if main := strings.TrimSpace(*p.ImageURL); main != "" {
			out.ImageURL = &main
		} else {
			out.ImageURL = nil
		}
	}
	out.ImagesURL = make([]string, 0, len(p.ImagesURL))
	for _, url := range p.ImagesURL {
		if url = strings.TrimSpace(url); url != "" {
			out.ImagesURL = append(out.ImagesURL, url)
		}
	}
	return &out
}
