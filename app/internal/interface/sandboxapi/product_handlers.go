package sandboxapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

type productPayload struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	OriginPrice float64  `json:"origin_price" validate:"gte=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	Unit        string   `json:"unit" validate:"required"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	IsEnabled   int      `json:"is_enabled" validate:"oneof=0 1"`
	ImageURL    *string  `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl" validate:"max=4"`
}

type productRequest struct {
	Data *productPayload `json:"data" validate:"required"`
}

func (p *productPayload) toDomain(id string) *domproduct.Product {
	return &domproduct.Product{
		ID:          id,
		Title:       p.Title,
		Category:    p.Category,
		OriginPrice: p.OriginPrice,
		Price:       p.Price,
		Unit:        p.Unit,
		Description: p.Description,
		Content:     p.Content,
		IsEnabled:   p.IsEnabled,
		ImageURL:    p.ImageURL,
		ImagesURL:   p.ImagesURL,
	}
}

type listResponse struct {
	Success    bool                   `json:"success"`
	Products   []*domproduct.Product  `json:"products"`
	Pagination *domproduct.Pagination `json:"pagination"`
	Messages   []string               `json:"messages"`
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domproduct.ListFilter{
		Page:     cast.ToInt(r.URL.Query().Get("page")),
		Category: r.URL.Query().Get("category"),
	}

	page, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:    true,
		Products:   page.Products,
		Pagination: page.Pagination,
		Messages:   []string{},
	})
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		a.handleRequestError(w, err)
		return
	}

	if _, err := a.productSvc.Create(r.Context(), req.Data.toDomain("")); err != nil {
		a.handleDomainError(w, err)
		return
	}
	respondOK(w, "Product created")
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		a.handleRequestError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := a.productSvc.Update(r.Context(), req.Data.toDomain(id)); err != nil {
		a.handleDomainError(w, err)
		return
	}
	respondOK(w, "Product updated")
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := a.productSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.handleDomainError(w, err)
		return
	}
	respondOK(w, "Product deleted")
}
