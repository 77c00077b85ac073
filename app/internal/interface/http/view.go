package http

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	"example.com/catalog-console/app/internal/usecase/console"
)

type pageView struct {
	Authenticated bool
	LoginMessage  string
	Notice        string
	Products      []*domproduct.Product
	Pagination    *domproduct.Pagination
	Filter        domproduct.ListFilter
	Modal         *modalView
}

type modalView struct {
	Mode        string
	Title       string
	Draft       domproduct.Draft
	Message     string
	Deleting    bool
	CanAddImage bool
	Filter      domproduct.ListFilter
}

var modalTitles = map[domproduct.Mode]string{
	domproduct.ModeCreate: "New product",
	domproduct.ModeEdit:   "Edit product",
	domproduct.ModeDelete: "Delete product",
}

func (a *Web) pageView(c *console.Console) *pageView {
	view := &pageView{
		Authenticated: c.Session.Authenticated,
		LoginMessage:  c.Session.Message,
		Products:      c.Products.Products,
		Pagination:    c.Products.Pagination,
		Filter:        c.Products.Filter,
	}
	if c.Session.Authenticated && c.Modal.IsOpen() {
		view.Modal = &modalView{
			Mode:        string(c.Modal.Mode),
			Title:       modalTitles[c.Modal.Mode],
			Draft:       c.Modal.Draft,
			Message:     c.Modal.Message,
			Deleting:    c.Modal.Mode == domproduct.ModeDelete,
			CanAddImage: len(c.Modal.Draft.ImagesURL) < domproduct.MaxImages,
			Filter:      c.Products.Filter,
		}
	}
	return view
}

// render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (a *Web) render(w http.ResponseWriter, status int, view *pageView) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, "page", view); err != nil {
		a.logger.Error("render page failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
