package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	"example.com/catalog-console/app/internal/usecase/console"
)

func (a *Web) handleIndex(w http.ResponseWriter, r *http.Request) {
	c := a.newConsole(r)
	c.Session.Restore(r.Context())
	a.render(w, http.StatusOK, a.pageView(c))
}

func (a *Web) handleOpenCreate(w http.ResponseWriter, r *http.Request) {
	c, ok := a.authenticated(w, r)
	if !ok {
		return
	}
	_ = c.Modal.Open(domproduct.ModeCreate, nil)
	a.render(w, http.StatusOK, a.pageView(c))
}

func (a *Web) handleOpenEdit(w http.ResponseWriter, r *http.Request) {
	a.openWithProduct(w, r, domproduct.ModeEdit)
}

func (a *Web) handleOpenDelete(w http.ResponseWriter, r *http.Request) {
	a.openWithProduct(w, r, domproduct.ModeDelete)
}

// openWithProduct opens the dialog for a product on the current page.
func (a *Web) openWithProduct(w http.ResponseWriter, r *http.Request, mode domproduct.Mode) {
	c, ok := a.authenticated(w, r)
	if !ok {
		return
	}

	p, found := c.Products.Find(chi.URLParam(r, "id"))
	if !found {
		view := a.pageView(c)
		view.Notice = console.FailureMessage(domproduct.ErrProductNotFound)
		a.render(w, http.StatusNotFound, view)
		return
	}
	_ = c.Modal.Open(mode, p)
	a.render(w, http.StatusOK, a.pageView(c))
}

// authenticated restores the session and sends anonymous visitors back
// to the login view.
func (a *Web) authenticated(w http.ResponseWriter, r *http.Request) (*console.Console, bool) {
	c := a.newConsole(r)
	c.Session.Restore(r.Context())
	if !c.Session.Authenticated {
		redirect(w, r, "/")
		return nil, false
	}
	return c, true
}
