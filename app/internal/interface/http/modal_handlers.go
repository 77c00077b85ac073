package http

import (
	"net/http"
	"net/url"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	"example.com/catalog-console/app/internal/usecase/console"
)

const (
	actionAddImage    = "add_image"
	actionDeleteImage = "delete_image"
	actionConfirm     = "confirm"
	actionCancel      = "cancel"
)

// draftFields are the text inputs replayed through Modal.Change.
var draftFields = []string{"title", "category", "origin_price", "price", "unit", "description", "content"}

// handleModal applies one dialog button press. The draft is rebuilt from
// the posted fields first, so every action sees the operator's edits.
func (a *Web) handleModal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	c, ok := a.authenticated(w, r)
	if !ok {
		return
	}

	mode, err := domproduct.ParseMode(r.PostFormValue("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = c.Modal.Resume(mode, r.PostFormValue("id"))
	applyForm(c.Modal, r.PostForm)

	switch r.PostFormValue("action") {
	case actionAddImage:
		c.Modal.AddImage()
	case actionDeleteImage:
		c.Modal.DeleteImage()
	case actionCancel:
		c.Modal.Close()
		redirect(w, r, listURL(c.Products.Filter))
		return
	case actionConfirm:
		if err := c.Modal.Confirm(r.Context()); err != nil {
			a.render(w, http.StatusUnprocessableEntity, a.pageView(c))
			return
		}
		redirect(w, r, listURL(c.Products.Filter))
		return
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	a.render(w, http.StatusOK, a.pageView(c))
}

func applyForm(m *console.Modal, form url.Values) {
	for _, field := range draftFields {
		if form.Has(field) {
			m.Change(field, form.Get(field), false)
		}
	}
	m.Change("is_enabled", "", form.Get("is_enabled") != "")
	m.SetMainImage(form.Get("image_url"))
	for i, image := range form["images_url"] {
		if !m.AddImage() {
			break
		}
		m.SetImage(i, image)
	}
}
