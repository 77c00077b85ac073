package console

import (
	"context"

	"go.uber.org/zap"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

// Modal holds the draft edited in the product dialog. A zero Mode means
// the dialog is closed.
type Modal struct {
	catalog  domproduct.Catalog
	products *ProductList

	Mode    domproduct.Mode
	Draft   domproduct.Draft
	Message string
}

func NewModal(catalog domproduct.Catalog, products *ProductList) *Modal {
	return &Modal{
		catalog:  catalog,
		products: products,
		Draft:    domproduct.NewDraft(),
	}
}

func (m *Modal) IsOpen() bool {
	return m.Mode != ""
}

// Open shows the dialog. Create always starts from the empty template;
// edit and delete copy p.
func (m *Modal) Open(mode domproduct.Mode, p *domproduct.Product) error {
	switch mode {
	case domproduct.ModeCreate:
		m.Draft = domproduct.NewDraft()
	case domproduct.ModeEdit, domproduct.ModeDelete:
		if p == nil {
			return domproduct.ErrProductNotFound
		}
		m.Draft = domproduct.DraftFrom(p)
	default:
		return domproduct.ErrInvalidMode
	}
	m.Mode = mode
	m.Message = ""
	return nil
}

// Resume reopens the dialog in mode with an empty draft carrying id. The
// caller then replays the submitted fields through Change and the image
// handlers.
func (m *Modal) Resume(mode domproduct.Mode, id string) error {
	switch mode {
	case domproduct.ModeCreate:
		id = ""
	case domproduct.ModeEdit, domproduct.ModeDelete:
	default:
		return domproduct.ErrInvalidMode
	}
	m.Mode = mode
	m.Draft = domproduct.NewDraft()
	m.Draft.ID = id
	m.Message = ""
	return nil
}

// Close hides the dialog and keeps the draft.
func (m *Modal) Close() {
	m.Mode = ""
	m.Message = ""
}

func (m *Modal) Change(field, value string, checked bool) {
	m.Draft.Change(field, value, checked)
}

func (m *Modal) SetMainImage(url string) {
	m.Draft.SetMainImage(url)
}

func (m *Modal) SetImage(index int, url string) {
	m.Draft.SetImage(index, url)
}

func (m *Modal) AddImage() bool {
	return m.Draft.AddImage()
}

func (m *Modal) DeleteImage() bool {
	return m.Draft.DeleteImage()
}

// Confirm sends the draft according to the mode. On failure the dialog
// stays open with Message set.
func (m *Modal) Confirm(ctx context.Context) error {
	if !m.IsOpen() {
		return domproduct.ErrModalClosed
	}

	var err error
	switch m.Mode {
	case domproduct.ModeCreate:
		err = m.catalog.Create(ctx, m.Draft.Payload())
	case domproduct.ModeEdit:
		if m.Draft.ID == "" {
			err = domproduct.ErrMissingProductID
			break
		}
		err = m.catalog.Update(ctx, m.Draft.ID, m.Draft.Payload())
	case domproduct.ModeDelete:
		if m.Draft.ID == "" {
			err = domproduct.ErrMissingProductID
			break
		}
		err = m.catalog.Delete(ctx, m.Draft.ID)
	}
	if err != nil {
		zap.L().Warn("product mutation failed",
			zap.String("mode", string(m.Mode)),
			zap.String("id", m.Draft.ID),
			zap.Error(err),
		)
		m.Message = FailureMessage(err)
		return err
	}

	if m.Mode == domproduct.ModeCreate {
		m.Draft = domproduct.NewDraft()
	}
	m.Close()
	_ = m.products.Refresh(ctx)
	return nil
}
