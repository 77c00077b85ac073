package product

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// MaxImages caps the number of secondary image slots.
const MaxImages = 4

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeDelete Mode = "delete"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeCreate, ModeEdit, ModeDelete:
		return m, nil
	default:
		return "", ErrInvalidMode
	}
}

// Draft is the working copy edited in the modal form. It is never sent
// as-is; Payload builds the outgoing product.
type Draft struct {
	ID          string
	Title       string
	Category    string
	OriginPrice float64
	Price       float64
	Unit        string
	Description string
	Content     string
	IsEnabled   bool
	ImageURL    string
	ImagesURL   []string
}

// NewDraft returns the empty template used by create mode.
func NewDraft() Draft {
	return Draft{ImagesURL: []string{}}
}

// DraftFrom copies p into a draft, filling zero values for missing fields.
func DraftFrom(p *Product) Draft {
	d := NewDraft()
	if p == nil {
		return d
	}
	d.ID = p.ID
	d.Title = p.Title
	d.Category = p.Category
	d.OriginPrice = p.OriginPrice
	d.Price = p.Price
	d.Unit = p.Unit
	d.Description = p.Description
	d.Content = p.Content
	d.IsEnabled = p.IsEnabled != 0
	d.ImageURL = p.MainImage()
	if len(p.ImagesURL) > 0 {
		d.ImagesURL = append([]string(nil), p.ImagesURL...)
	}
	return d
}

// Change applies a single form input to the draft. Price fields are
// coerced to numbers and is_enabled follows checkbox semantics. Unknown
// fields are ignored.
func (d *Draft) Change(field, value string, checked bool) {
	switch field {
	case "title":
		d.Title = value
	case "category":
		d.Category = value
	case "origin_price":
		d.OriginPrice = toNumber(value)
	case "price":
		d.Price = toNumber(value)
	case "unit":
		d.Unit = value
	case "description":
		d.Description = value
	case "content":
		d.Content = value
	case "is_enabled":
		d.IsEnabled = checked
	}
}

func (d *Draft) SetMainImage(url string) {
	d.ImageURL = url
}

// SetImage updates the secondary image slot at index; out of range
// indexes are ignored.
func (d *Draft) SetImage(index int, url string) {
	if index < 0 || index >= len(d.ImagesURL) {
		return
	}
	images := append([]string(nil), d.ImagesURL...)
	images[index] = url
	d.ImagesURL = images
}

// AddImage appends an empty slot. It reports false when the draft
// already holds MaxImages slots.
func (d *Draft) AddImage() bool {
	if len(d.ImagesURL) >= MaxImages {
		return false
	}
	d.ImagesURL = append(append([]string(nil), d.ImagesURL...), "")
	return true
}

// DeleteImage drops the last slot. It reports false when there is none.
func (d *Draft) DeleteImage() bool {
	if len(d.ImagesURL) == 0 {
		return false
	}
	d.ImagesURL = append([]string(nil), d.ImagesURL[:len(d.ImagesURL)-1]...)
	return true
}

// Payload builds the product sent to the API: a blank main image becomes
// null, blank secondary images are dropped and the enabled flag is 0 or 1.
func (d Draft) Payload() *Product {
	p := &Product{
		ID:          d.ID,
		Title:       d.Title,
		Category:    d.Category,
		OriginPrice: d.OriginPrice,
		Price:       d.Price,
		Unit:        d.Unit,
		Description: d.Description,
		Content:     d.Content,
		ImagesURL:   make([]string, 0, len(d.ImagesURL)),
	}
	if d.IsEnabled {
		p.IsEnabled = 1
	}
	if main := strings.TrimSpace(d.ImageURL); main != "" {
		p.ImageURL = &main
	}
	for _, url := range d.ImagesURL {
		if strings.TrimSpace(url) != "" {
			p.ImagesURL = append(p.ImagesURL, url)
		}
	}
	return p
}

// toNumber coerces form input; anything that is not a finite number,
// including "NaN" and "Inf" spellings, becomes 0.
func toNumber(value string) float64 {
	v := cast.ToFloat64(strings.TrimSpace(value))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
