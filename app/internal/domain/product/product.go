package product

type Product struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	OriginPrice float64  `json:"origin_price"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	IsEnabled   int      `json:"is_enabled"`
	ImageURL    *string  `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl"`
}

// Enabled reports whether the product is published.
func (p *Product) Enabled() bool {
	return p.IsEnabled != 0
}

// MainImage returns the main image url or "" when unset.
func (p *Product) MainImage() string {
	if p.ImageURL == nil {
		return ""
	}
	return *p.ImageURL
}

type ListFilter struct {
	Page     int
	Category string
}

type Pagination struct {
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	HasPre      bool   `json:"has_pre"`
	HasNext     bool   `json:"has_next"`
	Category    string `json:"category"`
}

type Page struct {
	Products   []*Product
	Pagination *Pagination
}
