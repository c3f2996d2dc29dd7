package models

type ItemKind string

const (
	KindClass  ItemKind = "class"
	KindBundle ItemKind = "bundle"
)

type Category string

const (
	CategoryGroup   Category = "group"
	CategoryPrivate Category = "private"
)

// CatalogItem is a bookable class or a bundle of classes. Prices are whole
// currency units.
type CatalogItem struct {
	ID               string   `json:"id"`
	Kind             ItemKind `json:"kind"`
	Category         Category `json:"category,omitempty"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug,omitempty"`
	Tagline          string   `json:"tagline,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	DurationMinutes  int      `json:"duration_minutes,omitempty"`
	BookingURL       string   `json:"booking_url,omitempty"`
	Note             string   `json:"note,omitempty"`
	Highlighted      bool     `json:"highlighted,omitempty"`
	Order            int      `json:"order"`
	Active           bool     `json:"active"`
	BasePrice        int      `json:"base_price"`
	ManualSalePrice  *int     `json:"manual_sale_price,omitempty"`
}

func (i CatalogItem) IsBundle() bool {
	return i.Kind == KindBundle
}
