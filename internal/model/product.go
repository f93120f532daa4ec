package model

// Category is one of the fixed product categories of the catalog.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryAccessories Category = "Accessories"
	CategoryHomeDecor   Category = "Home Decor"
	CategorySports      Category = "Sports"
	CategoryBeauty      Category = "Beauty"
)

// Categories lists every category in catalog order.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryAccessories,
	CategoryHomeDecor,
	CategorySports,
	CategoryBeauty,
}

// Product represents a catalog product together with its derived search fields.
// Products are immutable once the catalog is built.
type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Features       []string `json:"features"`
	Keywords       []string `json:"keywords"`
	SearchableText string   `json:"searchable_text"`
}

// InPriceRange reports whether the product price lies within [min, max].
func (p Product) InPriceRange(r PriceRange) bool {
	return p.Price >= r.Min && p.Price <= r.Max
}

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
