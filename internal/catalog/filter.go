package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/iyhunko/storefront-search/internal/model"
)

// SortOrder orders a product listing. The zero value keeps the listing's own order.
type SortOrder string

const (
	SortDefault   SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

var ErrInvalidSortOrder = errors.New("invalid sort order")

func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(s); order {
	case SortDefault, SortPriceAsc, SortPriceDesc:
		return order, nil
	default:
		return SortDefault, fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}

// Filter narrows a listing to one category and orders it by price.
type Filter struct {
	Category model.Category
	Sort     SortOrder
}

// Apply returns the products matching the category in the requested order. Equal
// prices keep their input order. products is not modified.
func (f Filter) Apply(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmp.Compare(b.Price, a.Price) })
	}
	return out
}
