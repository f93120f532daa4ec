// Package catalog builds and serves the immutable product catalog.
package catalog

import (
	"slices"

	"github.com/iyhunko/storefront-search/internal/model"
)

// Catalog is the read-only product set. It is safe for concurrent readers.
type Catalog struct {
	products []model.Product
	byID     map[int]int
}

// NewCatalog wraps already built products. Products are kept in the given order.
func NewCatalog(products []model.Product) *Catalog {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{
		products: slices.Clone(products),
		byID:     byID,
	}
}

// All returns a copy of the products in catalog order.
func (c *Catalog) All() []model.Product {
	return slices.Clone(c.products)
}

// Each calls fn for every product in catalog order without copying the set.
// fn must not modify the product.
func (c *Catalog) Each(fn func(i int, p *model.Product)) {
	for i := range c.products {
		fn(i, &c.products[i])
	}
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []model.Category {
	var categories []model.Category
	for _, p := range c.products {
		if !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Page returns up to limit products of the filtered listing that come after the
// product afterID. afterID 0 starts at the beginning, an afterID outside the listing
// yields nothing.
func (c *Catalog) Page(afterID int, limit int, f Filter) []model.Product {
	listing := f.Apply(c.products)
	start := 0
	if afterID > 0 {
		i := slices.IndexFunc(listing, func(p model.Product) bool { return p.ID == afterID })
		if i < 0 {
			return nil
		}
		start = i + 1
	}
	end := min(start+limit, len(listing))
	return listing[start:end]
}
