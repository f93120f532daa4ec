package search_test

import (
	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/model"
)

func fixtureProduct(id int, category model.Category, name, description string, rating float64, reviews int, price float64) model.Product {
	keywords := catalog.Keywords(category, name, "Classic", "Steel", nil, description)
	return model.Product{
		ID:             id,
		Name:           name,
		Category:       category,
		Price:          price,
		Description:    description,
		Rating:         rating,
		Reviews:        reviews,
		Keywords:       keywords,
		SearchableText: catalog.SearchableText(name, category, description, keywords),
	}
}

// fixtureCatalog: 1 Smart Watch, 2 Smart Phone, 3 Cotton Shirt, 4 Face Cream.
func fixtureCatalog() *catalog.Catalog {
	return catalog.NewCatalog([]model.Product{
		fixtureProduct(1, model.CategoryElectronics, "Smart Watch", "Tracks your steps daily", 4.8, 200, 300),
		fixtureProduct(2, model.CategoryElectronics, "Smart Phone", "Calls anyone anywhere", 4.0, 400, 900),
		fixtureProduct(3, model.CategoryClothing, "Cotton Shirt", "Breathable summer fabric", 4.5, 50, 40),
		fixtureProduct(4, model.CategoryBeauty, "Face Cream", "Gentle daily moisturizer", 3.9, 10, 25),
	})
}

func productIDs(products []model.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
