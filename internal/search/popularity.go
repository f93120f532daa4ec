package search

import (
	"math"
	"sort"

	"github.com/iyhunko/storefront-search/internal/model"
)

const (
	TrendingLimit        = 6
	RecommendationsLimit = 5
)

// PopularityScore is rating * log10(reviews + 1).
func PopularityScore(p model.Product) float64 {
	return p.Rating * math.Log10(float64(p.Reviews)+1)
}

// Trending returns the most popular products of the whole catalog.
func (e *Engine) Trending() []model.Product {
	return topByPopularity(e.catalog.All(), TrendingLimit)
}

// Recommendations returns the most popular products of category priced within r.
// Unknown categories and empty ranges yield an empty slice.
func (e *Engine) Recommendations(category model.Category, r model.PriceRange) []model.Product {
	var candidates []model.Product
	e.catalog.Each(func(_ int, p *model.Product) {
		if p.Category == category && p.InPriceRange(r) {
			candidates = append(candidates, *p)
		}
	})
	return topByPopularity(candidates, RecommendationsLimit)
}

// topByPopularity sorts products in place, keeping catalog order among equal scores.
func topByPopularity(products []model.Product, limit int) []model.Product {
	scores := make(map[int]float64, len(products))
	for _, p := range products {
		scores[p.ID] = PopularityScore(p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return scores[products[i].ID] > scores[products[j].ID]
	})
	if len(products) > limit {
		products = products[:limit]
	}
	if products == nil {
		return []model.Product{}
	}
	return products
}
