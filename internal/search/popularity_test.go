package search_test

import (
	"math"
	"testing"

	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularityScore(t *testing.T) {
	assert.InDelta(t, 4.8*math.Log10(201), search.PopularityScore(model.Product{Rating: 4.8, Reviews: 200}), 1e-9)
	assert.Zero(t, search.PopularityScore(model.Product{Rating: 5, Reviews: 0}))
}

func TestEngine_Trending(t *testing.T) {
	t.Run("small catalog is returned whole, most popular first", func(t *testing.T) {
		engine := search.NewEngine(fixtureCatalog(), search.DefaultOptions())

		assert.Equal(t, []int{1, 2, 3, 4}, productIDs(engine.Trending()))
	})

	t.Run("generated catalog is capped and sorted", func(t *testing.T) {
		c := catalog.Build(catalog.NewSequence(), catalog.NewFakerGenerator(11), catalog.DefaultSpecs())
		engine := search.NewEngine(c, search.DefaultOptions())

		// when
		trending := engine.Trending()

		// then
		require.Len(t, trending, search.TrendingLimit)
		for i := 1; i < len(trending); i++ {
			assert.GreaterOrEqual(t, search.PopularityScore(trending[i-1]), search.PopularityScore(trending[i]))
		}
		for _, p := range c.All() {
			assert.LessOrEqual(t, search.PopularityScore(p), search.PopularityScore(trending[0]))
		}
	})

	t.Run("equal popularity keeps catalog order", func(t *testing.T) {
		c := catalog.NewCatalog([]model.Product{
			{ID: 9, Rating: 4, Reviews: 99},
			{ID: 2, Rating: 4, Reviews: 99},
			{ID: 5, Rating: 5, Reviews: 99},
		})
		engine := search.NewEngine(c, search.DefaultOptions())

		assert.Equal(t, []int{5, 9, 2}, productIDs(engine.Trending()))
	})

	t.Run("catalog order is not disturbed", func(t *testing.T) {
		c := fixtureCatalog()
		engine := search.NewEngine(c, search.DefaultOptions())
		before := productIDs(c.All())

		_ = engine.Trending()

		assert.Equal(t, before, productIDs(c.All()))
	})

	t.Run("empty catalog", func(t *testing.T) {
		engine := search.NewEngine(catalog.NewCatalog(nil), search.DefaultOptions())

		trending := engine.Trending()
		assert.NotNil(t, trending)
		assert.Empty(t, trending)
	})
}

func TestEngine_Recommendations(t *testing.T) {
	engine := search.NewEngine(fixtureCatalog(), search.DefaultOptions())

	tests := []struct {
		name     string
		category model.Category
		r        model.PriceRange
		want     []int
	}{
		{"Recommendations_CategoryAndRange", model.CategoryElectronics, model.PriceRange{Min: 0, Max: 1000}, []int{1, 2}},
		{"Recommendations_RangeFilters", model.CategoryElectronics, model.PriceRange{Min: 0, Max: 500}, []int{1}},
		{"Recommendations_InclusiveBounds", model.CategoryElectronics, model.PriceRange{Min: 900, Max: 900}, []int{2}},
		{"Recommendations_NoProductsInCategory", model.CategorySports, model.PriceRange{Min: 0, Max: 10000}, []int{}},
		{"Recommendations_UnknownCategory", model.Category("Garden"), model.PriceRange{Min: 0, Max: 10000}, []int{}},
		{"Recommendations_InvertedRange", model.CategoryElectronics, model.PriceRange{Min: 1000, Max: 0}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Recommendations(tt.category, tt.r)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, productIDs(got))
		})
	}
}

func TestEngine_RecommendationsLimit(t *testing.T) {
	c := catalog.Build(catalog.NewSequence(), catalog.NewFakerGenerator(3), catalog.DefaultSpecs())
	engine := search.NewEngine(c, search.DefaultOptions())

	got := engine.Recommendations(model.CategoryClothing, model.PriceRange{Min: 0, Max: 5000})

	require.Len(t, got, search.RecommendationsLimit)
	for _, p := range got {
		assert.Equal(t, model.CategoryClothing, p.Category)
	}
}
