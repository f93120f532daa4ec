package search

import (
	"math"
	"strings"

	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/model"
)

// fieldValue is a lowercased field value prepared for matching.
type fieldValue struct {
	runes []rune
	norm  float64
}

type indexedProduct struct {
	product model.Product
	fields  map[Field][]fieldValue
}

// buildIndex prepares every product once so queries only run the matcher.
func buildIndex(c *catalog.Catalog) []indexedProduct {
	index := make([]indexedProduct, 0, c.Len())
	c.Each(func(_ int, p *model.Product) {
		keywords := make([]fieldValue, 0, len(p.Keywords))
		for _, k := range p.Keywords {
			keywords = append(keywords, newFieldValue(k))
		}
		index = append(index, indexedProduct{
			product: *p,
			fields: map[Field][]fieldValue{
				FieldName:           {newFieldValue(p.Name)},
				FieldKeywords:       keywords,
				FieldCategory:       {newFieldValue(string(p.Category))},
				FieldSearchableText: {newFieldValue(p.SearchableText)},
				FieldDescription:    {newFieldValue(p.Description)},
			},
		})
	})
	return index
}

func newFieldValue(s string) fieldValue {
	s = strings.ToLower(s)
	return fieldValue{runes: []rune(s), norm: fieldNorm(s)}
}

// fieldNorm dampens matches in long fields: 1/sqrt(token count), three decimals.
func fieldNorm(s string) float64 {
	tokens := len(strings.Fields(s))
	if tokens == 0 {
		tokens = 1
	}
	return math.Round(1/math.Sqrt(float64(tokens))*1000) / 1000
}
