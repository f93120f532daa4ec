package search

import (
	"slices"
	"sort"
	"strings"

	"github.com/iyhunko/storefront-search/internal/model"
)

// PersonalizedLimit caps the "for you" list.
const PersonalizedLimit = 10

const (
	categoryBonus = 2
	priceBonus    = 1
	termBonus     = 1
)

// PersonalizedScore adds 2 for a preferred category, 1 for a price within the
// preferred range and 1 for every recent search contained in the searchable text.
// Blank search terms are ignored.
func PersonalizedScore(p model.Product, profile model.UserProfile) int {
	score := 0
	if slices.Contains(profile.Categories, p.Category) {
		score += categoryBonus
	}
	if p.InPriceRange(profile.PriceRange) {
		score += priceBonus
	}
	for _, term := range profile.RecentSearches {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" && strings.Contains(p.SearchableText, term) {
			score += termBonus
		}
	}
	return score
}

// Personalized ranks the whole catalog against profile, highest score first.
func (e *Engine) Personalized(profile model.UserProfile) []model.Product {
	products := e.catalog.All()
	scores := make([]int, len(products))
	order := make([]int, len(products))
	for i, p := range products {
		scores[i] = PersonalizedScore(p, profile)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	limit := min(PersonalizedLimit, len(order))
	ranked := make([]model.Product, 0, limit)
	for _, i := range order[:limit] {
		ranked = append(ranked, products[i])
	}
	return ranked
}
