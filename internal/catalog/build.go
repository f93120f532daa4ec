package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/iyhunko/storefront-search/internal/model"
)

const (
	minPrice        = 10
	maxPrice        = 2000
	minRating       = 3.5
	maxRating       = 5.0
	minFeatures     = 3
	maxFeatures     = 6
	minReviews      = 5
	maxReviews      = 500
	maxDescWords    = 5
	minDescWordRune = 4
)

// Build generates the products requested by specs, in spec order, drawing ids from seq.
func Build(seq *Sequence, gen Generator, specs []CategorySpec) *Catalog {
	var products []model.Product
	for _, spec := range specs {
		for range spec.Count {
			products = append(products, generateProduct(seq.Next(), spec.Category, gen))
		}
	}
	return NewCatalog(products)
}

func generateProduct(id int, category model.Category, gen Generator) model.Product {
	name := gen.ProductName()
	material := gen.ProductMaterial()
	adjective := gen.ProductAdjective()
	description := gen.ProductDescription()

	domainTerms := KeywordsFor(category)
	specific := make([]string, 0, len(domainTerms))
	for _, term := range domainTerms {
		if gen.Bool() {
			term = adjective + " " + term
		}
		specific = append(specific, term)
	}

	keywords := Keywords(category, name, adjective, material, specific, description)

	featureCount := gen.IntBetween(minFeatures, maxFeatures)
	features := make([]string, 0, featureCount)
	for range featureCount {
		features = append(features, gen.ProductAdjective()+" "+gen.ProductMaterial())
	}

	return model.Product{
		ID:             id,
		Name:           name,
		Category:       category,
		Price:          gen.Price(minPrice, maxPrice),
		Image:          gen.Pick(imagesFor(category)) + imageQuery,
		Description:    description,
		Rating:         gen.Rating(minRating, maxRating),
		Reviews:        gen.IntBetween(minReviews, maxReviews),
		Features:       features,
		Keywords:       keywords,
		SearchableText: SearchableText(name, category, description, keywords),
	}
}

// Keywords derives the lowercased, de-duplicated keyword set of a product:
// category, name, adjective, material, the category specific terms and up to five
// description words longer than three characters. First occurrence order is kept.
func Keywords(category model.Category, name, adjective, material string, specific []string, description string) []string {
	candidates := []string{string(category), name, adjective, material}
	candidates = append(candidates, specific...)

	words := 0
	for _, word := range strings.Split(description, " ") {
		if words == maxDescWords {
			break
		}
		if utf8.RuneCountInString(word) >= minDescWordRune {
			candidates = append(candidates, word)
			words++
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.ToLower(c)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		keywords = append(keywords, c)
	}
	return keywords
}

// SearchableText is the lowercased concatenation of name, category, description and keywords.
func SearchableText(name string, category model.Category, description string, keywords []string) string {
	parts := []string{name, string(category), description, strings.Join(keywords, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
