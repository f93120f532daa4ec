package search

import (
	"math"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/model"
)

// epsilon replaces an exact (zero) field score so that weights still order exact hits.
const epsilon = 0x1p-52

// Result is a ranked search hit. Lower scores are better.
type Result struct {
	Product model.Product
	Score   float64
}

type hit struct {
	pos   int
	score float64
}

// Engine answers search and ranking queries over one catalog.
// It keeps no per-query state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	index   []indexedProduct
	opts    Options
	weights map[Field]float64
	matcher matcher
}

// NewEngine indexes the catalog for searching.
func NewEngine(c *catalog.Catalog, opts Options) *Engine {
	return &Engine{
		catalog: c,
		index:   buildIndex(c),
		opts:    opts,
		weights: opts.normalizedWeights(),
		matcher: matcher{
			threshold:   opts.Threshold,
			distance:    opts.Distance,
			minMatchLen: opts.MinMatchCharLength,
		},
	}
}

// Search returns the products matching query, best match first, each id once.
// A blank query returns an empty slice.
func (e *Engine) Search(query string) []model.Product {
	results := e.Rank(query)
	products := make([]model.Product, 0, len(results))
	for _, r := range results {
		products = append(products, r.Product)
	}
	return products
}

// Rank is Search with the winning score of every product.
func (e *Engine) Rank(query string) []Result {
	hits := e.hits(query)
	seen := make(map[int]struct{}, len(hits))
	results := make([]Result, 0, len(hits))
	for _, h := range hits {
		p := e.index[h.pos].product
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		results = append(results, Result{Product: p, Score: h.score})
	}
	return results
}

// hits evaluates every alternative against every product and returns all matches
// sorted by ascending score, catalog order on ties. A product appears once per
// alternative it satisfies.
func (e *Engine) hits(query string) []hit {
	alternatives := Alternatives(query)
	if len(alternatives) == 0 {
		return nil
	}

	patterns := make([][]rune, 0, len(alternatives))
	for _, a := range alternatives {
		patterns = append(patterns, []rune(a))
	}

	var hits []hit
	for _, pattern := range patterns {
		for pos := range e.index {
			if score, ok := e.scoreProduct(pattern, &e.index[pos]); ok {
				hits = append(hits, hit{pos: pos, score: score})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score < hits[j].score
		}
		return hits[i].pos < hits[j].pos
	})
	return hits
}

// scoreProduct combines the best match of every queried field as the product of
// score^(weight*norm). Fields without a match do not contribute.
func (e *Engine) scoreProduct(pattern []rune, p *indexedProduct) (float64, bool) {
	total := 1.0
	matched := false
	for _, f := range e.opts.QueryFields {
		best, value, ok := e.bestValue(pattern, p.fields[f])
		if !ok {
			continue
		}
		matched = true
		score := best.score
		if score == 0 {
			score = epsilon
		}
		total *= math.Pow(score, e.weights[f]*value.norm)
	}
	return total, matched
}

func (e *Engine) bestValue(pattern []rune, values []fieldValue) (fieldMatch, fieldValue, bool) {
	var (
		best      fieldMatch
		bestValue fieldValue
		found     bool
	)
	for _, v := range values {
		m, ok := e.matcher.match(pattern, v.runes)
		if !ok {
			continue
		}
		if !found || m.score < best.score {
			best, bestValue, found = m, v, true
		}
	}
	return best, bestValue, found
}

const (
	// MaxPatternLength is the longest pattern, in runes, matched against a field.
	MaxPatternLength = 32
	// MaxQueryTokens is the number of leading query tokens searched on their own.
	MaxQueryTokens = 10
)

// Alternatives returns the lowercased whole query followed by its distinct tokens
// longer than one character. Only the first MaxQueryTokens tokens are used and every
// alternative is cut to MaxPatternLength runes. A blank query has no alternatives.
func Alternatives(query string) []string {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) > MaxQueryTokens {
		tokens = tokens[:MaxQueryTokens]
	}
	alternatives := []string{truncate(strings.Join(tokens, " "))}
	for _, token := range tokens {
		token = truncate(token)
		if utf8.RuneCountInString(token) <= 1 || slices.Contains(alternatives, token) {
			continue
		}
		alternatives = append(alternatives, token)
	}
	return alternatives
}

func truncate(pattern string) string {
	runes := []rune(pattern)
	if len(runes) <= MaxPatternLength {
		return pattern
	}
	return strings.TrimRight(string(runes[:MaxPatternLength]), " ")
}
