// Package search ranks catalog products.
//
// Free-text search approximately matches the whole query and each of its tokens against
// the name, keyword and searchable-text fields of every product, combines per-field
// scores by field weight and returns products best match first, each at most once.
// Trending and category recommendations rank by popularity, rating * log10(reviews+1).
// Personalized recommendations add up exact category, price and recent-search hits.
package search
