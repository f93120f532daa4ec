package model

import "strings"

// MaxRecentSearches bounds the recent search history.
const MaxRecentSearches = 5

// Preferences holds rarely mutated user settings.
type Preferences struct {
	DarkMode bool `json:"dark_mode"`
}

// RecentSearches is the most-recent-first search history.
type RecentSearches []string

// Record puts query in front, removes its previous occurrences and truncates the
// history to MaxRecentSearches. Blank queries are ignored.
func (r RecentSearches) Record(query string) RecentSearches {
	query = strings.TrimSpace(query)
	if query == "" {
		return r
	}
	updated := make(RecentSearches, 0, MaxRecentSearches)
	updated = append(updated, query)
	for _, s := range r {
		if s == query {
			continue
		}
		if len(updated) == MaxRecentSearches {
			break
		}
		updated = append(updated, s)
	}
	return updated
}

// UserProfile drives personalized recommendations.
type UserProfile struct {
	Categories     []Category
	PriceRange     PriceRange
	RecentSearches []string
}
