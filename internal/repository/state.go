package repository

import "context"

// StateKey names one persisted store aggregate.
type StateKey string

const (
	CartKey           StateKey = "storefront:cart"
	WishlistKey       StateKey = "storefront:wishlist"
	PreferencesKey    StateKey = "storefront:preferences"
	RecentSearchesKey StateKey = "storefront:recent_searches"
)

// StateRepository persists store aggregates as JSON documents keyed by StateKey.
// Writes are last-write-wins.
type StateRepository interface {
	// Load decodes the value stored under key into dst and reports whether it existed.
	// dst is left untouched when the key is absent.
	Load(ctx context.Context, key StateKey, dst any) (bool, error)
	Save(ctx context.Context, key StateKey, value any) error
	Delete(ctx context.Context, key StateKey) error
}
