package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/metrics"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
)

var (
	// ErrProductNotFound is returned for product ids that are not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantity is returned for negative cart quantities.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// StoreService owns the cart, wishlist, preferences and recent searches.
// Every mutation loads the aggregate, applies the change and saves it back while
// holding the service lock.
type StoreService struct {
	mu      sync.Mutex
	state   repository.StateRepository
	catalog *catalog.Catalog
}

func NewStoreService(state repository.StateRepository, c *catalog.Catalog) *StoreService {
	return &StoreService{
		state:   state,
		catalog: c,
	}
}

// snapshot is an aggregate holding copies of catalog products.
type snapshot interface {
	Refresh(lookup func(id int) (model.Product, bool))
}

// load reads the aggregate stored under key. Stored product copies are replaced with
// the current catalog products and ids missing from the catalog are dropped.
func load[T any](ctx context.Context, s *StoreService, key repository.StateKey) (T, error) {
	var value T
	if _, err := s.state.Load(ctx, key, &value); err != nil {
		return value, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if snap, ok := any(&value).(snapshot); ok {
		snap.Refresh(s.catalog.Get)
	}
	return value, nil
}

// update applies fn to the aggregate stored under key and persists the result.
// Nothing is saved when fn fails.
func update[T any](ctx context.Context, s *StoreService, key repository.StateKey, fn func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := load[T](ctx, s, key)
	if err != nil {
		return value, err
	}
	if err := fn(&value); err != nil {
		return value, err
	}
	if err := s.state.Save(ctx, key, value); err != nil {
		return value, fmt.Errorf("failed to save %s: %w", key, err)
	}
	return value, nil
}

func (s *StoreService) product(id int) (model.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return model.Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return p, nil
}

func (s *StoreService) Cart(ctx context.Context) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[model.Cart](ctx, s, repository.CartKey)
}

// AddToCart adds one unit of the product, incrementing an existing line.
func (s *StoreService) AddToCart(ctx context.Context, productID int) (model.Cart, error) {
	p, err := s.product(productID)
	if err != nil {
		return model.Cart{}, err
	}
	cart, err := update(ctx, s, repository.CartKey, func(c *model.Cart) error {
		c.Add(p)
		return nil
	})
	if err == nil {
		metrics.CartUpdates.WithLabelValues("add").Inc()
	}
	return cart, err
}

func (s *StoreService) RemoveFromCart(ctx context.Context, productID int) (model.Cart, error) {
	cart, err := update(ctx, s, repository.CartKey, func(c *model.Cart) error {
		c.Remove(productID)
		return nil
	})
	if err == nil {
		metrics.CartUpdates.WithLabelValues("remove").Inc()
	}
	return cart, err
}

// UpdateQuantity sets the quantity of an existing line. Zero keeps the line, an
// absent product is ignored.
func (s *StoreService) UpdateQuantity(ctx context.Context, productID, quantity int) (model.Cart, error) {
	if quantity < 0 {
		return model.Cart{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	cart, err := update(ctx, s, repository.CartKey, func(c *model.Cart) error {
		c.UpdateQuantity(productID, quantity)
		return nil
	})
	if err == nil {
		metrics.CartUpdates.WithLabelValues("update").Inc()
	}
	return cart, err
}

func (s *StoreService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.Delete(ctx, repository.CartKey); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	metrics.CartUpdates.WithLabelValues("clear").Inc()
	return nil
}

// WithCart runs fn with the current cart while holding the service lock, so the
// cart cannot change until fn returns.
func (s *StoreService) WithCart(ctx context.Context, fn func(model.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, err := load[model.Cart](ctx, s, repository.CartKey)
	if err != nil {
		return err
	}
	return fn(cart)
}

func (s *StoreService) Wishlist(ctx context.Context) (model.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[model.Wishlist](ctx, s, repository.WishlistKey)
}

func (s *StoreService) AddToWishlist(ctx context.Context, productID int) (model.Wishlist, error) {
	p, err := s.product(productID)
	if err != nil {
		return model.Wishlist{}, err
	}
	wishlist, err := update(ctx, s, repository.WishlistKey, func(w *model.Wishlist) error {
		w.Add(p)
		return nil
	})
	if err == nil {
		metrics.WishlistUpdates.WithLabelValues("add").Inc()
	}
	return wishlist, err
}

func (s *StoreService) RemoveFromWishlist(ctx context.Context, productID int) (model.Wishlist, error) {
	wishlist, err := update(ctx, s, repository.WishlistKey, func(w *model.Wishlist) error {
		w.Remove(productID)
		return nil
	})
	if err == nil {
		metrics.WishlistUpdates.WithLabelValues("remove").Inc()
	}
	return wishlist, err
}

func (s *StoreService) IsWishlisted(ctx context.Context, productID int) (bool, error) {
	wishlist, err := s.Wishlist(ctx)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}

func (s *StoreService) Preferences(ctx context.Context) (model.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[model.Preferences](ctx, s, repository.PreferencesKey)
}

// ToggleDarkMode flips the dark mode flag and returns the new value.
func (s *StoreService) ToggleDarkMode(ctx context.Context) (bool, error) {
	prefs, err := update(ctx, s, repository.PreferencesKey, func(p *model.Preferences) error {
		p.DarkMode = !p.DarkMode
		return nil
	})
	return prefs.DarkMode, err
}

// RecentSearches returns the search history, most recent first. It is never nil.
func (s *StoreService) RecentSearches(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	searches, err := load[model.RecentSearches](ctx, s, repository.RecentSearchesKey)
	if err != nil {
		return nil, err
	}
	if searches == nil {
		return []string{}, nil
	}
	return searches, nil
}

// RecordSearch puts query at the front of the history. Blank queries are not recorded.
func (s *StoreService) RecordSearch(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return s.RecentSearches(ctx)
	}
	searches, err := update(ctx, s, repository.RecentSearchesKey, func(r *model.RecentSearches) error {
		*r = r.Record(query)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return searches, nil
}
