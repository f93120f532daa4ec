package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/metrics"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
	"github.com/iyhunko/storefront-search/internal/search"
)

// CatalogService answers catalog reads, searches and rankings.
type CatalogService struct {
	catalog *catalog.Catalog
	engine  *search.Engine
	store   *StoreService
}

func NewCatalogService(c *catalog.Catalog, engine *search.Engine, store *StoreService) *CatalogService {
	return &CatalogService{
		catalog: c,
		engine:  engine,
		store:   store,
	}
}

// ListProducts returns one catalog page and the paginator of the next page, nil on
// the last page. The query may filter by category and sort by price.
func (cs *CatalogService) ListProducts(_ context.Context, query repository.Query) ([]model.Product, *repository.Paginator) {
	limit := query.Limit
	if limit <= 0 {
		limit = repository.DefaultPaginationLimit
	}
	filter := catalog.Filter{
		Category: model.Category(query.Value(repository.CategoryField)),
		Sort:     catalog.SortOrder(query.Value(repository.SortField)),
	}

	page := cs.catalog.Page(query.AfterID(), limit+1, filter)
	var next *repository.Paginator
	if len(page) > limit {
		page = page[:limit]
		next = &repository.Paginator{LastID: page[limit-1].ID}
	}
	if page == nil {
		page = []model.Product{}
	}
	return page, next
}

func (cs *CatalogService) GetProduct(_ context.Context, id int) (model.Product, error) {
	p, ok := cs.catalog.Get(id)
	if !ok {
		return model.Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return p, nil
}

func (cs *CatalogService) Categories() []model.Category {
	return cs.catalog.Categories()
}

// Search runs a live search. Live searches are not recorded in the history.
// filter narrows and reorders the ranked results.
func (cs *CatalogService) Search(_ context.Context, query string, filter catalog.Filter) []model.Product {
	return cs.search(query, filter, "live")
}

// SubmitSearch runs a search and records the query in the recent search history.
func (cs *CatalogService) SubmitSearch(ctx context.Context, query string, filter catalog.Filter) ([]model.Product, error) {
	results := cs.search(query, filter, "submitted")
	if _, err := cs.store.RecordSearch(ctx, query); err != nil {
		return nil, err
	}
	return results, nil
}

func (cs *CatalogService) search(query string, filter catalog.Filter, kind string) []model.Product {
	start := time.Now()
	results := filter.Apply(cs.engine.Search(query))
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchesTotal.WithLabelValues(kind).Inc()
	metrics.SearchResults.Observe(float64(len(results)))
	slog.Debug("search done", slog.String("kind", kind), slog.String("query", query), slog.Int("results", len(results)))
	return results
}

func (cs *CatalogService) Trending(_ context.Context) []model.Product {
	return cs.engine.Trending()
}

func (cs *CatalogService) Recommendations(_ context.Context, category model.Category, r model.PriceRange) []model.Product {
	return cs.engine.Recommendations(category, r)
}

// Personalized ranks the catalog for profile. A profile without recent searches
// falls back to the stored history.
func (cs *CatalogService) Personalized(ctx context.Context, profile model.UserProfile) ([]model.Product, error) {
	if profile.RecentSearches == nil {
		recent, err := cs.store.RecentSearches(ctx)
		if err != nil {
			return nil, err
		}
		profile.RecentSearches = recent
	}
	return cs.engine.Personalized(profile), nil
}
