package service_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
	reporedis "github.com/iyhunko/storefront-search/internal/repository/redis"
	"github.com/iyhunko/storefront-search/internal/search"
	"github.com/iyhunko/storefront-search/internal/service"
	"github.com/stretchr/testify/mock"
)

func fixtureProduct(id int, category model.Category, name, description string, rating float64, reviews int, price float64) model.Product {
	keywords := catalog.Keywords(category, name, "Classic", "Steel", nil, description)
	return model.Product{
		ID:             id,
		Name:           name,
		Category:       category,
		Price:          price,
		Image:          "https://images.example.com/" + name,
		Description:    description,
		Rating:         rating,
		Reviews:        reviews,
		Keywords:       keywords,
		SearchableText: catalog.SearchableText(name, category, description, keywords),
	}
}

func fixtureCatalog() *catalog.Catalog {
	return catalog.NewCatalog([]model.Product{
		fixtureProduct(1, model.CategoryElectronics, "Smart Watch", "Tracks your steps daily", 4.8, 200, 300),
		fixtureProduct(2, model.CategoryElectronics, "Smart Phone", "Calls anyone anywhere", 4.0, 400, 900),
		fixtureProduct(3, model.CategoryClothing, "Cotton Shirt", "Breathable summer fabric", 4.5, 50, 40),
		fixtureProduct(4, model.CategoryBeauty, "Face Cream", "Gentle daily moisturizer", 3.9, 10, 25),
	})
}

// newRedisState returns a state repository backed by an in-memory Redis server.
func newRedisState(t *testing.T) (*reporedis.StateRepository, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return reporedis.NewStateRepository(client), server
}

func newStoreService(t *testing.T) (*service.StoreService, *reporedis.StateRepository) {
	t.Helper()
	state, _ := newRedisState(t)
	return service.NewStoreService(state, fixtureCatalog()), state
}

func newCatalogService(t *testing.T) (*service.CatalogService, *service.StoreService) {
	t.Helper()
	c := fixtureCatalog()
	state, _ := newRedisState(t)
	store := service.NewStoreService(state, c)
	return service.NewCatalogService(c, search.NewEngine(c, search.DefaultOptions()), store), store
}

func productIDs(products []model.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// MockStateRepository is a mock implementation of repository.StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Load(ctx context.Context, key repository.StateKey, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, key repository.StateKey, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, key repository.StateKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, resource repository.Resource) (repository.Resource, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Resource), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, query repository.Query) ([]repository.Resource, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Resource), args.Error(1)
}

func (m *MockEventRepository) UpdateStatus(ctx context.Context, eventID uuid.UUID, status any) error {
	args := m.Called(ctx, eventID, status)
	return args.Error(0)
}
