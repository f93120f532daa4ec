package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/iyhunko/storefront-search/internal/config"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
	"github.com/iyhunko/storefront-search/internal/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestStateRepository_SaveLoad(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := redis.NewStateRepository(client)
	ctx := context.Background()

	t.Run("cart round trip", func(t *testing.T) {
		// given
		var cart model.Cart
		cart.Add(model.Product{ID: 3, Name: "Desk Lamp", Price: 19.99})
		cart.Add(model.Product{ID: 3, Name: "Desk Lamp", Price: 19.99})

		// when
		require.NoError(t, repo.Save(ctx, repository.CartKey, cart))
		var loaded model.Cart
		found, err := repo.Load(ctx, repository.CartKey, &loaded)

		// then
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, cart, loaded)
		assert.True(t, mr.Exists("storefront:cart"))
	})

	t.Run("recent searches are stored as a JSON list", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, repository.RecentSearchesKey, model.RecentSearches{"watch", "lamp"}))

		raw, err := mr.Get("storefront:recent_searches")
		require.NoError(t, err)
		assert.JSONEq(t, `["watch","lamp"]`, raw)
	})

	t.Run("missing key", func(t *testing.T) {
		prefs := model.Preferences{DarkMode: true}
		found, err := repo.Load(ctx, repository.PreferencesKey, &prefs)

		require.NoError(t, err)
		assert.False(t, found)
		assert.True(t, prefs.DarkMode, "destination is untouched")
	})

	t.Run("corrupt value", func(t *testing.T) {
		require.NoError(t, mr.Set("storefront:wishlist", "{"))

		var wishlist model.Wishlist
		found, err := repo.Load(ctx, repository.WishlistKey, &wishlist)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode state")
		assert.False(t, found)
	})
}

func TestStateRepository_Delete(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := redis.NewStateRepository(client)
	ctx := context.Background()

	require.NoError(t, mr.Set("storefront:cart", `{"items":[]}`))

	require.NoError(t, repo.Delete(ctx, repository.CartKey))
	assert.False(t, mr.Exists("storefront:cart"))

	// deleting again is not an error
	require.NoError(t, repo.Delete(ctx, repository.CartKey))
}

func TestStateRepository_ServerDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := redis.NewStateRepository(client)
	mr.Close()

	var cart model.Cart
	_, err := repo.Load(context.Background(), repository.CartKey, &cart)
	assert.Error(t, err)
	assert.Error(t, repo.Save(context.Background(), repository.CartKey, cart))
}

func TestNewClient(t *testing.T) {
	t.Run("connects to a running server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.NewClient(context.Background(), config.Redis{Addr: mr.Addr()})

		require.NoError(t, err)
		defer client.Close()
		assert.Equal(t, mr.Addr(), client.Options().Addr)
	})

	t.Run("fails when the server is unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		client, err := redis.NewClient(context.Background(), config.Redis{Addr: addr})

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
