package model_test

import (
	"testing"

	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add(t *testing.T) {
	t.Run("adding the same product twice increments quantity", func(t *testing.T) {
		// given
		var cart model.Cart
		p := model.Product{ID: 7, Name: "Smart Watch", Price: 300}

		// when
		cart.Add(p)
		cart.Add(p)

		// then
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("different products get their own lines in insertion order", func(t *testing.T) {
		var cart model.Cart
		cart.Add(model.Product{ID: 2})
		cart.Add(model.Product{ID: 1})

		require.Len(t, cart.Items, 2)
		assert.Equal(t, 2, cart.Items[0].ID)
		assert.Equal(t, 1, cart.Items[1].ID)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("zero quantity keeps the line", func(t *testing.T) {
		var cart model.Cart
		cart.Add(model.Product{ID: 1})

		ok := cart.UpdateQuantity(1, 0)

		assert.True(t, ok)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 0, cart.Items[0].Quantity)
	})

	t.Run("unknown product is reported", func(t *testing.T) {
		var cart model.Cart
		assert.False(t, cart.UpdateQuantity(42, 3))
		assert.True(t, cart.IsEmpty())
	})
}

func TestCart_Remove(t *testing.T) {
	var cart model.Cart
	cart.Add(model.Product{ID: 1})
	cart.Add(model.Product{ID: 2})

	cart.Remove(1)
	cart.Remove(99)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].ID)
}

func TestCart_Total(t *testing.T) {
	var cart model.Cart
	cart.Add(model.Product{ID: 1, Price: 19.99})
	cart.Add(model.Product{ID: 1, Price: 19.99})
	cart.Add(model.Product{ID: 2, Price: 0.1})

	assert.True(t, decimal.RequireFromString("40.08").Equal(cart.Total()), "got %s", cart.Total())
	assert.Equal(t, 3, cart.Count())
}

func TestCart_Payable(t *testing.T) {
	cart := model.Cart{Items: []model.CartItem{
		{Product: model.Product{ID: 1, Price: 10}, Quantity: 0},
		{Product: model.Product{ID: 2, Price: 5}, Quantity: 2},
	}}

	payable := cart.Payable()

	require.Len(t, payable.Items, 1)
	assert.Equal(t, 2, payable.Items[0].ID)
	assert.Len(t, cart.Items, 2, "the cart itself is unchanged")
	assert.True(t, model.Cart{Items: []model.CartItem{{Quantity: 0}}}.Payable().IsEmpty())
}

func TestRefresh(t *testing.T) {
	current := map[int]model.Product{
		1: {ID: 1, Name: "Bold Robot", Price: 184.05},
		3: {ID: 3, Name: "Cotton Shirt", Price: 40},
	}
	lookup := func(id int) (model.Product, bool) {
		p, ok := current[id]
		return p, ok
	}

	t.Run("cart lines take the current product and keep their quantity", func(t *testing.T) {
		// given
		cart := model.Cart{Items: []model.CartItem{
			{Product: model.Product{ID: 1, Name: "Swift Glass Clock", Price: 281.65}, Quantity: 2},
			{Product: model.Product{ID: 2, Name: "Gone"}, Quantity: 1},
			{Product: model.Product{ID: 3, Name: "Cotton Shirt", Price: 40}, Quantity: 1},
		}}

		// when
		cart.Refresh(lookup)

		// then
		require.Len(t, cart.Items, 2)
		assert.Equal(t, current[1], cart.Items[0].Product)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 3, cart.Items[1].ID)
		assert.Equal(t, "408.1", cart.Total().String())
	})

	t.Run("wishlist drops unknown products", func(t *testing.T) {
		wishlist := model.Wishlist{Items: []model.Product{{ID: 2}, {ID: 1, Name: "Swift Glass Clock"}}}

		wishlist.Refresh(lookup)

		assert.Equal(t, []model.Product{current[1]}, wishlist.Items)
	})
}

func TestWishlist(t *testing.T) {
	var w model.Wishlist
	w.Add(model.Product{ID: 1})
	w.Add(model.Product{ID: 1})
	w.Add(model.Product{ID: 2})

	assert.Len(t, w.Items, 2)
	assert.True(t, w.Contains(1))

	w.Remove(1)
	assert.False(t, w.Contains(1))
	assert.True(t, w.Contains(2))
}

func TestRecentSearches_Record(t *testing.T) {
	tests := []struct {
		name    string
		history model.RecentSearches
		query   string
		want    model.RecentSearches
	}{
		{"Record_Empty", nil, "watch", model.RecentSearches{"watch"}},
		{"Record_MovesDuplicateToFront", model.RecentSearches{"a1", "watch", "b2"}, "watch", model.RecentSearches{"watch", "a1", "b2"}},
		{"Record_Truncates", model.RecentSearches{"q1", "q2", "q3", "q4", "q5"}, "q6", model.RecentSearches{"q6", "q1", "q2", "q3", "q4"}},
		{"Record_IgnoresBlank", model.RecentSearches{"q1"}, "   ", model.RecentSearches{"q1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.history.Record(tt.query))
		})
	}
}
