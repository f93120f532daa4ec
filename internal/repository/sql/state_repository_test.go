package sql_test

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
	"github.com/iyhunko/storefront-search/internal/repository/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonArg matches a driver argument holding JSON equal to want.
type jsonArg struct {
	want string
}

func (a jsonArg) Match(v driver.Value) bool {
	raw, ok := v.([]byte)
	if !ok {
		return false
	}
	var got, want any
	if json.Unmarshal(raw, &got) != nil || json.Unmarshal([]byte(a.want), &want) != nil {
		return false
	}
	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(want)
	return string(gotJSON) == string(wantJSON)
}

func TestStateRepository_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := sql.NewStateRepository(db)
	ctx := context.Background()

	t.Run("existing cart", func(t *testing.T) {
		// given
		rows := sqlmock.NewRows([]string{"value"}).
			AddRow([]byte(`{"items":[{"id":7,"name":"Smart Watch","price":19.99,"quantity":2}]}`))
		mock.ExpectPrepare("SELECT value FROM store_state WHERE key").
			ExpectQuery().
			WithArgs("storefront:cart").
			WillReturnRows(rows)

		// when
		var cart model.Cart
		found, err := repo.Load(ctx, repository.CartKey, &cart)

		// then
		require.NoError(t, err)
		assert.True(t, found)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 7, cart.Items[0].ID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, "39.98", cart.Total().StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key leaves destination untouched", func(t *testing.T) {
		// given
		mock.ExpectPrepare("SELECT value FROM store_state WHERE key").
			ExpectQuery().
			WithArgs("storefront:recent_searches").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		// when
		searches := model.RecentSearches{"keep"}
		found, err := repo.Load(ctx, repository.RecentSearchesKey, &searches)

		// then
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, model.RecentSearches{"keep"}, searches)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		mock.ExpectPrepare("SELECT value FROM store_state WHERE key").
			ExpectQuery().
			WithArgs("storefront:preferences").
			WillReturnError(sqlmock.ErrCancelled)

		var prefs model.Preferences
		found, err := repo.Load(ctx, repository.PreferencesKey, &prefs)

		assert.ErrorIs(t, err, sqlmock.ErrCancelled)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt value", func(t *testing.T) {
		mock.ExpectPrepare("SELECT value FROM store_state WHERE key").
			ExpectQuery().
			WithArgs("storefront:preferences").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`not json`)))

		var prefs model.Preferences
		found, err := repo.Load(ctx, repository.PreferencesKey, &prefs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode state")
		assert.False(t, found)
	})
}

func TestStateRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := sql.NewStateRepository(db)
	ctx := context.Background()

	t.Run("upserts the encoded value", func(t *testing.T) {
		// given
		mock.ExpectPrepare("INSERT INTO store_state (.+) ON CONFLICT").
			ExpectExec().
			WithArgs("storefront:preferences", jsonArg{want: `{"dark_mode":true}`}, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// when
		err := repo.Save(ctx, repository.PreferencesKey, model.Preferences{DarkMode: true})

		// then
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("recent searches are a plain list", func(t *testing.T) {
		mock.ExpectPrepare("INSERT INTO store_state").
			ExpectExec().
			WithArgs("storefront:recent_searches", jsonArg{want: `["watch","shoes"]`}, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, repository.RecentSearchesKey, model.RecentSearches{"watch", "shoes"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure", func(t *testing.T) {
		expectedErr := errors.New("connection reset")
		mock.ExpectPrepare("INSERT INTO store_state").
			ExpectExec().
			WillReturnError(expectedErr)

		err := repo.Save(ctx, repository.CartKey, model.Cart{})

		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unencodable value", func(t *testing.T) {
		err := repo.Save(ctx, repository.CartKey, make(chan int))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to encode state")
	})
}

func TestStateRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := sql.NewStateRepository(db)

	mock.ExpectPrepare("DELETE FROM store_state WHERE key").
		ExpectExec().
		WithArgs("storefront:wishlist").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), repository.WishlistKey)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
