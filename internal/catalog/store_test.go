// internal/catalog/store_test.go
package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	stderrors "errors"

	apperrors "nesscute-assistant/internal/common/errors"
	"nesscute-assistant/internal/common/logger"
	"nesscute-assistant/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

var menuColumns = []string{"id", "name", "description", "price", "category", "global_rating", "rating_count"}

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db, logger.NewTestLogger(t)), mock
}

func sampleRows() *sqlmock.Rows {
	return sqlmock.NewRows(menuColumns).
		AddRow(1, "Classic", "beef burger", 8.5, "BURGER", 4.2, 10).
		AddRow(2, "Cola", "soft drink", 2.5, "DRINK", 4.0, 3)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestStore_FindAll(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT id, name, description, price, category, global_rating, rating_count\s+FROM menu_items\s+ORDER BY id`).
		WillReturnRows(sampleRows())

	items, err := store.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Classic", items[0].Name)
	assert.Equal(t, models.CategoryBurger, items[0].Category)
	assert.Equal(t, 8.5, items[0].Price)
	assert.Equal(t, 10, items[0].RatingCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByCategory(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`FROM menu_items\s+WHERE category = \$1\s+ORDER BY id`).
		WithArgs("BURGER").
		WillReturnRows(sqlmock.NewRows(menuColumns).
			AddRow(1, "Classic", "beef burger", 8.5, "BURGER", 4.2, 10))

	items, err := store.FindByCategory(context.Background(), models.CategoryBurger)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Classic", items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindAllOrderByRatingDesc(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`ORDER BY global_rating DESC NULLS LAST, rating_count DESC`).
		WillReturnRows(sampleRows())

	items, err := store.FindAllOrderByRatingDesc(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByCategoryOrderByRatingDesc(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`WHERE category = \$1\s+ORDER BY global_rating DESC NULLS LAST, rating_count DESC`).
		WithArgs("DESSERT").
		WillReturnRows(sqlmock.NewRows(menuColumns))

	items, err := store.FindByCategoryOrderByRatingDesc(context.Background(), models.CategoryDessert)
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SearchByKeyword(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`WHERE name ILIKE '%' \|\| \$1 \|\| '%' OR description ILIKE '%' \|\| \$1 \|\| '%'`).
		WithArgs("burger").
		WillReturnRows(sqlmock.NewRows(menuColumns).
			AddRow(1, "Classic", "beef burger", 8.5, "BURGER", 4.2, 10))

	items, err := store.SearchByKeyword(context.Background(), "burger")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Edge Cases
// ==========================

func TestStore_NullRatingsScanAsZero(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`FROM menu_items\s+ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(menuColumns).
			AddRow(1, "Newcomer", "just added", 6.0, "SANDWICH", nil, nil))

	items, err := store.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].GlobalRating)
	assert.Equal(t, 0, items[0].RatingCount)
}

func TestStore_QueryErrorWrapsStandardError(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`FROM menu_items`).
		WillReturnError(fmt.Errorf("connection reset"))

	items, err := store.FindAll(context.Background())
	assert.Nil(t, items)
	assert.Error(t, err)

	var stdErr *apperrors.StandardError
	assert.True(t, stderrors.As(err, &stdErr))
	assert.Equal(t, apperrors.ErrCodeCatalogQueryFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Contains(t, stdErr.Details, "connection reset")
}

func TestStore_ScanErrorSurfaces(t *testing.T) {
	store, mock := newTestStore(t)

	// Wrong column count forces a scan failure.
	mock.ExpectQuery(`FROM menu_items`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Classic"))

	items, err := store.FindAll(context.Background())
	assert.Nil(t, items)
	assert.Error(t, err)
}
