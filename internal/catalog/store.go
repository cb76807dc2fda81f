// internal/catalog/store.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"nesscute-assistant/internal/common/errors"
	"nesscute-assistant/internal/common/logger"
	"nesscute-assistant/internal/common/metrics"
	"nesscute-assistant/internal/models"
)

// Store answers the read-only query shapes over the menu catalog. All
// methods are safe for concurrent use; the underlying *sql.DB pools
// connections.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db: db,
		logger: log.With(map[string]interface{}{
			"component": "catalog",
		}),
	}
}

// FindAll returns every menu item in insertion order.
func (s *Store) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	return s.query(ctx, QueryFindAll, sqlFindAll)
}

// FindByCategory returns the items tagged with the given category.
func (s *Store) FindByCategory(ctx context.Context, category models.Category) ([]models.MenuItem, error) {
	return s.query(ctx, QueryFindByCategory, sqlFindByCategory, string(category))
}

// FindAllOrderByRatingDesc returns all items, best rated first.
func (s *Store) FindAllOrderByRatingDesc(ctx context.Context) ([]models.MenuItem, error) {
	return s.query(ctx, QueryFindAllOrderByRatingDesc, sqlFindAllOrderByRatingDesc)
}

// FindByCategoryOrderByRatingDesc returns the items of one category,
// best rated first.
func (s *Store) FindByCategoryOrderByRatingDesc(ctx context.Context, category models.Category) ([]models.MenuItem, error) {
	return s.query(ctx, QueryFindByCategoryOrderByRating, sqlFindByCategoryOrderByRatingDesc, string(category))
}

// SearchByKeyword returns the items whose name or description contains
// the keyword, case-insensitively.
func (s *Store) SearchByKeyword(ctx context.Context, keyword string) ([]models.MenuItem, error) {
	return s.query(ctx, QuerySearchByKeyword, sqlSearchByKeyword, keyword)
}

func (s *Store) query(ctx context.Context, name, query string, args ...interface{}) ([]models.MenuItem, error) {
	metrics.CatalogQueries.WithLabelValues(name).Inc()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("catalog query failed", map[string]interface{}{
			"query": name,
			"error": err.Error(),
		})
		return nil, errors.NewCatalogQueryError(name, err)
	}
	defer rows.Close()

	items, err := scanMenuItems(rows)
	if err != nil {
		return nil, errors.NewCatalogQueryError(name, err)
	}
	return items, nil
}

func scanMenuItems(rows *sql.Rows) ([]models.MenuItem, error) {
	var items []models.MenuItem

	for rows.Next() {
		var (
			item   models.MenuItem
			rating sql.NullFloat64
			count  sql.NullInt64
		)
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&rating,
			&count,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}

		// Unrated items carry NULLs; render as 0.
		if rating.Valid {
			item.GlobalRating = rating.Float64
		}
		if count.Valid {
			item.RatingCount = int(count.Int64)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}

	return items, nil
}
