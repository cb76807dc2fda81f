// internal/catalog/queries.go
package catalog

// Query names, used as the metrics label and in error metadata.
const (
	QueryFindAll                     = "find_all"
	QueryFindByCategory              = "find_by_category"
	QueryFindAllOrderByRatingDesc    = "find_all_order_by_rating_desc"
	QueryFindByCategoryOrderByRating = "find_by_category_order_by_rating_desc"
	QuerySearchByKeyword             = "search_by_keyword"
)

const selectColumns = `
	SELECT id, name, description, price, category, global_rating, rating_count
	FROM menu_items`

const (
	sqlFindAll = selectColumns + `
	ORDER BY id`

	sqlFindByCategory = selectColumns + `
	WHERE category = $1
	ORDER BY id`

	sqlFindAllOrderByRatingDesc = selectColumns + `
	ORDER BY global_rating DESC NULLS LAST, rating_count DESC`

	sqlFindByCategoryOrderByRatingDesc = selectColumns + `
	WHERE category = $1
	ORDER BY global_rating DESC NULLS LAST, rating_count DESC`

	sqlSearchByKeyword = selectColumns + `
	WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
	ORDER BY id`
)
