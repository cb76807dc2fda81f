// internal/models/menu.go
package models

// Category is the menu category tag carried by every catalog item.
type Category string

const (
	CategoryBurger   Category = "BURGER"
	CategorySandwich Category = "SANDWICH"
	CategoryDrink    Category = "DRINK"
	CategoryDessert  Category = "DESSERT"
)

// MenuItem is a read-only projection of a catalog row. It is sourced
// fresh from the catalog on every request and never mutated here.
type MenuItem struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     Category `json:"category"`
	GlobalRating float64  `json:"globalRating"` // 0 when unrated
	RatingCount  int      `json:"ratingCount"`  // 0 when unrated
}
