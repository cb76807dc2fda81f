// internal/assistant/retriever.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	"nesscute-assistant/internal/common/logger"
	"nesscute-assistant/internal/models"
)

const topRatedLimit = 5

// categoryTrigger maps a question keyword to one catalog query and the
// section header its results render under. Kept as an ordered slice so
// concatenated sections are deterministic.
type categoryTrigger struct {
	keyword  string
	category models.Category
	header   string
}

var categoryTriggers = []categoryTrigger{
	{"burger", models.CategoryBurger, "Burgers available:\n"},
	{"sandwich", models.CategorySandwich, "Sandwiches available:\n"},
	{"drink", models.CategoryDrink, "Drinks available:\n"},
	{"dessert", models.CategoryDessert, "Desserts available:\n"},
}

var superlativeKeywords = []string{"best", "recommend"}

// Retriever selects catalog queries from trigger phrases in the
// question and renders their results into a textual fact sheet.
type Retriever struct {
	catalog Catalog
	logger  logger.Logger
}

func NewRetriever(catalog Catalog, log logger.Logger) *Retriever {
	return &Retriever{
		catalog: catalog,
		logger: log.With(map[string]interface{}{
			"component": "retriever",
		}),
	}
}

// BuildFactSheet renders grounding context for an in-domain question.
// Output is never empty: when no trigger fires, the full catalog is
// dumped, and an empty catalog still yields the section header alone.
func (r *Retriever) BuildFactSheet(ctx context.Context, question string) (string, error) {
	q := strings.ToLower(question)
	var sheet strings.Builder

	for _, trigger := range categoryTriggers {
		if !strings.Contains(q, trigger.keyword) {
			continue
		}
		items, err := r.catalog.FindByCategory(ctx, trigger.category)
		if err != nil {
			return "", err
		}
		sheet.WriteString(trigger.header)
		for _, item := range items {
			sheet.WriteString(renderItemLine(item))
		}
	}

	if containsAny(q, superlativeKeywords) {
		items, err := r.catalog.FindAllOrderByRatingDesc(ctx)
		if err != nil {
			return "", err
		}
		if len(items) > topRatedLimit {
			items = items[:topRatedLimit]
		}
		sheet.WriteString("Top-rated items:\n")
		for _, item := range items {
			sheet.WriteString(renderItemLine(item))
		}
	}

	// No trigger fired: unfiltered catalog dump so the composer always
	// receives non-empty grounding context.
	if sheet.Len() == 0 {
		items, err := r.catalog.FindAll(ctx)
		if err != nil {
			return "", err
		}
		sheet.WriteString("Menu items:\n")
		for _, item := range items {
			sheet.WriteString(renderItemShortLine(item))
		}
	}

	r.logger.Debug("fact sheet built", map[string]interface{}{
		"bytes": sheet.Len(),
	})

	return sheet.String(), nil
}

// renderItemLine formats one catalog item for a section: price to two
// decimals, rating to one.
func renderItemLine(item models.MenuItem) string {
	return fmt.Sprintf("- %s: %.2f€ (Rating: %.1f/5, %d reviews)\n",
		item.Name, item.Price, item.GlobalRating, item.RatingCount)
}

// renderItemShortLine is the fallback-dump format, omitting the review
// count but carrying the category tag.
func renderItemShortLine(item models.MenuItem) string {
	return fmt.Sprintf("- %s (%s): %.2f€ (Rating: %.1f/5)\n",
		item.Name, item.Category, item.Price, item.GlobalRating)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
