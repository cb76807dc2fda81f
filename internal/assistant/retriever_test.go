// internal/assistant/retriever_test.go
package assistant

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"nesscute-assistant/internal/common/logger"
	"nesscute-assistant/internal/models"
)

// ==========================
// Fake Catalog
// ==========================

// fakeCatalog records calls and serves canned items per query shape.
// Counter access is locked so concurrency tests stay race-clean.
type fakeCatalog struct {
	all        []models.MenuItem
	byCategory map[models.Category][]models.MenuItem
	topRated   []models.MenuItem
	err        error

	mu                sync.Mutex
	findAllCalls      int
	byCategoryCalls   int
	topRatedCalls     int
	requestedCategory models.Category
}

func (f *fakeCatalog) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	f.mu.Lock()
	f.findAllCalls++
	f.mu.Unlock()
	return f.all, f.err
}

func (f *fakeCatalog) FindByCategory(ctx context.Context, category models.Category) ([]models.MenuItem, error) {
	f.mu.Lock()
	f.byCategoryCalls++
	f.requestedCategory = category
	f.mu.Unlock()
	return f.byCategory[category], f.err
}

func (f *fakeCatalog) FindAllOrderByRatingDesc(ctx context.Context) ([]models.MenuItem, error) {
	f.mu.Lock()
	f.topRatedCalls++
	f.mu.Unlock()
	return f.topRated, f.err
}

func (f *fakeCatalog) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findAllCalls + f.byCategoryCalls + f.topRatedCalls
}

// ==========================
// Test Helper Functions
// ==========================

func menuItem(name string, price, rating float64, count int, category models.Category) models.MenuItem {
	return models.MenuItem{
		Name:         name,
		Price:        price,
		GlobalRating: rating,
		RatingCount:  count,
		Category:     category,
	}
}

func newTestRetriever(t *testing.T, cat *fakeCatalog) *Retriever {
	return NewRetriever(cat, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestBuildFactSheet_CategorySection(t *testing.T) {
	cat := &fakeCatalog{
		byCategory: map[models.Category][]models.MenuItem{
			models.CategoryBurger: {
				menuItem("Classic", 8.5, 4.2, 10, models.CategoryBurger),
			},
		},
	}
	r := newTestRetriever(t, cat)

	sheet, err := r.BuildFactSheet(context.Background(), "what burgers do you have")
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(sheet, "Burgers available:\n"))
	assert.Contains(t, sheet, "- Classic: 8.50€ (Rating: 4.2/5, 10 reviews)\n")
	assert.Equal(t, models.CategoryBurger, cat.requestedCategory)
	assert.Equal(t, 0, cat.findAllCalls, "fallback query must not fire when a trigger matched")
}

func TestBuildFactSheet_TopRatedSection(t *testing.T) {
	items := []models.MenuItem{
		menuItem("A", 5, 4.9, 20, models.CategoryBurger),
		menuItem("B", 5, 4.8, 18, models.CategorySandwich),
		menuItem("C", 5, 4.7, 15, models.CategoryDrink),
		menuItem("D", 5, 4.6, 12, models.CategoryDessert),
		menuItem("E", 5, 4.5, 10, models.CategoryBurger),
		menuItem("F", 5, 4.4, 8, models.CategoryBurger),
	}
	cat := &fakeCatalog{topRated: items}
	r := newTestRetriever(t, cat)

	sheet, err := r.BuildFactSheet(context.Background(), "what is the best thing here")
	assert.NoError(t, err)

	assert.Contains(t, sheet, "Top-rated items:\n")
	assert.Contains(t, sheet, "- E: 5.00€")
	assert.NotContains(t, sheet, "- F:", "top-rated section is capped at five items")
}

func TestBuildFactSheet_MultipleTriggersConcatenateInOrder(t *testing.T) {
	cat := &fakeCatalog{
		byCategory: map[models.Category][]models.MenuItem{
			models.CategoryBurger: {
				menuItem("Classic", 8.5, 4.2, 10, models.CategoryBurger),
			},
		},
		topRated: []models.MenuItem{
			menuItem("Classic", 8.5, 4.2, 10, models.CategoryBurger),
		},
	}
	r := newTestRetriever(t, cat)

	sheet, err := r.BuildFactSheet(context.Background(), "recommend me a burger")
	assert.NoError(t, err)

	burgerIdx := strings.Index(sheet, "Burgers available:\n")
	topIdx := strings.Index(sheet, "Top-rated items:\n")
	assert.GreaterOrEqual(t, burgerIdx, 0)
	assert.Greater(t, topIdx, burgerIdx, "category section renders before the top-rated section")

	// No de-duplication across sections.
	assert.Equal(t, 2, strings.Count(sheet, "- Classic:"))
}

func TestBuildFactSheet_FallbackDump(t *testing.T) {
	cat := &fakeCatalog{
		all: []models.MenuItem{
			menuItem("Cola", 2.5, 4.0, 3, models.CategoryDrink),
		},
	}
	r := newTestRetriever(t, cat)

	sheet, err := r.BuildFactSheet(context.Background(), "what is on the menu")
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(sheet, "Menu items:\n"))
	assert.Contains(t, sheet, "- Cola (DRINK): 2.50€ (Rating: 4.0/5)\n")
	assert.NotContains(t, sheet, "reviews", "fallback line format omits the review count")
	assert.Equal(t, 1, cat.findAllCalls)
}

func TestBuildFactSheet_NeverEmpty(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{"empty catalog, category trigger", "any burgers?", "Burgers available:\n"},
		{"empty catalog, no trigger", "show me the menu", "Menu items:\n"},
		{"empty catalog, superlative", "what do you recommend", "Top-rated items:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRetriever(t, &fakeCatalog{})
			sheet, err := r.BuildFactSheet(context.Background(), tt.question)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, sheet, "header line alone for an empty catalog")
		})
	}
}

func TestBuildFactSheet_NumericFormatting(t *testing.T) {
	cat := &fakeCatalog{
		byCategory: map[models.Category][]models.MenuItem{
			models.CategoryBurger: {
				menuItem("Rounded", 4.5, 3.667, 0, models.CategoryBurger),
			},
		},
	}
	r := newTestRetriever(t, cat)

	sheet, err := r.BuildFactSheet(context.Background(), "burger please")
	assert.NoError(t, err)

	assert.Contains(t, sheet, "4.50€", "price renders to exactly two decimals")
	assert.Contains(t, sheet, "3.7/5", "rating renders to exactly one decimal")
	assert.Contains(t, sheet, "0 reviews", "missing count renders as 0")
}

func TestBuildFactSheet_CatalogErrorPropagates(t *testing.T) {
	cat := &fakeCatalog{err: context.DeadlineExceeded}
	r := newTestRetriever(t, cat)

	sheet, err := r.BuildFactSheet(context.Background(), "what burgers do you have")
	assert.Error(t, err)
	assert.Empty(t, sheet)
}
