package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

func TestRankSearchResultsStableBoost(t *testing.T) {
	engine := newTestEngine(t)

	matches := []domain.Product{
		{ID: 1, Name: "A", Category: domain.CategoryBooks},
		{ID: 2, Name: "B", Category: domain.CategoryElectronics},
		{ID: 3, Name: "C", Category: domain.CategoryBooks},
	}
	profile := &domain.UserProfile{
		PreferredCategories: []string{domain.CategoryElectronics},
	}

	ranked := engine.RankSearchResults(matches, profile)

	// preferred category first; A and C keep their relative order
	assert.Equal(t, []uint64{2, 1, 3}, productIDs(ranked))
}

func TestRankSearchResultsNoProfile(t *testing.T) {
	engine := newTestEngine(t)

	matches := []domain.Product{
		{ID: 3, Category: domain.CategoryToys},
		{ID: 1, Category: domain.CategoryBeauty},
	}

	ranked := engine.RankSearchResults(matches, nil)
	assert.Equal(t, []uint64{3, 1}, productIDs(ranked))
}

func TestRankSearchResultsNoPreferences(t *testing.T) {
	engine := newTestEngine(t)

	matches := []domain.Product{
		{ID: 1, Category: domain.CategoryToys},
		{ID: 2, Category: domain.CategoryBeauty},
	}
	profile := &domain.UserProfile{UserID: 3}

	ranked := engine.RankSearchResults(matches, profile)
	assert.Equal(t, []uint64{1, 2}, productIDs(ranked))
}

func TestRankSearchResultsDoesNotMutateInput(t *testing.T) {
	engine := newTestEngine(t)

	matches := []domain.Product{
		{ID: 1, Category: domain.CategoryBooks},
		{ID: 2, Category: domain.CategoryElectronics},
	}
	profile := &domain.UserProfile{
		PreferredCategories: []string{domain.CategoryElectronics},
	}

	_ = engine.RankSearchResults(matches, profile)

	assert.Equal(t, []uint64{1, 2}, productIDs(matches))
}

func TestRankSearchResultsMultiplePreferredCategories(t *testing.T) {
	engine := newTestEngine(t)

	matches := []domain.Product{
		{ID: 1, Category: domain.CategoryHome},
		{ID: 2, Category: domain.CategoryBooks},
		{ID: 3, Category: domain.CategorySports},
		{ID: 4, Category: domain.CategoryElectronics},
	}
	profile := &domain.UserProfile{
		PreferredCategories: []string{domain.CategoryBooks, domain.CategoryElectronics},
	}

	ranked := engine.RankSearchResults(matches, profile)

	// both preferred tiers keep their internal order
	assert.Equal(t, []uint64{2, 4, 1, 3}, productIDs(ranked))
}
