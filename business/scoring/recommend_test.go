package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Category: domain.CategoryElectronics, RatingAverage: 4.5, RatingCount: 120},
		{ID: 2, Name: "Novel", Category: domain.CategoryBooks, RatingAverage: 4.8, RatingCount: 40},
		{ID: 3, Name: "Sneakers", Category: domain.CategorySports, RatingAverage: 4.8, RatingCount: 90},
		{ID: 4, Name: "Headphones", Category: domain.CategoryElectronics, RatingAverage: 4.2, RatingCount: 300},
		{ID: 5, Name: "Lamp", Category: domain.CategoryHome, RatingAverage: 3.1, RatingCount: 12},
	}
}

func purchases(categories ...string) []domain.PurchaseEvent {
	events := make([]domain.PurchaseEvent, 0, len(categories))
	for i, c := range categories {
		events = append(events, domain.PurchaseEvent{
			ProductCategory: c,
			Timestamp:       time.Date(2025, time.January, i+1, 0, 0, 0, 0, time.UTC),
		})
	}
	return events
}

func TestRecommendColdStart(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(nil, testCatalog(), 3)

	assert.Equal(t, 0.6, result.Confidence)
	assert.Equal(t, AlgorithmLabel, result.Algorithm)

	// popularity order: rating average desc, then review count desc
	ids := productIDs(result.Products)
	assert.Equal(t, []uint64{3, 2, 1}, ids)
}

func TestRecommendColdStartEmptyProfile(t *testing.T) {
	engine := newTestEngine(t)

	// a profile with no purchase history is still a cold start
	profile := &domain.UserProfile{UserID: 7}
	result := engine.Recommend(profile, testCatalog(), 10)

	assert.Equal(t, 0.6, result.Confidence)
	assert.Len(t, result.Products, 5)
}

func TestRecommendWarmStart(t *testing.T) {
	engine := newTestEngine(t)

	profile := &domain.UserProfile{
		UserID:         7,
		PurchaseEvents: purchases(domain.CategoryElectronics, domain.CategoryElectronics),
	}

	result := engine.Recommend(profile, testCatalog(), 10)

	assert.Equal(t, 0.8, result.Confidence)
	for _, p := range result.Products {
		assert.Equal(t, domain.CategoryElectronics, p.Category)
	}
	// candidates keep their incoming order inside the affinity filter
	assert.Equal(t, []uint64{1, 4}, productIDs(result.Products))
}

func TestRecommendWarmStartRespectsLimit(t *testing.T) {
	engine := newTestEngine(t)

	profile := &domain.UserProfile{
		PurchaseEvents: purchases(domain.CategoryElectronics, domain.CategoryBooks, domain.CategorySports),
	}

	result := engine.Recommend(profile, testCatalog(), 2)

	assert.Len(t, result.Products, 2)
	assert.Equal(t, []uint64{1, 2}, productIDs(result.Products))
}

func TestRecommendEmptyCatalog(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Recommend(nil, nil, 10)

	assert.Empty(t, result.Products)
	assert.Equal(t, 0.6, result.Confidence)
}

func TestRecommendDefaultLimit(t *testing.T) {
	engine := newTestEngine(t)

	catalog := make([]domain.Product, 15)
	for i := range catalog {
		catalog[i] = domain.Product{ID: uint64(i + 1), Category: domain.CategoryOther}
	}

	result := engine.Recommend(nil, catalog, 0)
	assert.Len(t, result.Products, 10)
}

func TestRecommendDoesNotMutateCandidates(t *testing.T) {
	engine := newTestEngine(t)

	catalog := testCatalog()
	engine.Recommend(nil, catalog, 5)

	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, productIDs(catalog), "input slice order must be untouched")
}

func productIDs(products []domain.Product) []uint64 {
	ids := make([]uint64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
