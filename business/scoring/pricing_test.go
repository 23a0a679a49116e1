package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine()
	require.NoError(t, err)
	return engine
}

func floatPtr(v float64) *float64 { return &v }

func TestPredictPrice(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price:         100,
		Category:      domain.CategoryElectronics,
		RatingAverage: 4.8,
		DemandScore:   floatPtr(0.5),
	}

	result := engine.PredictPrice(product, nil)

	// 100 * 1.10 (electronics) * 1.05 (rating > 4) * 1.00 (neutral demand)
	assert.Equal(t, 100.0, result.CurrentPrice)
	assert.Equal(t, 115.50, result.PredictedPrice)
	assert.Equal(t, 0.75, result.Confidence)
	assert.Equal(t, 1.10, result.Factors["category"])
	assert.Equal(t, 1.05, result.Factors["rating"])
	assert.Equal(t, 1.00, result.Factors["demand"])
}

func TestPredictPriceCompetitorBlend(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price:         100,
		Category:      domain.CategoryElectronics,
		RatingAverage: 4.8,
	}
	market := &domain.MarketConditions{
		CompetitorPrice: floatPtr(120),
	}

	result := engine.PredictPrice(product, market)

	// blend averages the chained prediction with the competitor price:
	// (115.50 + 120) / 2
	assert.Equal(t, 117.75, result.PredictedPrice)
}

func TestPredictPriceMarketTrend(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price:    100,
		Category: domain.CategorySports, // neutral
	}
	market := &domain.MarketConditions{Trend: domain.TrendIncreasing}

	result := engine.PredictPrice(product, market)

	assert.Equal(t, 1.02, result.Factors["trend"])
	// 100 * 1.00 * 0.95 (rating 0 < 3) * 1.00 * 1.02
	assert.Equal(t, 96.90, result.PredictedPrice)
}

func TestPredictPriceMissingDemandScore(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price:         100,
		Category:      domain.CategoryOther,
		RatingAverage: 3.5,
	}

	result := engine.PredictPrice(product, nil)

	assert.Equal(t, 100.0, result.PredictedPrice, "all-neutral chain keeps the base price")
	assert.Equal(t, 1.00, result.Factors["demand"])
}

func TestAdjustPriceDynamically(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price: 100,
		Stock: 10,
	}

	// mid-March noon: neutral season, business-hours premium, normal stock
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	result := engine.AdjustPriceDynamically(product, nil, now)

	assert.Equal(t, 100.0, result.OriginalPrice)
	assert.Equal(t, 102.0, result.DynamicPrice)
	assert.Equal(t, 0.8, result.Confidence)
	assert.Equal(t, 1.00, result.Adjustments["seasonal"])
	assert.Equal(t, 1.02, result.Adjustments["time_of_day"])
	assert.Equal(t, 1.00, result.Adjustments["stock"])
}

func TestAdjustPriceDynamicallyHolidaySeason(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price: 100,
		Stock: 100,
	}

	// late-December evening with an overstocked shelf
	now := time.Date(2025, time.December, 22, 23, 0, 0, 0, time.UTC)

	result := engine.AdjustPriceDynamically(product, nil, now)

	// 100 * 1.15 (December) * 0.98 (off-hours) * 0.98 (high stock)
	assert.Equal(t, 110.45, result.DynamicPrice)
	assert.Equal(t, 1.15, result.Adjustments["seasonal"])
	assert.Equal(t, 0.98, result.Adjustments["time_of_day"])
	assert.Equal(t, 0.98, result.Adjustments["stock"])
}

func TestAdjustPriceDynamicallyMarketConditions(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price: 200,
		Stock: 10,
	}
	market := &domain.MarketConditions{
		Demand:      domain.LevelHigh,
		Competition: domain.LevelLow,
		Trend:       domain.TrendDecreasing,
	}

	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)

	result := engine.AdjustPriceDynamically(product, market, now)

	assert.Equal(t, 1.03, result.Adjustments["demand"])
	assert.Equal(t, 1.02, result.Adjustments["competition"])
	assert.Equal(t, 0.98, result.Adjustments["trend"])
	// 200 * 1.00 * 1.00 * 1.00 * 1.03 * 1.02 * 0.98
	assert.Equal(t, 205.92, result.DynamicPrice)
}

func TestPricingIdempotence(t *testing.T) {
	engine := newTestEngine(t)

	product := domain.Product{
		Price:         49.99,
		Category:      domain.CategoryBeauty,
		RatingAverage: 4.6,
		Stock:         3,
		DemandScore:   floatPtr(0.7),
	}
	market := &domain.MarketConditions{
		CompetitorPrice: floatPtr(55),
		Trend:           domain.TrendIncreasing,
		Demand:          domain.LevelHigh,
	}
	now := time.Date(2025, time.November, 28, 14, 30, 0, 0, time.UTC)

	first := engine.PredictPrice(product, market)
	second := engine.PredictPrice(product, market)
	assert.Equal(t, first, second)

	dynFirst := engine.AdjustPriceDynamically(product, market, now)
	dynSecond := engine.AdjustPriceDynamically(product, market, now)
	assert.Equal(t, dynFirst, dynSecond)
}
