package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

func TestNewEngineValidatesTables(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	require.NotNil(t, engine)
}

func TestCategoryFactor(t *testing.T) {
	tests := []struct {
		category string
		want     float64
	}{
		{"electronics", 1.10},
		{"clothing", 0.95},
		{"books", 0.90},
		{"home", 1.05},
		{"sports", 1.00},
		{"beauty", 1.08},
		{"toys", 0.92},
		{"other", 1.00},
		{"groceries", 1.00}, // unknown category falls back to neutral
		{"", 1.00},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryFactor(tt.category), "category %q", tt.category)
	}
}

func TestRatingFactor(t *testing.T) {
	assert.Equal(t, 1.05, ratingFactor(5))
	assert.Equal(t, 1.05, ratingFactor(4.1))
	assert.Equal(t, 0.95, ratingFactor(2))
	assert.Equal(t, 0.95, ratingFactor(0))
	assert.Equal(t, 1.00, ratingFactor(3.5))
	assert.Equal(t, 1.00, ratingFactor(4)) // boundary: strictly greater than 4
	assert.Equal(t, 1.00, ratingFactor(3)) // boundary: strictly less than 3
}

func TestDemandFactor(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	assert.Equal(t, 1.0, demandFactor(nil), "missing score is neutral")
	assert.Equal(t, 1.0, demandFactor(score(0.5)))
	assert.InDelta(t, 1.1, demandFactor(score(1.0)), 1e-9)
	assert.InDelta(t, 0.9, demandFactor(score(0.0)), 1e-9)
}

func TestSeasonalFactor(t *testing.T) {
	assert.Equal(t, 1.10, seasonalFactor(0))  // January
	assert.Equal(t, 0.95, seasonalFactor(1))  // February
	assert.Equal(t, 1.10, seasonalFactor(10)) // November
	assert.Equal(t, 1.15, seasonalFactor(11)) // December

	// out of range degrades to neutral instead of panicking
	assert.Equal(t, 1.00, seasonalFactor(-1))
	assert.Equal(t, 1.00, seasonalFactor(12))
}

func TestTimeOfDayFactor(t *testing.T) {
	assert.Equal(t, 1.02, timeOfDayFactor(9))
	assert.Equal(t, 1.02, timeOfDayFactor(17))
	assert.Equal(t, 0.98, timeOfDayFactor(20))
	assert.Equal(t, 0.98, timeOfDayFactor(23))
	assert.Equal(t, 0.98, timeOfDayFactor(0))
	assert.Equal(t, 0.98, timeOfDayFactor(6))
	assert.Equal(t, 1.00, timeOfDayFactor(8))
	assert.Equal(t, 1.00, timeOfDayFactor(19))
}

func TestStockFactor(t *testing.T) {
	assert.Equal(t, 1.05, stockFactor(0))
	assert.Equal(t, 1.05, stockFactor(4))
	assert.Equal(t, 1.00, stockFactor(5))
	assert.Equal(t, 1.00, stockFactor(50))
	assert.Equal(t, 0.98, stockFactor(51))
}

func TestMarketFactors(t *testing.T) {
	assert.Equal(t, 1.03, marketDemandFactor(domain.LevelHigh))
	assert.Equal(t, 0.97, marketDemandFactor(domain.LevelLow))
	assert.Equal(t, 1.00, marketDemandFactor("medium"))
	assert.Equal(t, 1.00, marketDemandFactor(""))

	assert.Equal(t, 0.98, marketCompetitionFactor(domain.LevelHigh))
	assert.Equal(t, 1.02, marketCompetitionFactor(domain.LevelLow))
	assert.Equal(t, 1.00, marketCompetitionFactor(""))

	assert.Equal(t, 1.02, marketTrendFactor(domain.TrendIncreasing))
	assert.Equal(t, 0.98, marketTrendFactor(domain.TrendDecreasing))
	assert.Equal(t, 1.00, marketTrendFactor("flat"))
	assert.Equal(t, 1.00, marketTrendFactor(""))
}

func TestSentimentVote(t *testing.T) {
	assert.Equal(t, 1, sentimentVote("great"))
	assert.Equal(t, -1, sentimentVote("broken"))
	assert.Equal(t, 0, sentimentVote("keyboard"))
	assert.Equal(t, 0, sentimentVote(""))
}
