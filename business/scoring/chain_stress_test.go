//go:build !integration

package scoring

import (
	"math/rand"
	"testing"
	"time"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

// scenario params
const (
	stressNumProducts = 5000
	stressSeed        = 42
)

// TestChainDeterminism hammers the pricing chains with randomized products
// and checks that repeated invocations with identical inputs always agree.
func TestChainDeterminism(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	rng := rand.New(rand.NewSource(stressSeed))
	categories := domain.Categories()

	now := time.Date(2025, time.October, 3, 15, 45, 0, 0, time.UTC)

	mismatches := 0
	for i := 0; i < stressNumProducts; i++ {
		demand := rng.Float64()
		product := domain.Product{
			ID:            uint64(i + 1),
			Price:         1 + rng.Float64()*999,
			Category:      categories[rng.Intn(len(categories))],
			RatingAverage: rng.Float64() * 5,
			Stock:         rng.Intn(200),
			DemandScore:   &demand,
		}

		competitor := product.Price * (0.8 + rng.Float64()*0.4)
		market := &domain.MarketConditions{
			CompetitorPrice: &competitor,
			Trend:           domain.TrendIncreasing,
			Demand:          domain.LevelHigh,
			Competition:     domain.LevelLow,
		}

		p1 := engine.PredictPrice(product, market)
		p2 := engine.PredictPrice(product, market)
		if p1.PredictedPrice != p2.PredictedPrice {
			mismatches++
		}

		d1 := engine.AdjustPriceDynamically(product, market, now)
		d2 := engine.AdjustPriceDynamically(product, market, now)
		if d1.DynamicPrice != d2.DynamicPrice {
			mismatches++
		}

		// sanity: two decimal places at the output boundary
		if round2(p1.PredictedPrice) != p1.PredictedPrice {
			t.Fatalf("prediction not rounded to cents: %v", p1.PredictedPrice)
		}
		if round2(d1.DynamicPrice) != d1.DynamicPrice {
			t.Fatalf("dynamic price not rounded to cents: %v", d1.DynamicPrice)
		}
	}

	if mismatches != 0 {
		t.Fatalf("expected deterministic output, got %d mismatches", mismatches)
	}

	t.Logf("[CHAIN] products=%d mismatches=%d", stressNumProducts, mismatches)
}
