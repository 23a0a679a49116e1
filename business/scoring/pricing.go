package scoring

import (
	"time"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

const (
	predictionConfidence = 0.75
	dynamicConfidence    = 0.8
)

// PredictPrice estimates a market price from the product's category, rating
// and demand signals, plus the market trend when supplied. The competitor
// price, if present, is blended in by averaging after the multiplicative
// chain and before rounding.
func (e *Engine) PredictPrice(product domain.Product, market *domain.MarketConditions) domain.PricePrediction {
	factors := []factor{
		{"category", categoryFactor(product.Category)},
		{"rating", ratingFactor(product.RatingAverage)},
		{"demand", demandFactor(product.DemandScore)},
	}

	var competitorPrice *float64
	if market != nil {
		if market.Trend != "" {
			factors = append(factors, factor{"trend", marketTrendFactor(market.Trend)})
		}
		competitorPrice = market.CompetitorPrice
	}

	predicted, breakdown := applyChain(product.Price, factors)
	predicted = blendCompetitorPrice(predicted, competitorPrice)

	return domain.PricePrediction{
		CurrentPrice:   product.Price,
		PredictedPrice: round2(predicted),
		Confidence:     predictionConfidence,
		Factors:        breakdown,
	}
}

// AdjustPriceDynamically reprices against the current moment: season, time
// of day, stock pressure and market conditions. The caller supplies now so
// the adjustment is reproducible under an injected clock.
func (e *Engine) AdjustPriceDynamically(product domain.Product, market *domain.MarketConditions, now time.Time) domain.DynamicPrice {
	factors := []factor{
		{"seasonal", seasonalFactor(int(now.Month()) - 1)},
		{"time_of_day", timeOfDayFactor(now.Hour())},
		{"stock", stockFactor(product.Stock)},
	}

	if market != nil {
		if market.Demand != "" {
			factors = append(factors, factor{"demand", marketDemandFactor(market.Demand)})
		}
		if market.Competition != "" {
			factors = append(factors, factor{"competition", marketCompetitionFactor(market.Competition)})
		}
		if market.Trend != "" {
			factors = append(factors, factor{"trend", marketTrendFactor(market.Trend)})
		}
	}

	adjusted, breakdown := applyChain(product.Price, factors)

	return domain.DynamicPrice{
		OriginalPrice: product.Price,
		DynamicPrice:  round2(adjusted),
		Adjustments:   breakdown,
		Confidence:    dynamicConfidence,
	}
}
