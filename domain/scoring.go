package domain

import "time"

// Snapshot types consumed and produced by the scoring engine. The engine
// never queries storage itself: callers resolve products and profiles first
// and hand over read-only copies.

// PurchaseEvent is one historical purchase, reduced to the fields the
// affinity aggregation needs.
type PurchaseEvent struct {
	ProductCategory string    `json:"product_category"`
	Timestamp       time.Time `json:"timestamp"`
}

// BrowseEvent is one historical product view.
type BrowseEvent struct {
	ProductCategory string    `json:"product_category"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"duration_seconds"`
}

// UserProfile is the per-user input to recommendation and search ranking.
type UserProfile struct {
	UserID              uint            `json:"user_id"`
	PurchaseEvents      []PurchaseEvent `json:"purchase_events"`
	BrowseEvents        []BrowseEvent   `json:"browse_events"`
	PreferredCategories []string        `json:"preferred_categories"`
	PriceRangeMin       *float64        `json:"price_range_min,omitempty"`
	PriceRangeMax       *float64        `json:"price_range_max,omitempty"`
}

// Market trend and level values. Anything else degrades to neutral.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"

	LevelHigh = "high"
	LevelLow  = "low"
)

// MarketConditions is caller-supplied market state. Every field is optional;
// a missing field contributes the neutral multiplier 1.0.
type MarketConditions struct {
	CompetitorPrice *float64 `json:"competitor_price,omitempty"`
	Trend           string   `json:"trend,omitempty"`
	Demand          string   `json:"demand,omitempty"`
	Competition     string   `json:"competition,omitempty"`
}

// RecommendationResult carries the ranked products plus the algorithm label
// and the branch-fixed confidence.
type RecommendationResult struct {
	Products   []Product `json:"recommendations"`
	Algorithm  string    `json:"algorithm"`
	Confidence float64   `json:"confidence"`
}

// PricePrediction is the output of the price predictor. Factors always holds
// the applied multipliers so the prediction is auditable.
type PricePrediction struct {
	CurrentPrice   float64            `json:"current_price"`
	PredictedPrice float64            `json:"predicted_price"`
	Confidence     float64            `json:"confidence"`
	Factors        map[string]float64 `json:"factors"`
}

// DynamicPrice is the output of the dynamic pricing adjuster.
type DynamicPrice struct {
	OriginalPrice float64            `json:"original_price"`
	DynamicPrice  float64            `json:"dynamic_price"`
	Adjustments   map[string]float64 `json:"adjustments"`
	Confidence    float64            `json:"confidence"`
}

type SentimentScores struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type SentimentResult struct {
	Sentiment  string          `json:"sentiment"`
	Confidence float64         `json:"confidence"`
	Scores     SentimentScores `json:"scores"`
}

// SearchResult is the personalized search response.
type SearchResult struct {
	Products     []Product `json:"products"`
	Query        string    `json:"query"`
	Total        int       `json:"total"`
	Personalized bool      `json:"personalized"`
}
