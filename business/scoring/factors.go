package scoring

import (
	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

// Signal extractors. Every extractor is total: malformed or missing optional
// input degrades to the neutral multiplier, never an error.

func categoryFactor(category string) float64 {
	if m, ok := categoryMultipliers[category]; ok {
		return m
	}
	return neutralFactor
}

func ratingFactor(average float64) float64 {
	switch {
	case average > 4:
		return 1.05
	case average < 3:
		return 0.95
	default:
		return neutralFactor
	}
}

// demandFactor maps a 0-1 demand score into [0.9, 1.1]. A missing score
// means 0.5, the midpoint, which lands exactly on neutral.
func demandFactor(demandScore *float64) float64 {
	score := 0.5
	if demandScore != nil {
		score = *demandScore
	}
	return 1 + (score-0.5)*0.2
}

func seasonalFactor(monthIndex int) float64 {
	if monthIndex < 0 || monthIndex >= len(seasonalMultipliers) {
		return neutralFactor
	}
	return seasonalMultipliers[monthIndex]
}

func timeOfDayFactor(hour int) float64 {
	switch {
	case hour >= 9 && hour <= 17:
		return 1.02 // business hours premium
	case hour >= 20 || hour <= 6:
		return 0.98 // off-hours discount
	default:
		return neutralFactor
	}
}

func stockFactor(stock int) float64 {
	switch {
	case stock < 5:
		return 1.05 // low stock premium
	case stock > 50:
		return 0.98 // high stock discount
	default:
		return neutralFactor
	}
}

func marketDemandFactor(level string) float64 {
	switch level {
	case domain.LevelHigh:
		return 1.03
	case domain.LevelLow:
		return 0.97
	default:
		return neutralFactor
	}
}

func marketCompetitionFactor(level string) float64 {
	switch level {
	case domain.LevelHigh:
		return 0.98
	case domain.LevelLow:
		return 1.02
	default:
		return neutralFactor
	}
}

func marketTrendFactor(trend string) float64 {
	switch trend {
	case domain.TrendIncreasing:
		return 1.02
	case domain.TrendDecreasing:
		return 0.98
	default:
		return neutralFactor
	}
}

// sentimentVote scores a single lowercased token: +1 positive, -1 negative,
// 0 when the token is in neither lexicon.
func sentimentVote(word string) int {
	if _, ok := positiveWords[word]; ok {
		return 1
	}
	if _, ok := negativeWords[word]; ok {
		return -1
	}
	return 0
}
