package scoring

import "math"

// factor is one named multiplier in a chain.
type factor struct {
	name  string
	value float64
}

// applyChain multiplies base by every factor in order and records each
// contribution in the breakdown. Order matters: each factor perturbs the
// running product, not the original base.
func applyChain(base float64, factors []factor) (float64, map[string]float64) {
	result := base
	breakdown := make(map[string]float64, len(factors))
	for _, f := range factors {
		result *= f.value
		breakdown[f.name] = f.value
	}
	return result, breakdown
}

// blendCompetitorPrice averages the chained prediction with the competitor
// price. This is a one-shot blend, not a multiplier, and runs after the
// chain and before rounding.
func blendCompetitorPrice(predicted float64, competitorPrice *float64) float64 {
	if competitorPrice == nil {
		return predicted
	}
	return (predicted + *competitorPrice) / 2
}

// round2 rounds to the cent, half away from zero. Used only at the output
// boundary so chained multipliers keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// voteConfidence derives the sentiment confidence from the vote margin,
// floored at 0.5 and capped at 0.9.
func voteConfidence(positive, negative int) float64 {
	diff := positive - negative
	if diff < 0 {
		diff = -diff
	}
	return math.Min(0.9, 0.5+float64(diff)*0.1)
}
