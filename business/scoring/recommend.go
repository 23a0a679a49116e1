package scoring

import (
	"sort"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

const (
	// AlgorithmLabel tags every recommendation response.
	AlgorithmLabel = "collaborative_filtering"

	coldStartConfidence = 0.6
	warmStartConfidence = 0.8
)

// Recommend ranks catalog candidates for a user. With purchase history the
// candidate set is filtered to the user's affinity categories (warm start);
// without history it falls back to catalog-wide popularity (cold start).
// Candidates are expected to be pre-filtered to active products by the
// caller.
func (e *Engine) Recommend(profile *domain.UserProfile, candidates []domain.Product, limit int) domain.RecommendationResult {
	if limit <= 0 {
		limit = 10
	}

	if profile == nil || len(profile.PurchaseEvents) == 0 {
		return domain.RecommendationResult{
			Products:   rankByPopularity(candidates, limit),
			Algorithm:  AlgorithmLabel,
			Confidence: coldStartConfidence,
		}
	}

	affinity := CategoryAffinity(profile.PurchaseEvents)

	// Any category present in the history is equally eligible; candidates
	// keep their incoming order.
	matched := make([]domain.Product, 0, limit)
	for _, p := range candidates {
		if affinity[p.Category] == 0 {
			continue
		}
		matched = append(matched, p)
		if len(matched) == limit {
			break
		}
	}

	return domain.RecommendationResult{
		Products:   matched,
		Algorithm:  AlgorithmLabel,
		Confidence: warmStartConfidence,
	}
}

// rankByPopularity sorts by rating average, ties broken by review count.
// The sort is stable so equally-rated products keep their catalog order.
func rankByPopularity(candidates []domain.Product, limit int) []domain.Product {
	ranked := make([]domain.Product, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RatingAverage != ranked[j].RatingAverage {
			return ranked[i].RatingAverage > ranked[j].RatingAverage
		}
		return ranked[i].RatingCount > ranked[j].RatingCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
