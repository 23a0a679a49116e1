package scoring

import (
	"math"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

// RecomputeRating folds a review set into a fresh rating summary. The
// average is rounded to one decimal. The caller persists the result; the
// engine never mutates product state as a side effect of a review.
func RecomputeRating(reviews []domain.Review) domain.RatingSummary {
	if len(reviews) == 0 {
		return domain.RatingSummary{}
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}

	average := math.Round(float64(total)/float64(len(reviews))*10) / 10

	return domain.RatingSummary{
		Average: average,
		Count:   len(reviews),
	}
}
