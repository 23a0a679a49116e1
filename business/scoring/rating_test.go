package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

func TestRecomputeRating(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
	}

	summary := RecomputeRating(reviews)

	// 13/3 = 4.333..., rounded to one decimal
	assert.Equal(t, 4.3, summary.Average)
	assert.Equal(t, 3, summary.Count)
}

func TestRecomputeRatingEmpty(t *testing.T) {
	summary := RecomputeRating(nil)

	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestRecomputeRatingRoundsHalfUp(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 4},
		{Rating: 5},
	}

	summary := RecomputeRating(reviews)
	assert.Equal(t, 4.5, summary.Average)
}

func TestRecomputeRatingDoesNotMutateInput(t *testing.T) {
	reviews := []domain.Review{{Rating: 2}, {Rating: 3}}
	before := make([]domain.Review, len(reviews))
	copy(before, reviews)

	_ = RecomputeRating(reviews)

	assert.Equal(t, before, reviews)
}
