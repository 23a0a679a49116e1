package scoring

import (
	"fmt"
	"strings"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

// ClassifySentiment labels a short text by additive lexicon votes.
// Tokenization is on runs of non-whitespace; matching is case-insensitive.
// Empty or whitespace-only text is the one structurally invalid input.
func (e *Engine) ClassifySentiment(text string) (domain.SentimentResult, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return domain.SentimentResult{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	positiveScore := 0
	negativeScore := 0
	for _, word := range words {
		switch sentimentVote(word) {
		case 1:
			positiveScore++
		case -1:
			negativeScore++
		}
	}

	sentiment := domain.SentimentNeutral
	switch {
	case positiveScore > negativeScore:
		sentiment = domain.SentimentPositive
	case negativeScore > positiveScore:
		sentiment = domain.SentimentNegative
	}

	return domain.SentimentResult{
		Sentiment:  sentiment,
		Confidence: voteConfidence(positiveScore, negativeScore),
		Scores: domain.SentimentScores{
			Positive: positiveScore,
			Negative: negativeScore,
		},
	}, nil
}
