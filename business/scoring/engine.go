package scoring

import (
	"fmt"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

// Engine is the signal scoring core: recommendation ranking, price
// prediction, dynamic pricing, sentiment classification and search
// re-ranking. It holds no mutable state, so a single instance is safe for
// any number of concurrent callers.
type Engine struct{}

// NewEngine validates the reference tables before handing out an engine.
// A hole in a table is a deployment defect and must surface at startup, not
// as a silent neutral default at scoring time.
func NewEngine() (*Engine, error) {
	for _, category := range domain.Categories() {
		if _, ok := categoryMultipliers[category]; !ok {
			return nil, fmt.Errorf("%w: category table missing %q", ErrConfiguration, category)
		}
	}

	for month, m := range seasonalMultipliers {
		if m <= 0 {
			return nil, fmt.Errorf("%w: seasonal table has non-positive entry for month %d", ErrConfiguration, month)
		}
	}

	if len(positiveWords) == 0 || len(negativeWords) == 0 {
		return nil, fmt.Errorf("%w: sentiment lexicon is empty", ErrConfiguration)
	}

	return &Engine{}, nil
}
