package scoring

import (
	"sort"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

// RankSearchResults reorders matches so products from the user's stated
// preferred categories come first. The boost is binary and the sort stable:
// relative order inside each tier is a correctness invariant, not a detail.
func (e *Engine) RankSearchResults(matches []domain.Product, profile *domain.UserProfile) []domain.Product {
	ranked := make([]domain.Product, len(matches))
	copy(ranked, matches)

	if profile == nil || len(profile.PreferredCategories) == 0 {
		return ranked
	}

	preferred := make(map[string]struct{}, len(profile.PreferredCategories))
	for _, c := range profile.PreferredCategories {
		preferred[c] = struct{}{}
	}

	boost := func(p domain.Product) int {
		if _, ok := preferred[p.Category]; ok {
			return 1
		}
		return 0
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return boost(ranked[i]) > boost(ranked[j])
	})

	return ranked
}
