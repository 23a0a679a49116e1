package scoring

import "github.com/talha-dycoders/Intelligent-ecommerce-app/domain"

// CategoryAffinity reduces a purchase history into per-category occurrence
// counts. Categories with a non-zero count become the recommendation
// candidate filter; relative counts are deliberately not used for ranking.
func CategoryAffinity(events []domain.PurchaseEvent) map[string]int {
	counts := make(map[string]int, len(events))
	for _, e := range events {
		if e.ProductCategory == "" {
			continue
		}
		counts[e.ProductCategory]++
	}
	return counts
}
