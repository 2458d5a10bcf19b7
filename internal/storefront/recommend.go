package storefront

import (
	"sort"
	"sync"

	"github.com/menzofashion/menzo/internal/models"
)

const (
	browseHistoryCap  = 20
	trendingCap       = 8
	recommendationCap = 6
	historyWindow     = 5
)

// Recommender derives trending and personalized product lists from the
// product collection plus a persisted browse history. The derivation is pure
// given (allProducts, browseHistory, trending, currentProductID).
type Recommender struct {
	mu      sync.Mutex
	history []string
	local   *LocalStore
}

func NewRecommender(local *LocalStore) *Recommender {
	r := &Recommender{local: local}
	if local != nil {
		local.Get(KeyBrowseHistory, &r.history)
	}
	return r
}

// RecordVisit moves the product to the front of the browse history,
// deduplicating and capping at 20 entries.
func (r *Recommender) RecordVisit(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]string, 0, len(r.history)+1)
	updated = append(updated, productID)
	for _, id := range r.history {
		if id != productID {
			updated = append(updated, id)
		}
	}
	if len(updated) > browseHistoryCap {
		updated = updated[:browseHistoryCap]
	}
	r.history = updated
	if r.local != nil {
		r.local.Put(KeyBrowseHistory, r.history)
	}
}

func (r *Recommender) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Trending sorts all products descending by rating * reviewCount (a
// popularity proxy) and caps at 8. Ties keep collection order.
func Trending(products []models.Product) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating*float64(sorted[i].Reviews) > sorted[j].Rating*float64(sorted[j].Reviews)
	})
	if len(sorted) > trendingCap {
		sorted = sorted[:trendingCap]
	}
	return sorted
}

// Recommendations builds the personalized list for a product page:
// category-matched candidates from the recent browse window, backfilled from
// trending when thin, sorted by rating, capped at 6. The result never
// contains currentProductID, anything in the browse history, or duplicates.
func (r *Recommender) Recommendations(allProducts []models.Product, currentProductID string) []models.Product {
	return Recommend(allProducts, r.History(), Trending(allProducts), currentProductID)
}

// Recommend is the pure derivation behind Recommendations.
func Recommend(allProducts []models.Product, history []string, trending []models.Product, currentProductID string) []models.Product {
	if len(allProducts) == 0 {
		return nil
	}

	byID := make(map[string]models.Product, len(allProducts))
	for _, p := range allProducts {
		byID[p.ID] = p
	}
	browsed := make(map[string]bool, len(history))
	for _, id := range history {
		browsed[id] = true
	}

	// Categories of the most recent browsed items, dropping ids that no
	// longer resolve to a product.
	window := history
	if len(window) > historyWindow {
		window = window[:historyWindow]
	}
	categories := make(map[string]bool)
	for _, id := range window {
		if p, ok := byID[id]; ok {
			categories[p.Category] = true
		}
	}

	var recommended []models.Product
	seen := make(map[string]bool)
	for _, p := range allProducts {
		if p.ID == currentProductID || browsed[p.ID] {
			continue
		}
		if categories[p.Category] {
			recommended = append(recommended, p)
			seen[p.ID] = true
		}
	}

	if len(recommended) < recommendationCap {
		for _, p := range trending {
			if p.ID == currentProductID || browsed[p.ID] || seen[p.ID] {
				continue
			}
			recommended = append(recommended, p)
			seen[p.ID] = true
		}
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].Rating > recommended[j].Rating
	})
	if len(recommended) > recommendationCap {
		recommended = recommended[:recommendationCap]
	}
	return recommended
}
