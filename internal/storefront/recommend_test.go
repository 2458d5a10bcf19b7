package storefront

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menzofashion/menzo/internal/models"
)

func product(id, category string, rating float64, reviews int) models.Product {
	return models.Product{ID: id, Name: "product " + id, Category: category, Rating: rating, Reviews: reviews}
}

func TestTrendingOrderAndCap(t *testing.T) {
	var products []models.Product
	for i := 0; i < 12; i++ {
		// rating*reviews grows with i, so trending is the reverse order.
		products = append(products, product(fmt.Sprintf("p%d", i), "jackets", 4, i+1))
	}

	trending := Trending(products)
	require.Len(t, trending, 8)
	assert.Equal(t, "p11", trending[0].ID)
	assert.Equal(t, "p4", trending[7].ID)
}

func TestTrendingTiesKeepCollectionOrder(t *testing.T) {
	products := []models.Product{
		product("a", "jackets", 4, 10),
		product("b", "jeans", 4, 10),
		product("c", "shirts", 5, 8),
	}

	trending := Trending(products)
	assert.Equal(t, []string{"a", "b", "c"}, []string{trending[0].ID, trending[1].ID, trending[2].ID})
}

func TestRecommendExcludesCurrentAndBrowsed(t *testing.T) {
	products := []models.Product{
		product("p1", "jackets", 4.5, 10),
		product("p2", "jackets", 4.0, 10),
		product("p3", "jackets", 3.5, 10),
		product("p4", "jeans", 5.0, 50),
	}
	history := []string{"p1"}

	recs := Recommend(products, history, Trending(products), "p2")
	for _, r := range recs {
		assert.NotEqual(t, "p1", r.ID, "browsed products are excluded")
		assert.NotEqual(t, "p2", r.ID, "the current product is excluded")
	}
	require.Len(t, recs, 2)
	assert.Equal(t, "p4", recs[0].ID, "final order is by rating, backfill included")
	assert.Equal(t, "p3", recs[1].ID)
}

func TestRecommendBackfillsFromTrending(t *testing.T) {
	products := []models.Product{
		product("p1", "jackets", 4.5, 10),
		product("p2", "jeans", 5.0, 100),
		product("p3", "shirts", 4.8, 80),
		product("p4", "shoes", 4.2, 60),
	}
	// History points at a single jackets product; the category pool beyond it
	// is empty, so everything else arrives via trending backfill.
	recs := Recommend(products, []string{"p1"}, Trending(products), "")

	require.Len(t, recs, 3)
	seen := map[string]bool{}
	for _, r := range recs {
		assert.False(t, seen[r.ID], "no duplicates")
		seen[r.ID] = true
		assert.NotEqual(t, "p1", r.ID)
	}
	assert.Equal(t, "p2", recs[0].ID, "sorted by rating descending")
}

func TestRecommendCap(t *testing.T) {
	var products []models.Product
	for i := 0; i < 15; i++ {
		products = append(products, product(fmt.Sprintf("p%d", i), "jackets", 4, 5))
	}
	recs := Recommend(products, []string{"p0"}, Trending(products), "p1")
	assert.Len(t, recs, 6)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	assert.Nil(t, Recommend(nil, []string{"p1"}, nil, ""))
}

func TestRecordVisitDedupesAndCaps(t *testing.T) {
	r := NewRecommender(nil)

	for i := 0; i < 25; i++ {
		r.RecordVisit(fmt.Sprintf("p%d", i))
	}
	history := r.History()
	require.Len(t, history, 20)
	assert.Equal(t, "p24", history[0], "most recent first")

	r.RecordVisit("p20")
	history = r.History()
	assert.Equal(t, "p20", history[0], "revisit moves to front")
	assert.Len(t, history, 20)
}

func TestRecommenderHistoryPersists(t *testing.T) {
	local := newTestLocal(t)

	r := NewRecommender(local)
	r.RecordVisit("p1")
	r.RecordVisit("p2")

	rehydrated := NewRecommender(local)
	assert.Equal(t, []string{"p2", "p1"}, rehydrated.History())
}
