package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menzofashion/menzo/internal/models"
)

func seedReview(t *testing.T, mem interface {
	CreateReview(ctx context.Context, r *models.Review) error
}, r models.Review) models.Review {
	t.Helper()
	require.NoError(t, mem.CreateReview(context.Background(), &r))
	return r
}

func TestReviewsAverageRating(t *testing.T) {
	srv, mem := newTestBackend(t)
	reviews := NewReviews(NewClient(srv.URL))

	assert.Zero(t, reviews.AverageRating("p1"), "no reviews means zero, not NaN")

	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 5, Date: "2026-08-01"})
	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 4, Date: "2026-08-02"})
	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 3, Date: "2026-08-03"})
	seedReview(t, mem, models.Review{ProductID: "p2", Rating: 1, Date: "2026-08-04"})
	reviews.Refresh()

	assert.Equal(t, 4.0, reviews.AverageRating("p1"))
	assert.Equal(t, 3, reviews.Count("p1"))
	assert.Equal(t, 1, reviews.Count("p2"))
}

func TestReviewsAverageRoundsToOneDecimal(t *testing.T) {
	srv, mem := newTestBackend(t)
	reviews := NewReviews(NewClient(srv.URL))

	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 5})
	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 4})
	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 4})
	reviews.Refresh()

	// mean 4.333... rounds to 4.3
	assert.Equal(t, 4.3, reviews.AverageRating("p1"))
}

func TestProductReviewsMostRecentFirst(t *testing.T) {
	srv, mem := newTestBackend(t)
	reviews := NewReviews(NewClient(srv.URL))

	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 4, Date: "2026-07-15"})
	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 5, Date: "2026-08-20"})
	seedReview(t, mem, models.Review{ProductID: "p1", Rating: 3, Date: "2026-08-01"})
	reviews.Refresh()

	got := reviews.ProductReviews("p1")
	require.Len(t, got, 3)
	assert.Equal(t, "2026-08-20", got[0].Date)
	assert.Equal(t, "2026-08-01", got[1].Date)
	assert.Equal(t, "2026-07-15", got[2].Date)
}

func TestReviewsAdd(t *testing.T) {
	srv, _ := newTestBackend(t)
	reviews := NewReviews(NewClient(srv.URL))

	user := models.Identity{Subject: "123", Name: "Priya", Email: "priya@example.com"}
	created := reviews.Add(user, "p1", 5, "Great jacket", "Warm and light.")
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Date, "server assigns the date")
	assert.Equal(t, "priya@example.com", created.UserID)
	assert.True(t, created.Verified, "verified is set unconditionally")
	assert.Zero(t, created.Helpful)

	assert.Equal(t, 1, reviews.Count("p1"), "add refreshes the cache")
}

func TestReviewsAddInvalidRating(t *testing.T) {
	srv, _ := newTestBackend(t)
	reviews := NewReviews(NewClient(srv.URL))

	created := reviews.Add(models.Identity{Email: "a@b.c"}, "p1", 6, "", "")
	assert.Nil(t, created)
	assert.Equal(t, "Rating must be between 1 and 5", reviews.Err())
}

func TestMarkHelpfulIncrements(t *testing.T) {
	srv, mem := newTestBackend(t)
	reviews := NewReviews(NewClient(srv.URL))

	r := seedReview(t, mem, models.Review{ProductID: "p1", Rating: 4, Helpful: 2, Date: "2026-08-01"})
	reviews.Refresh()

	require.True(t, reviews.MarkHelpful(r.ID))
	got := reviews.ProductReviews("p1")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Helpful)

	assert.False(t, reviews.MarkHelpful("missing"))
}

func TestReviewDeleteOnlyByAuthor(t *testing.T) {
	srv, mem := newTestBackend(t)
	reviews := NewReviews(NewClient(srv.URL))

	r := seedReview(t, mem, models.Review{ProductID: "p1", UserID: "author@example.com", Rating: 4})
	reviews.Refresh()

	err := reviews.Delete(r.ID, models.Identity{Email: "other@example.com"})
	assert.ErrorIs(t, err, errNotAuthor)
	assert.Equal(t, 1, reviews.Count("p1"))

	require.NoError(t, reviews.Delete(r.ID, models.Identity{Email: "author@example.com"}))
	assert.Zero(t, reviews.Count("p1"))
}
