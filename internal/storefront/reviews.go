package storefront

import (
	"errors"
	"math"
	"net/url"
	"sort"
	"sync"

	"github.com/menzofashion/menzo/internal/models"
)

// Reviews mirrors the review collection and derives per-product aggregates.
// The denormalized rating/reviews fields on Product are not written back from
// here; they drift until an admin updates them.
type Reviews struct {
	client *Client

	mu    sync.RWMutex
	cache cache[models.Review]
}

func NewReviews(client *Client) *Reviews {
	return &Reviews{client: client}
}

func (r *Reviews) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	refreshCache(r.client, "/reviews", "Review", &r.cache)
}

func (r *Reviews) Err() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cache.err
}

// ProductReviews returns the product's reviews, most recent first. Date
// strings are date-only (YYYY-MM-DD) so lexical order is chronological.
func (r *Reviews) ProductReviews(productID string) []models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Review
	for _, rev := range r.cache.items {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// AverageRating is the mean of all matching ratings rounded to one decimal
// place; zero when the product has no reviews.
func (r *Reviews) AverageRating(productID string) float64 {
	matching := r.ProductReviews(productID)
	if len(matching) == 0 {
		return 0
	}
	sum := 0.0
	for _, rev := range matching {
		sum += rev.Rating
	}
	return math.Round(sum/float64(len(matching))*10) / 10
}

func (r *Reviews) Count(productID string) int {
	return len(r.ProductReviews(productID))
}

// Add submits a review for the signed-in user. The server assigns id and
// date; verified is set unconditionally, there is no purchase check behind
// it. Returns nil on failure with the reason in the error slot.
func (r *Reviews) Add(user models.Identity, productID string, rating float64, title, text string) *models.Review {
	payload := models.Review{
		ProductID: productID,
		UserID:    user.Key(),
		UserName:  user.Name,
		Rating:    rating,
		Title:     title,
		Text:      text,
		Helpful:   0,
		Verified:  true,
	}

	var created models.Review
	if err := r.client.Post("/reviews", payload, &created); err != nil {
		r.setErr(err.Error())
		return nil
	}
	r.Refresh()
	return &created
}

// MarkHelpful reads the current count and writes back the incremented full
// record via PUT. Two concurrent increments race: the read-modify-write is
// not atomic and the last write wins.
func (r *Reviews) MarkHelpful(reviewID string) bool {
	review := r.byID(reviewID)
	if review == nil {
		return false
	}

	review.Helpful++
	if err := r.client.Put("/reviews/"+url.PathEscape(reviewID), review, nil); err != nil {
		r.setErr(err.Error())
		return false
	}
	r.Refresh()
	return true
}

// errNotAuthor reports a delete attempted by someone other than the review's
// author. The check compares email strings and exists only at this layer;
// the server trusts any delete it receives.
var errNotAuthor = errors.New("only the review author can delete a review")

func (r *Reviews) Delete(reviewID string, user models.Identity) error {
	review := r.byID(reviewID)
	if review == nil {
		return errors.New("review not found")
	}
	if review.UserID != user.Key() {
		return errNotAuthor
	}

	if err := r.client.Delete("/reviews/" + url.PathEscape(reviewID)); err != nil {
		r.setErr(err.Error())
		return err
	}
	r.Refresh()
	return nil
}

func (r *Reviews) byID(id string) *models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rev := range r.cache.items {
		if rev.ID == id {
			cp := rev
			return &cp
		}
	}
	return nil
}

func (r *Reviews) setErr(msg string) {
	r.mu.Lock()
	r.cache.err = msg
	r.mu.Unlock()
}
