// Package store abstracts the persistence backend behind per-entity
// repositories. Two implementations exist: an in-memory store seeded from a
// db.json-style snapshot, and a MySQL store.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/menzofashion/menzo/internal/models"
)

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("not found")

// CategoryStore persists categories keyed by slug. Referential checks against
// products and offers live above the store, in the handlers.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	// UpdateCategory replaces the record stored under slug; the replacement
	// may carry a different slug (a rename).
	UpdateCategory(ctx context.Context, slug string, c *models.Category) error
	DeleteCategory(ctx context.Context, slug string) error
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	PatchProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type OfferStore interface {
	ListOffers(ctx context.Context) ([]models.Offer, error)
	GetOffer(ctx context.Context, id string) (*models.Offer, error)
	CreateOffer(ctx context.Context, o *models.Offer) error
	PatchOffer(ctx context.Context, id string, patch models.OfferPatch) (*models.Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}

type OrderStore interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, o *models.Order) error
	UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type ReviewStore interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	GetReview(ctx context.Context, id string) (*models.Review, error)
	CreateReview(ctx context.Context, r *models.Review) error
	// PutReview replaces the full record; this is what makes concurrent
	// helpful-increments a read-modify-write race at the client.
	PutReview(ctx context.Context, r *models.Review) error
	DeleteReview(ctx context.Context, id string) error
}

type CouponStore interface {
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	// DeactivateExpiredCoupons flips Active off on every coupon whose expiry
	// has passed and reports how many were touched.
	DeactivateExpiredCoupons(ctx context.Context, now time.Time) (int, error)
}

// Store is the full persistence surface consumed by the handlers.
type Store interface {
	CategoryStore
	ProductStore
	OfferStore
	OrderStore
	ReviewStore
	CouponStore
}
