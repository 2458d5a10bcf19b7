package storefront

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/menzofashion/menzo/internal/models"
)

var (
	ErrEmptyCouponCode   = errors.New("Please enter a coupon code")
	ErrInvalidCouponCode = errors.New("Invalid coupon code")
)

// CouponBook holds the coupons usable right now. Inactive and expired
// coupons are dropped at refresh time so Apply never has to re-check them.
type CouponBook struct {
	client *Client

	mu      sync.RWMutex
	coupons []models.Coupon
	applied *models.Coupon
	err     string
}

func NewCouponBook(client *Client) *CouponBook {
	return &CouponBook{client: client}
}

func (b *CouponBook) Refresh() {
	var all []models.Coupon
	if err := b.client.Get("/coupons", &all); err != nil {
		b.mu.Lock()
		if errors.Is(err, errTimedOut) {
			b.err = "Coupons request timed out"
		} else {
			b.err = err.Error()
		}
		b.mu.Unlock()
		return
	}

	now := time.Now()
	usable := all[:0]
	for _, c := range all {
		if c.Active && !c.Expired(now) {
			usable = append(usable, c)
		}
	}

	b.mu.Lock()
	b.coupons = usable
	b.err = ""
	b.mu.Unlock()
}

func (b *CouponBook) Coupons() []models.Coupon {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Coupon, len(b.coupons))
	copy(out, b.coupons)
	return out
}

func (b *CouponBook) Err() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.err
}

// Apply matches the code case-insensitively against the usable coupons and
// records it as the applied coupon. Only one coupon is applied at a time;
// applying a new one replaces the previous.
func (b *CouponBook) Apply(code string, subtotal float64) (*models.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCouponCode
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var found *models.Coupon
	for i := range b.coupons {
		if strings.EqualFold(b.coupons[i].Code, code) {
			found = &b.coupons[i]
			break
		}
	}
	if found == nil {
		return nil, ErrInvalidCouponCode
	}
	if subtotal < found.MinAmount {
		return nil, fmt.Errorf("Minimum amount ₹%v required", found.MinAmount)
	}

	c := *found
	b.applied = &c
	return &c, nil
}

func (b *CouponBook) Remove() {
	b.mu.Lock()
	b.applied = nil
	b.mu.Unlock()
}

func (b *CouponBook) Applied() *models.Coupon {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.applied == nil {
		return nil
	}
	c := *b.applied
	return &c
}

// Discount computes the value the applied coupon takes off the subtotal.
// If the subtotal has since dropped below the coupon's minimum the discount
// is zero, though the coupon stays applied.
func (b *CouponBook) Discount(subtotal float64) float64 {
	c := b.Applied()
	if c == nil || subtotal < c.MinAmount {
		return 0
	}
	if c.DiscountType == models.DiscountPercentage {
		return subtotal * c.DiscountValue / 100
	}
	return c.DiscountValue
}
