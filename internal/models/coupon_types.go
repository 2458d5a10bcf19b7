package models

import "time"

// Coupon discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is applied client-side against the cart subtotal; it is never
// persisted as redeemed.
type Coupon struct {
	Code          string    `json:"code" db:"code"`
	DiscountType  string    `json:"discountType" db:"discount_type"`
	DiscountValue float64   `json:"discountValue" db:"discount_value"`
	MinAmount     float64   `json:"minAmount" db:"min_amount"`
	ExpiryDate    time.Time `json:"expiryDate" db:"expiry_date"`
	Active        bool      `json:"active" db:"active"`
}

// Expired reports whether the coupon's expiry date has passed at now.
func (c Coupon) Expired(now time.Time) bool {
	return !c.ExpiryDate.After(now)
}
