package models

import (
	"bytes"
	"encoding/json"
)

// Offer is a promotional banner loosely associated with at most one product
// and/or one category. Neither association is required and no exclusivity
// between them is enforced.
type Offer struct {
	ID           string  `json:"id" db:"id"`
	Title        string  `json:"title" db:"title"`
	Subtitle     string  `json:"subtitle,omitempty" db:"subtitle"`
	Image        string  `json:"image,omitempty" db:"image"`
	CTA          string  `json:"cta,omitempty" db:"cta"`
	ProductID    string  `json:"productId,omitempty" db:"product_id"`
	CategorySlug string  `json:"categorySlug,omitempty" db:"category_slug"`
	Discount     float64 `json:"discount,omitempty" db:"discount"`
	Active       bool    `json:"active" db:"active"`
}

// OfferPatch is a partial offer update. ProductID and CategorySlug are raw so
// an explicit JSON null (used by the product-delete cascade to detach offers)
// can be told apart from an absent field.
type OfferPatch struct {
	Title        *string         `json:"title,omitempty"`
	Subtitle     *string         `json:"subtitle,omitempty"`
	Image        *string         `json:"image,omitempty"`
	CTA          *string         `json:"cta,omitempty"`
	ProductID    json.RawMessage `json:"productId,omitempty"`
	CategorySlug json.RawMessage `json:"categorySlug,omitempty"`
	Discount     *float64        `json:"discount,omitempty"`
	Active       *bool           `json:"active,omitempty"`
}

var jsonNull = []byte("null")

// Apply copies the supplied fields onto o. A null productId or categorySlug
// clears the reference.
func (patch OfferPatch) Apply(o *Offer) {
	if patch.Title != nil {
		o.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		o.Subtitle = *patch.Subtitle
	}
	if patch.Image != nil {
		o.Image = *patch.Image
	}
	if patch.CTA != nil {
		o.CTA = *patch.CTA
	}
	if len(patch.ProductID) > 0 {
		if bytes.Equal(patch.ProductID, jsonNull) {
			o.ProductID = ""
		} else {
			_ = json.Unmarshal(patch.ProductID, &o.ProductID)
		}
	}
	if len(patch.CategorySlug) > 0 {
		if bytes.Equal(patch.CategorySlug, jsonNull) {
			o.CategorySlug = ""
		} else {
			_ = json.Unmarshal(patch.CategorySlug, &o.CategorySlug)
		}
	}
	if patch.Discount != nil {
		o.Discount = *patch.Discount
	}
	if patch.Active != nil {
		o.Active = *patch.Active
	}
}
