package models

// Product is the catalog product record.
// Rating and Reviews are denormalized aggregates of the Review collection;
// they are not automatically kept in sync with it.
type Product struct {
	ID            string   `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Price         float64  `json:"price" db:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" db:"original_price"`
	Description   string   `json:"description,omitempty" db:"description"`
	Category      string   `json:"category" db:"category"` // category slug reference
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Image         string   `json:"image,omitempty" db:"image"`
	Stock         *int     `json:"stock,omitempty" db:"stock"`
	Rating        float64  `json:"rating" db:"rating"`
	Reviews       int      `json:"reviews" db:"reviews"`
}

// ProductPatch carries a partial product update (PATCH semantics): only
// non-nil fields are applied. ProductID on offers uses the same trick.
type ProductPatch struct {
	Name          *string   `json:"name,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Sizes         *[]string `json:"sizes,omitempty"`
	Colors        *[]string `json:"colors,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Stock         *int      `json:"stock,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Reviews       *int      `json:"reviews,omitempty"`
}

// Apply copies the supplied fields onto p.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = patch.OriginalPrice
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Sizes != nil {
		p.Sizes = *patch.Sizes
	}
	if patch.Colors != nil {
		p.Colors = *patch.Colors
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = patch.Stock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
}
