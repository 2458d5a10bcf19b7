package models

// CartItem is a client-side cart line, unique per (ProductID, Size, Color).
// Lines never reach the server until checkout.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// SameLine reports whether other addresses the same cart line.
func (i CartItem) SameLine(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Address is a shipping address captured during checkout.
type Address struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Complete reports whether every required address field is filled.
func (a Address) Complete() bool {
	return a.FullName != "" && a.Phone != "" && a.Line1 != "" &&
		a.City != "" && a.State != "" && a.PostalCode != ""
}
