package models

import "time"

// Order statuses. Transitions are admin-driven and unconstrained: any status
// may move to any other.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a purchased line inside an order, priced at purchase time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// Order is created once at checkout and afterwards mutated only by status
// updates or deletion.
type Order struct {
	ID              string      `json:"id" db:"id"`
	UserID          string      `json:"userId" db:"user_id"`
	CustomerName    string      `json:"customerName,omitempty" db:"customer_name"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total" db:"total"`
	Status          string      `json:"status" db:"status"`
	ShippingAddress string      `json:"shippingAddress" db:"shipping_address"`
	ShippingMethod  string      `json:"shippingMethod,omitempty" db:"shipping_method"`
	PaymentMethod   string      `json:"paymentMethod,omitempty" db:"payment_method"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderStatusInput is the payload for PATCH /orders/:id.
type OrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}
