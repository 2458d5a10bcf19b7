package storefront

import (
	"sync"

	"github.com/menzofashion/menzo/internal/models"
)

// Cart is the client-side cart: an ordered list of line items unique per
// (productId, size, color), hydrated from local storage once at construction
// and written back on every mutation. Lines never touch the server until
// checkout.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
	local *LocalStore
}

func NewCart(local *LocalStore) *Cart {
	c := &Cart{local: local}
	if local != nil {
		local.Get(KeyCart, &c.items)
	}
	return c
}

func (c *Cart) persist() {
	if c.local != nil {
		c.local.Put(KeyCart, c.items)
	}
}

// Add increments the quantity of an existing matching line or appends a new
// line with quantity 1. Existing line order is preserved; new lines append.
func (c *Cart) Add(item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].SameLine(item.ProductID, item.Size, item.Color) {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
	c.persist()
}

// Remove drops the exact matching line; no-op if absent.
func (c *Cart) Remove(productID, size, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID, size, color)
	c.persist()
}

func (c *Cart) removeLocked(productID, size, color string) {
	for i := range c.items {
		if c.items[i].SameLine(productID, size, color) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity exactly; a quantity of zero or
// less removes the line.
func (c *Cart) UpdateQuantity(productID, size, color string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID, size, color)
		c.persist()
		return
	}
	for i := range c.items {
		if c.items[i].SameLine(productID, size, color) {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persist()
}

// Total recomputes sum(price * quantity) on demand. Floating-point currency
// arithmetic, matching the storefront it mirrors.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
