package storefront

import (
	"sync"

	"github.com/menzofashion/menzo/internal/models"
)

// Variant is the size/color pair last picked on a product page, restored
// when the shopper comes back to that product.
type Variant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// Prefs keeps the small per-shopper conveniences: saved shipping addresses
// and the last-selected variant per product. Everything is persisted on
// every mutation.
type Prefs struct {
	mu        sync.RWMutex
	addresses []models.Address
	variants  map[string]Variant
	local     *LocalStore
}

func NewPrefs(local *LocalStore) *Prefs {
	p := &Prefs{
		variants: make(map[string]Variant),
		local:    local,
	}
	if local != nil {
		local.Get(KeySavedAddresses, &p.addresses)
		local.Get(KeySelectedVariant, &p.variants)
		if p.variants == nil {
			p.variants = make(map[string]Variant)
		}
	}
	return p
}

// SaveAddress appends a complete address; an address equal to an already
// saved one is ignored.
func (p *Prefs) SaveAddress(a models.Address) {
	if !a.Complete() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, saved := range p.addresses {
		if saved == a {
			return
		}
	}
	p.addresses = append(p.addresses, a)
	p.persistAddresses()
}

func (p *Prefs) RemoveAddress(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.addresses) {
		return
	}
	p.addresses = append(p.addresses[:index], p.addresses[index+1:]...)
	p.persistAddresses()
}

func (p *Prefs) Addresses() []models.Address {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.Address, len(p.addresses))
	copy(out, p.addresses)
	return out
}

// SelectVariant records the size/color chosen for a product.
func (p *Prefs) SelectVariant(productID, size, color string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.variants[productID] = Variant{Size: size, Color: color}
	if p.local != nil {
		p.local.Put(KeySelectedVariant, p.variants)
	}
}

// SelectedVariant returns the remembered variant for a product, if any.
func (p *Prefs) SelectedVariant(productID string) (Variant, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.variants[productID]
	return v, ok
}

func (p *Prefs) persistAddresses() {
	if p.local != nil {
		p.local.Put(KeySavedAddresses, p.addresses)
	}
}
