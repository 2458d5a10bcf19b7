package storefront

import "sync"

// Wishlist is a persisted set of product ids with insertion order. Add is
// idempotent and Remove tolerates absent ids.
type Wishlist struct {
	mu    sync.Mutex
	ids   []string
	local *LocalStore
}

func NewWishlist(local *LocalStore) *Wishlist {
	w := &Wishlist{local: local}
	if local != nil {
		local.Get(KeyWishlist, &w.ids)
	}
	return w
}

func (w *Wishlist) persist() {
	if w.local != nil {
		w.local.Put(KeyWishlist, w.ids)
	}
}

func (w *Wishlist) Add(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, id := range w.ids {
		if id == productID {
			return
		}
	}
	w.ids = append(w.ids, productID)
	w.persist()
}

func (w *Wishlist) Remove(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, id := range w.ids {
		if id == productID {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			w.persist()
			return
		}
	}
}

func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, id := range w.ids {
		if id == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) IDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}
