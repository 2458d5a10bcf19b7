package storefront

import (
	"sync"

	"github.com/menzofashion/menzo/internal/models"
)

// Auth tracks the signed-in shopper. The session survives restarts
// through the local store and ends only on an explicit sign-out.
type Auth struct {
	mu      sync.RWMutex
	current *models.Identity
	local   *LocalStore
}

func NewAuth(local *LocalStore) *Auth {
	a := &Auth{local: local}
	var id models.Identity
	if local != nil && local.Get(KeyUser, &id) && id.Key() != "" {
		a.current = &id
	}
	return a
}

func (a *Auth) SignIn(id models.Identity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = &id
	if a.local != nil {
		a.local.Put(KeyUser, id)
	}
}

func (a *Auth) SignOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
	if a.local != nil {
		a.local.Delete(KeyUser)
	}
}

// Current returns the signed-in identity, or nil when signed out.
func (a *Auth) Current() *models.Identity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil
	}
	id := *a.current
	return &id
}

func (a *Auth) SignedIn() bool {
	return a.Current() != nil
}
