package storefront

import (
	"sync"
)

// AdminGate controls access to the admin surface. A successful unlock is
// remembered in the local store and survives restarts until an explicit
// Lock; the session token itself is not persisted and is re-obtained on
// the next unlock.
type AdminGate struct {
	client *Client

	mu       sync.Mutex
	unlocked bool
	local    *LocalStore
}

func NewAdminGate(client *Client, local *LocalStore) *AdminGate {
	g := &AdminGate{client: client, local: local}
	var flag bool
	if local != nil && local.Get(KeyAdminAuth, &flag) && flag {
		g.unlocked = true
	}
	return g
}

// Unlock sends the password to the login endpoint. On success the gate
// opens, the flag is persisted and the returned session token is attached
// to every subsequent request. The server replies 401 "Incorrect password"
// on a wrong password; that message is surfaced as-is.
func (g *AdminGate) Unlock(password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := g.client.Post("/admin/login", map[string]string{"password": password}, &resp); err != nil {
		return err
	}

	g.client.SetToken(resp.Token)

	g.mu.Lock()
	g.unlocked = true
	g.mu.Unlock()
	if g.local != nil {
		g.local.Put(KeyAdminAuth, true)
	}
	return nil
}

// Lock closes the gate, clears the persisted flag and drops the token.
func (g *AdminGate) Lock() {
	g.mu.Lock()
	g.unlocked = false
	g.mu.Unlock()
	g.client.SetToken("")
	if g.local != nil {
		g.local.Delete(KeyAdminAuth)
	}
}

func (g *AdminGate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}
