// Package storefront implements the client-side core of the shop: entity
// caches mirroring the REST collections, the cart, wishlist, recommendation
// and search engines, review aggregation, the checkout flow, and the admin
// gate. State that survives restarts lives in a local bbolt file under
// namespaced keys, the way the browser storefront used localStorage.
package storefront

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"
)

// Persisted local keys. Each holds a JSON-serialized value.
const (
	KeyCart            = "menzo_cart"
	KeyWishlist        = "menzo_wishlist"
	KeyBrowseHistory   = "menzo_browse_history"
	KeyRecentSearches  = "menzo_recent_searches"
	KeySavedAddresses  = "menzo_saved_addresses"
	KeySelectedVariant = "menzo_selected_variants"
	KeyAdminAuth       = "menzo_admin_auth"
	KeyUser            = "menzo_user"
)

var localBucket = []byte("storefront")

// LocalStore is a namespaced key-value file store. Reads that hit a missing
// key or corrupt JSON report absence instead of failing, so every consumer
// falls back to its zero value.
type LocalStore struct {
	db *bolt.DB
}

func OpenLocalStore(path string) (*LocalStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(localBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Get unmarshals the value stored under key into out. Returns false when the
// key is absent or the stored JSON does not parse.
func (s *LocalStore) Get(key string, out any) bool {
	var raw []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(localBucket).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if raw == nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// Put stores v under key as JSON. Storage errors are swallowed: local state
// stays usable in memory even when the file is not writable.
func (s *LocalStore) Put(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(localBucket).Put([]byte(key), raw)
	})
}

func (s *LocalStore) Delete(key string) {
	_ = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(localBucket).Delete([]byte(key))
	})
}
