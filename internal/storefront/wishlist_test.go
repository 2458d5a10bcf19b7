package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	w := NewWishlist(nil)

	w.Add("p1")
	w.Add("p2")
	w.Add("p1")

	assert.Equal(t, []string{"p1", "p2"}, w.IDs())
	assert.True(t, w.Contains("p1"))
	assert.False(t, w.Contains("p3"))
}

func TestWishlistRemoveToleratesAbsent(t *testing.T) {
	w := NewWishlist(nil)
	w.Add("p1")

	w.Remove("p9")
	w.Remove("p1")
	w.Remove("p1")

	assert.Empty(t, w.IDs())
}

func TestWishlistPersistsAcrossRestart(t *testing.T) {
	local := newTestLocal(t)

	w := NewWishlist(local)
	w.Add("p1")
	w.Add("p2")
	w.Remove("p1")

	rehydrated := NewWishlist(local)
	assert.Equal(t, []string{"p2"}, rehydrated.IDs())
}
