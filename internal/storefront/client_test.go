package storefront

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menzofashion/menzo/internal/models"
)

func TestClientTimeoutMessage(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("[]"))
	}))
	t.Cleanup(slow.Close)

	client := NewClient(slow.URL)
	client.Timeout = 20 * time.Millisecond

	var out []models.Product
	err := client.Get("/products", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, errTimedOut)

	// The cache layer turns the timeout into a labelled message.
	var dst cache[models.Product]
	refreshCache(client, "/products", "Product", &dst)
	assert.Equal(t, "Product request timed out", dst.err)
}

func TestClientSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "Category already exists"}`))
	}))
	t.Cleanup(srv.Close)

	err := NewClient(srv.URL).Post("/categories", map[string]string{"name": "x"}, nil)
	require.Error(t, err)
	assert.Equal(t, "Category already exists", err.Error())
}

func TestClientFallbackErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	err := NewClient(srv.URL).Get("/products", nil)
	require.Error(t, err)
	assert.Equal(t, "request failed with status 502", err.Error())
}
