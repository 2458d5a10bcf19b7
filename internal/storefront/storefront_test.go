package storefront

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/menzofashion/menzo/internal/config"
	"github.com/menzofashion/menzo/internal/handlers"
	"github.com/menzofashion/menzo/internal/routes"
	"github.com/menzofashion/menzo/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestBackend starts a real API server over an in-memory store so the
// client engines are exercised end to end.
func newTestBackend(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	h := &handlers.Handlers{
		Store: mem,
		Log:   zap.NewNop(),
		Cfg: &config.Config{
			Server: config.ServerConfig{CORSOrigin: "*"},
			Admin:  config.AdminConfig{Secret: "Priya123@at", JWTSecret: "test-secret"},
		},
	}
	srv := httptest.NewServer(routes.SetupRouter(h))
	t.Cleanup(srv.Close)
	return srv, mem
}

func newTestLocal(t *testing.T) *LocalStore {
	t.Helper()
	local, err := OpenLocalStore(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })
	return local
}
