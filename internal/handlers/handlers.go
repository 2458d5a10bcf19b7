package handlers

import (
	"github.com/menzofashion/menzo/internal/config"
	"github.com/menzofashion/menzo/internal/store"
	"go.uber.org/zap"
)

// Handlers holds all dependencies injected into the HTTP handlers.
type Handlers struct {
	Store store.Store
	Log   *zap.Logger
	Cfg   *config.Config
}
