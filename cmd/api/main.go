package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/menzofashion/menzo/internal/config"
	"github.com/menzofashion/menzo/internal/database"
	"github.com/menzofashion/menzo/internal/handlers"
	"github.com/menzofashion/menzo/internal/logger"
	"github.com/menzofashion/menzo/internal/routes"
	"github.com/menzofashion/menzo/internal/store"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.LoadEnv()

	zlog, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Persistence: MySQL when a DSN is configured, otherwise the in-memory
	// store optionally seeded from a db.json-style snapshot.
	var st store.Store
	if cfg.DB.DSN != "" {
		db, err := database.Open(cfg.DB.DSN)
		if err != nil {
			zlog.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		st = store.NewSQL(db)
		zlog.Info("using MySQL store")
	} else if cfg.DB.SeedFile != "" {
		mem, err := store.NewMemoryFromFile(cfg.DB.SeedFile)
		if err != nil {
			zlog.Fatal("failed to load seed file", zap.String("file", cfg.DB.SeedFile), zap.Error(err))
		}
		st = mem
		zlog.Info("using in-memory store", zap.String("seed", cfg.DB.SeedFile))
	} else {
		st = store.NewMemory()
		zlog.Info("using empty in-memory store")
	}

	app := &handlers.Handlers{
		Store: st,
		Log:   zlog,
		Cfg:   cfg,
	}

	// Background sweep: deactivate coupons past their expiry date.
	sched := cron.New()
	if _, err := sched.AddFunc("@every 1h", app.ProcessExpiredCoupons); err != nil {
		zlog.Fatal("failed to schedule coupon sweep", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	router := routes.SetupRouter(app)

	zlog.Info("starting Menzo Fashion API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
