package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"

	"gradebook_backend/internals/configs"
	database "gradebook_backend/internals/databases"
	scheduler "gradebook_backend/internals/features/users/auth/scheduler"
	middlewares "gradebook_backend/internals/middlewares"
	routes "gradebook_backend/internals/route"
	"gradebook_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()
	logger := configs.Component("main")
	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ErrorHandler:            middlewares.ErrorHandler(configs.Component("http")),
	})

	middlewares.SetupMiddlewares(app, cfg, configs.Logger)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB(cfg)
	database.TunePool()
	database.WarmUpQueries()

	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			level.Error(logger).Log("msg", "automigrate failed", "err", err)
			os.Exit(1)
		}
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seeds.RunAllSeeds(seedCtx, database.DB, cfg, configs.Logger); err != nil {
		level.Error(logger).Log("msg", "seeding failed", "err", err)
	}
	cancelSeed()

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(database.DB, cfg.BlacklistCleanupCron, configs.Component("scheduler"))
	if err != nil {
		level.Error(logger).Log("msg", "scheduler not started", "err", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, cfg, configs.Logger)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		level.Info(logger).Log("msg", "listening", "port", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			level.Error(logger).Log("msg", "server error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	level.Info(logger).Log("msg", "shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if cleanup != nil {
		<-cleanup.Stop().Done()
	}
	database.Close(database.DB)
}
