package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/keylock"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("service", "salon-scheduler")
	slog.SetDefault(logger)

	cfg := config.Load()
	if !timezone.IsValid(cfg.Timezone) {
		slog.Warn("unknown BUSINESS_TIMEZONE, using default", "timezone", cfg.Timezone)
		cfg.Timezone = timezone.DefaultTimezone
	}

	db := dbpkg.NewDB(cfg)
	if err := dbpkg.SeedAdmin(db, cfg); err != nil {
		slog.Error("failed to seed administrator", "err", err)
		os.Exit(1)
	}

	locker, closeLocker := newLocker(cfg)
	defer closeLocker()

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, cfg, locker, auditDispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server running", "addr", cfg.Addr(), "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
	slog.Info("server stopped")
}

// newLocker shares schedule locks through Redis when REDIS_URL is set, so
// several API instances serialize on the same keys.
func newLocker(cfg *config.Config) (keylock.Locker, func()) {
	if cfg.RedisURL == "" {
		slog.Info("using in-process schedule locks")
		return keylock.NewLocal(cfg.LockWait), func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Error("invalid REDIS_URL", "err", err)
		os.Exit(1)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("redis unreachable", "err", err)
		os.Exit(1)
	}

	slog.Info("using redis schedule locks", "addr", opts.Addr)
	return keylock.NewRedis(client, cfg.LockTTL, cfg.LockWait), func() { _ = client.Close() }
}
