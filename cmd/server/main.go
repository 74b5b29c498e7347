// Command server runs the fleet back-office dashboard API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fleet-dashboard/internal/backend"
	"fleet-dashboard/internal/cache"
	"fleet-dashboard/internal/config"
	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/handlers"
	"fleet-dashboard/internal/middleware"
	"fleet-dashboard/internal/repositories"
	"fleet-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.LogFormat() == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	breakerCfg := services.DefaultCircuitBreakerConfig()
	if cfg.Backend.BreakerMaxFailures > 0 {
		breakerCfg.MaxFailures = cfg.Backend.BreakerMaxFailures
	}
	if cfg.Backend.BreakerResetAfter > 0 {
		breakerCfg.ResetTimeout = cfg.Backend.BreakerResetAfter
	}
	breaker := services.NewCircuitBreaker(breakerCfg, metrics)

	snapshots := newCache(cfg)
	defer func() {
		if err := snapshots.Close(); err != nil {
			slog.Warn("failed to close cache", "error", err)
		}
	}()

	client := backend.NewClient(backend.Config{
		BaseURL:    cfg.Backend.BaseURL,
		Token:      cfg.Backend.Token,
		AuthScheme: cfg.Backend.AuthScheme,
		HealthPath: cfg.Backend.HealthPath,
		Timeout:    cfg.Backend.Timeout,
	},
		backend.WithCache(snapshots),
		backend.WithBreaker(breaker),
		backend.WithMetrics(metrics),
	)

	audit := services.NewAuditService(repositories.NewAuditLogRepository(db.DB), metrics)
	go services.RunRetention(ctx, audit, cfg.Database.AuditRetention)

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)

	attendance := services.NewAttendanceService(repositories.NewAttendanceRepository(client), metrics)
	budgets := services.NewBudgetService(repositories.NewBudgetRepository(client), metrics)
	bank := services.NewBankService(repositories.NewBankRepository(client), metrics)
	sales := services.NewSalesService(repositories.NewTripRepository(client), metrics)
	fleet := services.NewFleetService(repositories.NewFleetRepository(client), metrics)
	tokens := services.NewTokenService(&cfg.JWT)

	var cachePinger handlers.Pinger
	if snapshots.Enabled() {
		cachePinger = snapshots
	}

	e := newServer(cfg, routeDeps{
		dashboard: handlers.NewDashboardHandler(handlers.DashboardServices{
			Overview:   services.NewOverviewService(attendance, budgets, bank, sales, fleet),
			Attendance: attendance,
			Budgets:    budgets,
			Bank:       bank,
			Sales:      sales,
			Fleet:      fleet,
			Exports:    services.NewExportService(attendance, sales, metrics),
			Audit:      audit,
		}),
		admin:   handlers.NewAdminHandler(audit),
		health:  handlers.NewHealthCheckHandler(db.DB, client, cachePinger, breaker),
		dev:     handlers.NewDevHandler(tokens),
		tokens:  tokens,
		limiter: limiter,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"cache_enabled", snapshots.Enabled())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server", "timeout", cfg.Server.ShutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}

// newCache returns a pass-through cache unless both REDIS_ADDR and CACHE_TTL are set.
func newCache(cfg *config.Config) *cache.Cache {
	if !cfg.Cache.Enabled() {
		return cache.NewCache(nil, 0)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	return cache.NewCache(client, cfg.Cache.TTL)
}
