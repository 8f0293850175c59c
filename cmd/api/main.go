package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paperapi/internal/catalog"
	"paperapi/internal/config"
	"paperapi/internal/httpx"
	"paperapi/internal/platform/logging"
	"paperapi/internal/saved"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	papers, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load catalog")
	}
	logger.Info().Int("papers", papers.Len()).Msg("catalog loaded")

	savedRepository, closeRepository, err := openSavedRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.SavedBackend).Msg("cannot open saved papers store")
	}
	defer closeRepository()

	catalogHandler := catalog.NewHTTPHandler(catalog.NewService(papers))
	savedHandler := saved.NewHTTPHandler(saved.NewService(savedRepository))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpx.NewMetrics(registry)

	pinger, _ := savedRepository.(saved.Pinger)
	router := newRouter(catalogHandler, savedHandler, pinger, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy)
	handler := httpx.Chain(metrics.Middleware(router),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("backend", cfg.SavedBackend).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func openSavedRepository(ctx context.Context, cfg config.Config, logger zerolog.Logger) (saved.Repository, func(), error) {
	switch cfg.SavedBackend {
	case config.BackendPostgres:
		pool, err := openPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("dsn", config.RedactDSN(cfg.DatabaseDSN)).Msg("database connection OK")
		return saved.NewPostgresRepo(pool, cfg.DBTimeout), pool.Close, nil
	case config.BackendBolt:
		repo, err := saved.OpenBoltRepo(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("path", cfg.BoltPath).Msg("bolt store opened")
		return repo, func() {
			if err := repo.Close(); err != nil {
				logger.Error().Err(err).Msg("close bolt store")
			}
		}, nil
	default:
		return saved.NewMemoryRepo(), func() {}, nil
	}
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", config.RedactDSN(dsn), err)
	}
	return pool, nil
}
