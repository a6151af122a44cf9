package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/auth"
	"github.com/mmynk/tal3a/internal/config"
	"github.com/mmynk/tal3a/internal/groups"
	"github.com/mmynk/tal3a/internal/middleware"
	"github.com/mmynk/tal3a/internal/service"
	"github.com/mmynk/tal3a/internal/storage"
	"github.com/mmynk/tal3a/internal/storage/bolt"
	"github.com/mmynk/tal3a/internal/storage/sqlite"
	"github.com/mmynk/tal3a/internal/tal3a"
	"github.com/mmynk/tal3a/pkg/logging"
)

const (
	tokenDuration   = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
	limiterPrune    = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.SetupWith(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return sqlite.New(cfg.DBPath)
	default:
		return bolt.Open(cfg.DBPath)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.Store, "database", cfg.DBPath)

	directory, err := groups.LoadFile(cfg.GroupsPath)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}
	slog.Info("Groups loaded", "path", cfg.GroupsPath, "count", directory.Len())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst)
	go limiter.Run(ctx, limiterPrune)

	server := &service.Server{
		Engine:      tal3a.NewEngine(store, directory),
		Verifier:    auth.NewJWTManager(cfg.JWTSecret, tokenDuration),
		StoreName:   cfg.Store,
		Logger:      slog.Default(),
		Metrics:     middleware.NewMetrics(registry),
		RateLimiter: limiter,
	}

	mux := http.NewServeMux()
	server.Register(mux)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(newCORS(cfg.CORSOrigins).Handler(mux), &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newCORS allows browser clients to speak the Connect protocol.
func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Authorization",
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			middleware.RequestIDHeader,
		},
		ExposedHeaders: []string{
			middleware.RequestIDHeader,
			apperr.MetaCode,
			apperr.MetaKind,
		},
		MaxAge: 7200,
	})
}
