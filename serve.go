package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "rent-quote/http"
	"rent-quote/repository"
	"rent-quote/service"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the quote HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	log := a.logger

	limiter, stopLimiter := a.buildLimiter(ctx)
	defer stopLimiter()

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Quotes:      a.quotes,
		Comparisons: service.NewComparisonService(a.quotes, log),
		Limiter:     limiter,
		Metrics:     httpLayer.NewMetrics(),
		Logger:      log,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		log.Error("error starting server", zap.Error(err))
		return err
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
		return err
	}

	log.Info("server exited")
	return nil
}

// buildLimiter shares rate limit windows through Redis when enabled and
// reachable, otherwise keeps them in process memory.
func (a *app) buildLimiter(ctx context.Context) (httpLayer.Limiter, func()) {
	cfg := a.cfg
	log := a.logger

	if cfg.Redis.Enabled {
		store := repository.NewRedisRateLimitStore(cfg.Redis.Addr, cfg.Redis.Password)
		err := store.Ping(ctx)
		if err == nil {
			log.Info("redis rate limit store connected", zap.String("addr", cfg.Redis.Addr))
			limiter := httpLayer.NewStoreRateLimiter(store, cfg.RateLimit.Capacity, cfg.RateLimit.Window, log)
			return limiter, func() { store.Close() }
		}
		log.Warn("redis unavailable, using in-memory rate limiter",
			zap.String("addr", cfg.Redis.Addr),
			zap.Error(err),
		)
		store.Close()
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	return rateLimiter, rateLimiter.Stop
}
