package internal

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/starford/note/internal/api"
	"github.com/starford/note/internal/sse"
)

// NewServerHandler builds the full HTTP handler: health probes, the REST API
// under /api and the change feed at /api/events.
func NewServerHandler(rt *Runtime, broker *sse.Broker) http.Handler {
	cfg := rt.Config

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		installed, err := rt.API.Installed(req.Context())
		if err != nil || !installed {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"not installed"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", api.NewRouter(rt.API, api.RouterOptions{
		Auth:         newVerifier(cfg.Auth),
		Events:       broker,
		Stream:       broker,
		WriteLimiter: newWriteLimiter(cfg.App.HTTP),
	}))

	return r
}

func newVerifier(cfg AuthConfig) api.Verifier {
	if !cfg.AuthEnabled() {
		return nil
	}
	switch cfg.Mode {
	case AuthModeToken:
		return api.StaticToken(cfg.Token)
	case AuthModeJWT:
		return api.NewJWTVerifier(cfg.JWTSecret)
	}
	return nil
}

func newWriteLimiter(cfg HTTPConfig) *rate.Limiter {
	if cfg.WriteRate <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.WriteRate), cfg.WriteBurst)
}

// Serve runs the HTTP API until ctx is cancelled or a shutdown signal arrives.
func Serve(ctx context.Context, rt *Runtime) error {
	cfg := rt.Config
	logger := rt.Logger

	broker := sse.NewBroker()
	defer broker.Close()

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           NewServerHandler(rt, broker),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Open event streams would otherwise hold Shutdown until its deadline.
	httpServer.RegisterOnShutdown(broker.Close)

	g, gCtx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gCtx)
	defer stopWatch()

	if rt.ConfigPath != "" {
		g.Go(func() error {
			if err := WatchConfig(watchCtx, rt.ConfigPath, rt.Level, logger); err != nil {
				logger.Warn("config reload disabled", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		stopWatch()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
