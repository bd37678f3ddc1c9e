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

	"github.com/nekogravitycat/experience-booking/internal/app"
	"github.com/nekogravitycat/experience-booking/internal/booking"
	"github.com/nekogravitycat/experience-booking/internal/config"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	container := app.NewContainer(app.Config{
		IsProduction:  cfg.IsProduction,
		ProdOrigins:   cfg.ProdOrigins,
		TaxRate:       cfg.TaxRate,
		CheckoutDelay: cfg.CheckoutDelay,
		SessionTTL:    cfg.SessionTTL,
	})

	if cfg.SessionTTL > 0 {
		go sweepSessions(ctx, container.SessionStore, cfg.SessionTTL)
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		slog.Info("server running", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	slog.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server exited gracefully")
}

// sweepSessions drops idle booking sessions until ctx is done.
func sweepSessions(ctx context.Context, store booking.Store, ttl time.Duration) {
	ticker := time.NewTicker(max(ttl/2, config.MinSessionTTL))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				slog.Debug("expired booking sessions removed", "count", n)
			}
		}
	}
}
