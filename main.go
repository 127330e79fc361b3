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

	"github.com/Swamy718/Expense-Tracker-backend/auth"
	"github.com/Swamy718/Expense-Tracker-backend/config"
	"github.com/Swamy718/Expense-Tracker-backend/db"
	"github.com/Swamy718/Expense-Tracker-backend/logging"
)

// @title        Expense Tracker API
// @version      1.0
// @description  Personal income and expense ledger with bearer token auth.
// @BasePath     /

// @SecurityDefinitions.apikey ApiKeyAuth
// @In header
// @Name Authorization
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := logging.New(level, cfg.LogFormat)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := buildContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return container.Invoke(func(srv *http.Server, repo db.Repository, tokens *auth.TokenService) error {
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("failed to close storage", "error", err)
			}
		}()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server starting", "addr", srv.Addr, "token_ttl", tokens.TTL())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("server stopped")
		return nil
	})
}

func newServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
