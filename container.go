package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/dig"

	"github.com/Swamy718/Expense-Tracker-backend/api"
	"github.com/Swamy718/Expense-Tracker-backend/auth"
	"github.com/Swamy718/Expense-Tracker-backend/config"
	"github.com/Swamy718/Expense-Tracker-backend/db"
)

// buildContainer registers every component of the server. Nothing is
// constructed until Invoke asks for it.
func buildContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dig.Container, error) {
	c := dig.New()

	providers := []any{
		func() *config.Config { return cfg },
		func() *slog.Logger { return logger },
		func(cfg *config.Config) (db.Repository, error) {
			return db.Open(ctx, cfg.DatabaseURL)
		},
		func(cfg *config.Config) *auth.Hasher {
			return auth.NewHasher(cfg.BcryptCost)
		},
		func(cfg *config.Config) (*auth.TokenService, error) {
			return auth.NewTokenService(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenExpires)
		},
		func(repo db.Repository, hasher *auth.Hasher, tokens *auth.TokenService, logger *slog.Logger) *auth.Service {
			return auth.NewService(repo, hasher, tokens, logger)
		},
		api.NewHandler,
		func(h *api.Handler, cfg *config.Config, logger *slog.Logger) *gin.Engine {
			return api.NewRouter(h, api.RouterConfig{AllowOrigins: cfg.AllowOrigins, Logger: logger})
		},
		newServer,
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}
