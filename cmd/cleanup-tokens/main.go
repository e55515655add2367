// Command cleanup-tokens deletes expired or revoked refresh tokens and
// expired or used password reset tokens.
//
// Usage:
//
//	cleanup-tokens
//
// It reads the same configuration as the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/landing-builder-backend/internal/adapter/mailer"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/resettoken"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/landing-builder-backend/internal/app"
	"github.com/heartmarshall/landing-builder-backend/internal/auth"
	"github.com/heartmarshall/landing-builder-backend/internal/config"
	authsvc "github.com/heartmarshall/landing-builder-backend/internal/service/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := authsvc.NewService(
		logger,
		user.New(pool),
		token.New(pool),
		resettoken.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		mailer.NewLogMailer(logger),
		cfg.Auth,
	)

	n, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		return err
	}

	logger.Info("tokens cleaned up", slog.Int("deleted", n))
	return nil
}
