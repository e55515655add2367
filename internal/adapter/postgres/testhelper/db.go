// Package testhelper provides a migrated PostgreSQL for integration tests and
// seeds it with fixtures. TEST_DATABASE_DSN points the tests at an existing
// database; otherwise one container is started per test binary.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	postgres "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/config"
	"github.com/heartmarshall/landing-builder-backend/migrations"
)

const dsnEnv = "TEST_DATABASE_DSN"

var sharedDSN = sync.OnceValues(func() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		var err error
		if dsn, err = startPostgres(ctx); err != nil {
			return "", err
		}
	}

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: dsn, MaxConns: 2})
	if err != nil {
		return "", err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, migrations.FS, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
})

// SetupTestDB returns a pool on the shared, migrated test database. The pool
// is closed through t.Cleanup. Tests are skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test: requires PostgreSQL")
	}

	dsn, err := sharedDSN()
	if err != nil {
		t.Fatalf("testhelper: setup test DB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:              dsn,
		MaxConns:         10,
		StatementTimeout: 30 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// startPostgres runs a disposable postgres container. It is reaped by the
// testcontainers sidecar when the test binary exits.
func startPostgres(ctx context.Context) (string, error) {
	const user, password, db = "landing", "landing", "landing_test"

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       db,
			},
			// The entrypoint restarts the server once after init.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		return "", fmt.Errorf("postgres endpoint: %w", err)
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", user, password, endpoint, db), nil
}
