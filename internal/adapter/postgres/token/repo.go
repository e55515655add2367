// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const table = "refresh_tokens"

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(t.UserID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.UserID)
	}
	return nil
}

// GetByHash returns the token with the given hash. Revoked and expired tokens
// are returned too until DeleteExpired removes them.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.RefreshToken
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &t, nil
}

// RevokeByID revokes one token. Revoking twice is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return r.revoke(ctx, sq.Eq{"id": id, "revoked_at": nil}, id)
}

// RevokeAllByUser revokes every active refresh token of the user (sign-out).
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.revoke(ctx, sq.Eq{"user_id": userID, "revoked_at": nil}, userID)
}

// DeleteExpired removes expired or revoked tokens and returns how many went.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Or{sq.Expr("expires_at < now()"), sq.NotEq{"revoked_at": nil}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) revoke(ctx context.Context, where sq.Eq, key uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", key)
	}
	return nil
}
