// Package resettoken stores single-use password reset tokens.
package resettoken

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const table = "password_reset_tokens"

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(t.UserID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "password_reset_token", t.UserID)
	}
	return nil
}

// GetByHash returns the token regardless of state; callers check IsUsable.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "used_at").
		From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.PasswordResetToken
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.UsedAt)
	if err != nil {
		return nil, postgres.MapError(err, "password_reset_token", uuid.Nil)
	}
	return &t, nil
}

// MarkUsed consumes the token. A token that was already used yields
// domain.ErrNotFound, so two concurrent resets cannot both succeed.
func (r *Repo) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("used_at", at).
		Where(sq.Eq{"id": id, "used_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "password_reset_token", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "password_reset_token", id)
	}
	return nil
}

// DeleteExpired removes used or expired reset tokens.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Or{sq.Expr("expires_at < now()"), sq.NotEq{"used_at": nil}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "password_reset_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
