// Package user implements the user profile repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "display_name", "avatar_url", "password_hash", "created_at", "updated_at", "last_seen_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.DisplayName, u.AvatarURL, u.PasswordHash, u.CreatedAt, u.UpdatedAt, u.LastSeenAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail looks a user up by normalized (lower-case) email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, email)
}

// UpdateDisplayName changes the display name and returns the updated user.
func (r *Repo) UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("display_name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdatePassword stores a new password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.exec(ctx, id, postgres.Builder().
		Update(table).
		Set("password_hash", hash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
}

// TouchLastSeen moves last_seen_at forward to at. Older timestamps are ignored.
func (r *Repo) TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.exec(ctx, id, postgres.Builder().
		Update(table).
		Set("last_seen_at", sq.Expr("GREATEST(last_seen_at, ?)", at)).
		Where(sq.Eq{"id": id}))
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

func (r *Repo) exec(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.AvatarURL, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt, &u.LastSeenAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
