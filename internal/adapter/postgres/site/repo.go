// Package site implements the owner-scoped Site repository using PostgreSQL.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const table = "sites"

var columns = []string{
	"id", "owner_id", "title", "prompt", "html", "seo_title", "seo_desc",
	"status", "created_at", "updated_at", "published_at",
}

// upsertSuffix merges into an existing row of the same owner. created_at is
// written on first insert only; updated_at never moves backwards. A row with
// the same id but another owner is left untouched and yields no rows.
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	title        = EXCLUDED.title,
	prompt       = EXCLUDED.prompt,
	html         = EXCLUDED.html,
	seo_title    = EXCLUDED.seo_title,
	seo_desc     = EXCLUDED.seo_desc,
	status       = EXCLUDED.status,
	updated_at   = GREATEST(sites.updated_at, EXCLUDED.updated_at),
	published_at = COALESCE(EXCLUDED.published_at, sites.published_at)
WHERE sites.owner_id = EXCLUDED.owner_id
RETURNING id, owner_id, title, prompt, html, seo_title, seo_desc, status, created_at, updated_at, published_at`

// Repo provides site persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns the site id owned by ownerID.
// A site owned by someone else is reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Site, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	s, err := scanSite(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "site", id)
	}
	return s, nil
}

// Upsert creates or merges the site record in one statement and returns the
// stored row.
func (r *Repo) Upsert(ctx context.Context, s *domain.Site) (*domain.Site, error) {
	prompt, err := json.Marshal(s.Prompt)
	if err != nil {
		return nil, fmt.Errorf("marshal prompt: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			s.ID, s.OwnerID, s.Title, prompt, s.HTML, s.Meta.SEOTitle, s.Meta.SEODescription,
			string(s.Status), s.CreatedAt, s.UpdatedAt, s.PublishedAt,
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	stored, err := scanSite(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "site", s.ID)
	}
	return stored, nil
}

// UpdateStatus sets the status of an owned site and refreshes updated_at.
func (r *Repo) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status domain.SiteStatus, at time.Time) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("GREATEST(updated_at, ?)", at)).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "site", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "site", id)
	}
	return nil
}

// ListByOwner returns the owner's sites, most recently updated first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Site, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "site owner", ownerID)
	}
	defer rows.Close()

	sites := make([]*domain.Site, 0)
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, postgres.MapError(err, "site owner", ownerID)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "site owner", ownerID)
	}
	return sites, nil
}

func scanSite(row pgx.Row) (*domain.Site, error) {
	var (
		s      domain.Site
		prompt []byte
		status string
	)
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Title, &prompt, &s.HTML, &s.Meta.SEOTitle, &s.Meta.SEODescription,
		&status, &s.CreatedAt, &s.UpdatedAt, &s.PublishedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(prompt) > 0 {
		if err := json.Unmarshal(prompt, &s.Prompt); err != nil {
			return nil, fmt.Errorf("unmarshal prompt: %w", err)
		}
	}
	s.Status = domain.SiteStatus(status)
	return &s, nil
}
