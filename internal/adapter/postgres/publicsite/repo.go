// Package publicsite implements the world-readable PublicSite repository.
package publicsite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/landing-builder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const table = "public_sites"

var columns = []string{"id", "owner_id", "title", "html", "seo_title", "seo_desc", "status", "published_at"}

// Replaces the whole public record. The owner guard keeps one user from
// overwriting another user's public page.
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	title        = EXCLUDED.title,
	html         = EXCLUDED.html,
	seo_title    = EXCLUDED.seo_title,
	seo_desc     = EXCLUDED.seo_desc,
	status       = EXCLUDED.status,
	published_at = EXCLUDED.published_at
WHERE public_sites.owner_id = EXCLUDED.owner_id
RETURNING id`

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the public copy of a site. No session is required.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var (
		p      domain.PublicSite
		status string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.HTML, &p.Meta.SEOTitle, &p.Meta.SEODescription, &status, &p.PublishedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "public_site", id)
	}
	p.Status = domain.SiteStatus(status)
	return &p, nil
}

// Upsert creates or fully replaces the public copy.
func (r *Repo) Upsert(ctx context.Context, p *domain.PublicSite) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.OwnerID, p.Title, p.HTML, p.Meta.SEOTitle, p.Meta.SEODescription,
			string(domain.SiteStatusPublished), p.PublishedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return postgres.MapError(err, "public_site", p.ID)
	}
	return nil
}

// Delete removes the public copy of an owned site. Deleting a missing
// record is not an error.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "public_site", id)
	}
	return nil
}
