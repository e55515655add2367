// Package site owns the landing page lifecycle: create-or-load, generate,
// save (optionally publishing) and unpublish. It keeps the owner-scoped Site
// record and its public copy consistent without cross-record transactions:
// publish writes the owner record first, unpublish deletes the public record
// first, so a partial failure always leaves the site not publicly visible.
package site

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// siteRepo defines the owner-scoped site store needed by the service.
type siteRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Site, error)
	Upsert(ctx context.Context, s *domain.Site) (*domain.Site, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status domain.SiteStatus, at time.Time) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Site, error)
}

// publicSiteRepo defines the public site store needed by the service.
type publicSiteRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error)
	Upsert(ctx context.Context, p *domain.PublicSite) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// publicCache caches public sites for the read path. Get returns (nil, nil) on a miss.
type publicCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error)
	Set(ctx context.Context, p *domain.PublicSite) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// generator turns a prompt into a page with one call.
type generator interface {
	Generate(ctx context.Context, prompt domain.SitePrompt) (*domain.GeneratedPage, error)
}

// Service implements the site lifecycle.
type Service struct {
	log     *slog.Logger
	sites   siteRepo
	publics publicSiteRepo
	cache   publicCache
	gen     generator
	now     func() time.Time
}

// Option configures optional Service dependencies.
type Option func(*Service)

// WithCache enables the public site cache.
func WithCache(c publicCache) Option {
	return func(s *Service) { s.cache = c }
}

// NewService creates a new site service instance.
func NewService(
	logger *slog.Logger,
	sites siteRepo,
	publics publicSiteRepo,
	gen generator,
	opts ...Option,
) *Service {
	s := &Service{
		log:     logger.With("service", "site"),
		sites:   sites,
		publics: publics,
		gen:     gen,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, id)
}
