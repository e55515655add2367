package site

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
	"github.com/heartmarshall/landing-builder-backend/internal/metrics"
	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

// ListMine returns the caller's sites, most recently updated first.
func (s *Service) ListMine(ctx context.Context) ([]*domain.Site, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sites, err := s.sites.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("site.ListMine: %w", err)
	}
	return sites, nil
}

// GetPublic returns a published site by id. No session is required.
// Cache errors fall back to the store.
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			metrics.PublicCacheTotal.WithLabelValues("error").Inc()
			s.log.WarnContext(ctx, "public cache read failed",
				slog.String("site_id", id.String()), slog.String("error", err.Error()))
		case cached != nil && cached.Status == domain.SiteStatusPublished:
			metrics.PublicCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.PublicCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	p, err := s.publics.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("site.GetPublic: %w", err)
	}
	if p.Status != domain.SiteStatusPublished {
		return nil, fmt.Errorf("site.GetPublic: %w", domain.ErrNotFound)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, p); err != nil {
			s.log.WarnContext(ctx, "public cache write failed",
				slog.String("site_id", id.String()), slog.String("error", err.Error()))
		}
	}
	return p, nil
}
