package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
	"github.com/heartmarshall/landing-builder-backend/internal/metrics"
	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

// CreateOrLoad returns the caller's site id, or a fresh unsaved draft when id
// is nil. A site owned by someone else is reported as domain.ErrNotFound.
func (s *Service) CreateOrLoad(ctx context.Context, id *uuid.UUID) (*domain.Site, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if id == nil {
		return domain.NewDraft(ownerID), nil
	}

	site, err := s.sites.GetByID(ctx, ownerID, *id)
	if err != nil {
		return nil, fmt.Errorf("site.CreateOrLoad: %w", err)
	}
	return site, nil
}

// Save persists the snapshot as the caller's site, minting an id on first
// save. Publishing additionally overwrites the public copy after the owner
// record is written. A plain save never downgrades a published site.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Site, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	op := "save"
	if input.Publish {
		op = "publish"
	}

	saved, err := s.save(ctx, ownerID, input)
	metrics.SiteOperationsTotal.WithLabelValues(op, metrics.Result(err)).Inc()
	if err != nil {
		var pw *domain.PartialWriteError
		if errors.As(err, &pw) {
			metrics.PartialWritesTotal.WithLabelValues(pw.Op, pw.Stage).Inc()
			s.log.ErrorContext(ctx, "site published partially",
				slog.String("site_id", pw.SiteID.String()),
				slog.String("stage", pw.Stage),
				slog.String("error", pw.Err.Error()))
		}
		return nil, fmt.Errorf("site.Save: %w", err)
	}

	s.log.InfoContext(ctx, "site saved",
		slog.String("site_id", saved.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("status", saved.Status.String()),
		slog.Bool("published_now", input.Publish))

	return saved, nil
}

func (s *Service) save(ctx context.Context, ownerID uuid.UUID, input SaveInput) (*domain.Site, error) {
	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	persisted, err := s.sites.GetByID(ctx, ownerID, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		persisted = nil
	case err != nil:
		return nil, fmt.Errorf("%w: read site: %w", domain.ErrSaveFailed, err)
	}

	status := domain.SiteStatusDraft
	if input.Publish || (persisted != nil && persisted.IsPublished()) {
		status = domain.SiteStatusPublished
	}

	now := s.now().UTC()
	record := &domain.Site{
		ID:        id,
		OwnerID:   ownerID,
		Title:     input.Prompt.Title,
		Prompt:    input.Prompt,
		HTML:      input.HTML,
		Meta:      input.Meta,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Publish {
		record.PublishedAt = &now
	}

	saved, err := s.sites.Upsert(ctx, record)
	if err != nil {
		// Upsert reports an id held by another owner as not found.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: write site: %w", domain.ErrSaveFailed, err)
	}

	if !input.Publish {
		return saved, nil
	}

	if err := s.publics.Upsert(ctx, saved.Public(now)); err != nil {
		return nil, &domain.PartialWriteError{Op: "save", Stage: domain.StagePublicWrite, SiteID: id, Err: err}
	}
	if err := s.invalidate(ctx, id); err != nil {
		return nil, &domain.PartialWriteError{Op: "save", Stage: domain.StagePublicWrite, SiteID: id, Err: err}
	}

	return saved, nil
}

// Unpublish removes the public copy of the caller's site, then marks the
// site as a draft. Unpublishing an unpublished site is a no-op.
func (s *Service) Unpublish(ctx context.Context, id uuid.UUID) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.unpublish(ctx, ownerID, id)
	metrics.SiteOperationsTotal.WithLabelValues("unpublish", metrics.Result(err)).Inc()
	if err != nil {
		var pw *domain.PartialWriteError
		if errors.As(err, &pw) {
			metrics.PartialWritesTotal.WithLabelValues(pw.Op, pw.Stage).Inc()
			s.log.ErrorContext(ctx, "site unpublished partially",
				slog.String("site_id", id.String()),
				slog.String("stage", pw.Stage),
				slog.String("error", pw.Err.Error()))
		}
		return fmt.Errorf("site.Unpublish: %w", err)
	}

	s.log.InfoContext(ctx, "site unpublished",
		slog.String("site_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}

func (s *Service) unpublish(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.sites.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: read site: %w", domain.ErrUnpublishFailed, err)
	}

	if err := s.publics.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("%w: delete public site: %w", domain.ErrUnpublishFailed, err)
	}
	if err := s.invalidate(ctx, id); err != nil {
		return fmt.Errorf("%w: invalidate cache: %w", domain.ErrUnpublishFailed, err)
	}

	if err := s.sites.UpdateStatus(ctx, ownerID, id, domain.SiteStatusDraft, s.now().UTC()); err != nil {
		return &domain.PartialWriteError{Op: "unpublish", Stage: domain.StageOwnerWrite, SiteID: id, Err: err}
	}
	return nil
}
