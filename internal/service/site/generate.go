package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
	"github.com/heartmarshall/landing-builder-backend/internal/metrics"
	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

// Generate produces a page for prompt with a single generator call. Nothing
// is persisted. Any generator failure or empty output is reported as
// domain.ErrGenerationFailed; the caller may resubmit.
func (s *Service) Generate(ctx context.Context, prompt domain.SitePrompt) (*domain.GeneratedPage, error) {
	if !ctxutil.HasSession(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if err := ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := s.gen.Generate(ctx, prompt)
	if err == nil && (page == nil || strings.TrimSpace(page.HTML) == "") {
		err = errors.New("empty document")
	}
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	metrics.GenerationsTotal.WithLabelValues(metrics.Result(err)).Inc()

	if err != nil {
		s.log.WarnContext(ctx, "generation failed",
			slog.String("business_type", prompt.BusinessType),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("site.Generate: %w: %w", domain.ErrGenerationFailed, err)
	}

	return page, nil
}
