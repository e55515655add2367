package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// publicCSP isolates generated documents: they run with an opaque origin and
// cannot reach the application's cookies or storage.
const publicCSP = "sandbox allow-scripts allow-forms allow-popups allow-popups-to-escape-sandbox"

const notFoundPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Site not found</title></head>
<body><h1>Site not found</h1><p>This page does not exist or is no longer published.</p></body></html>
`

const errorPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Something went wrong</title></head>
<body><h1>Something went wrong</h1><p>Please try again in a moment.</p></body></html>
`

type publicSiteReader interface {
	GetPublic(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error)
}

// PublicHandler serves published sites to anyone.
type PublicHandler struct {
	svc publicSiteReader
	log *slog.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(svc publicSiteReader, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, log: logger.With("handler", "public")}
}

// Page handles GET /s/{siteID}: the published document as-is.
func (h *PublicHandler) Page(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "siteID"))
	if err != nil {
		writeHTML(w, http.StatusNotFound, notFoundPage)
		return
	}

	p, err := h.svc.GetPublic(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeHTML(w, http.StatusNotFound, notFoundPage)
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "load public site",
			slog.String("site_id", id.String()),
			slog.String("error", err.Error()))
		writeHTML(w, http.StatusInternalServerError, errorPage)
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Security-Policy", publicCSP)
	// Shared caches must revalidate so an unpublish takes effect at once.
	hdr.Set("Cache-Control", "no-cache")
	if v := headerValue(p.Meta.SEOTitle); v != "" {
		hdr.Set("X-Site-Title", v)
	}
	if v := headerValue(p.Meta.SEODescription); v != "" {
		hdr.Set("X-Site-Description", v)
	}
	hdr.Set("Last-Modified", p.PublishedAt.UTC().Format(http.TimeFormat))
	writeHTML(w, http.StatusOK, p.HTML)
}

// JSON handles GET /api/public/sites/{siteID}.
func (h *PublicHandler) JSON(w http.ResponseWriter, r *http.Request) {
	id, ok := siteIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetPublic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// headerValue flattens s to a single printable ASCII line.
func headerValue(s string) string {
	printable := strings.Map(func(r rune) rune {
		switch {
		case r == '\r' || r == '\n' || r == '\t':
			return ' '
		case r >= 0x20 && r < 0x7f:
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(printable), " ")
}
