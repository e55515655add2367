package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
	"github.com/heartmarshall/landing-builder-backend/internal/service/site"
)

type siteService interface {
	CreateOrLoad(ctx context.Context, id *uuid.UUID) (*domain.Site, error)
	Generate(ctx context.Context, prompt domain.SitePrompt) (*domain.GeneratedPage, error)
	Save(ctx context.Context, input site.SaveInput) (*domain.Site, error)
	Unpublish(ctx context.Context, id uuid.UUID) error
	ListMine(ctx context.Context) ([]*domain.Site, error)
}

// SiteHandler serves the owner's site lifecycle endpoints under /api/sites.
type SiteHandler struct {
	svc siteService
	log *slog.Logger
}

// NewSiteHandler creates a SiteHandler.
func NewSiteHandler(svc siteService, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{svc: svc, log: logger.With("handler", "sites")}
}

type siteResponse struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"ownerId"`
	Title       string            `json:"title"`
	Prompt      domain.SitePrompt `json:"prompt"`
	HTML        string            `json:"html"`
	Meta        domain.SiteMeta   `json:"meta"`
	Status      string            `json:"status"`
	Saved       bool              `json:"saved"`
	CreatedAt   *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
}

type generateResponse struct {
	HTML string          `json:"html"`
	Meta domain.SiteMeta `json:"meta"`
}

type saveRequest struct {
	ID      *uuid.UUID        `json:"id,omitempty"`
	Prompt  domain.SitePrompt `json:"prompt"`
	HTML    string            `json:"html"`
	Meta    domain.SiteMeta   `json:"meta"`
	Publish bool              `json:"publish"`
}

// List handles GET /api/sites.
func (h *SiteHandler) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]siteResponse, 0, len(sites))
	for _, s := range sites {
		resp = append(resp, toSiteResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// New handles GET /api/sites/new: an unsaved draft with the default prompt.
func (h *SiteHandler) New(w http.ResponseWriter, r *http.Request) {
	h.load(w, r, nil)
}

// Get handles GET /api/sites/{siteID}.
func (h *SiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := siteIDParam(w, r)
	if !ok {
		return
	}
	h.load(w, r, &id)
}

func (h *SiteHandler) load(w http.ResponseWriter, r *http.Request, id *uuid.UUID) {
	s, err := h.svc.CreateOrLoad(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSiteResponse(s))
}

// Generate handles POST /api/sites/generate. Nothing is persisted.
func (h *SiteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var prompt domain.SitePrompt
	if !decodeJSON(w, r, &prompt) {
		return
	}

	page, err := h.svc.Generate(r.Context(), prompt)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{HTML: page.HTML, Meta: page.Meta})
}

// Create handles POST /api/sites. The body may carry the id returned by a
// previous save; without one a new id is minted.
func (h *SiteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var id uuid.UUID
	if req.ID != nil {
		id = *req.ID
	}
	h.save(w, r, id, req)
}

// Update handles PUT /api/sites/{siteID}.
func (h *SiteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := siteIDParam(w, r)
	if !ok {
		return
	}

	var req saveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID != nil && *req.ID != id {
		writeError(w, http.StatusBadRequest, "body id does not match path")
		return
	}
	h.save(w, r, id, req)
}

func (h *SiteHandler) save(w http.ResponseWriter, r *http.Request, id uuid.UUID, req saveRequest) {
	saved, err := h.svc.Save(r.Context(), site.SaveInput{
		ID:      id,
		Prompt:  req.Prompt,
		HTML:    req.HTML,
		Meta:    req.Meta,
		Publish: req.Publish,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSiteResponse(saved))
}

// Unpublish handles POST /api/sites/{siteID}/unpublish.
func (h *SiteHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	id, ok := siteIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.Unpublish(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func siteIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid site id")
		return uuid.Nil, false
	}
	return id, true
}

func toSiteResponse(s *domain.Site) siteResponse {
	resp := siteResponse{
		ID:          s.ID.String(),
		OwnerID:     s.OwnerID.String(),
		Title:       s.Title,
		Prompt:      s.Prompt,
		HTML:        s.HTML,
		Meta:        s.Meta,
		Status:      s.Status.String(),
		Saved:       !s.CreatedAt.IsZero(),
		PublishedAt: s.PublishedAt,
	}
	if !s.CreatedAt.IsZero() {
		createdAt, updatedAt := s.CreatedAt, s.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
