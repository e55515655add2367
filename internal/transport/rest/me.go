package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
	"github.com/heartmarshall/landing-builder-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, input user.UpdateDisplayNameInput) (*domain.User, error)
	TouchLastSeen(ctx context.Context) error
}

// MeHandler serves the signed-in user's profile.
type MeHandler struct {
	svc userService
	log *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(svc userService, logger *slog.Logger) *MeHandler {
	return &MeHandler{svc: svc, log: logger.With("handler", "me")}
}

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	LastSeenAt  time.Time `json:"lastSeen"`
}

type updateProfileRequest struct {
	DisplayName string `json:"displayName"`
}

// Get handles GET /api/me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /api/me.
func (h *MeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateDisplayName(r.Context(), user.UpdateDisplayNameInput{DisplayName: req.DisplayName})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Seen handles POST /api/me/seen.
func (h *MeHandler) Seen(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.TouchLastSeen(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u *domain.User) userResponse {
	if u == nil {
		return userResponse{}
	}
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
		LastSeenAt:  u.LastSeenAt,
	}
}
