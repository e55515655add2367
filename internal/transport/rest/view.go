package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/service/view"
	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

// SessionView handles GET /api/session/view?site=&new=1&public=. It reports
// the screen a client should show for the request's session and navigation.
func SessionView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var nav view.Navigation
	var ok bool
	if nav.PublicSiteID, ok = optionalUUID(w, q.Get("public")); !ok {
		return
	}
	if nav.EditSiteID, ok = optionalUUID(w, q.Get("site")); !ok {
		return
	}
	nav.New = q.Get("new") == "1" || q.Get("new") == "true"

	var session *uuid.UUID
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		session = &id
	}

	writeJSON(w, http.StatusOK, view.Resolve(session, nav))
}

func optionalUUID(w http.ResponseWriter, raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid site id")
		return nil, false
	}
	return &id, true
}
