// Package view routes session state and navigation to the screen a client
// should show: the sign-in screen, the dashboard, the builder (optionally for
// an existing site) or a public site.
package view

import "github.com/google/uuid"

// Screen is a top-level client view.
type Screen string

const (
	ScreenAuth      Screen = "auth"
	ScreenDashboard Screen = "dashboard"
	ScreenBuilder   Screen = "builder"
	ScreenPublic    Screen = "public"
)

// State is the router's current position. SiteID is set for the builder when
// editing an existing site and always for the public screen.
type State struct {
	Screen        Screen     `json:"screen"`
	SiteID        *uuid.UUID `json:"siteId,omitempty"`
	Authenticated bool       `json:"authenticated"`
}

// Router is a small state machine owned by one client session.
// It is not safe for concurrent use.
type Router struct {
	session *uuid.UUID
	screen  Screen
	siteID  *uuid.UUID
}

// New returns a router on the sign-in screen with no session.
func New() *Router {
	return &Router{screen: ScreenAuth}
}

// State returns a snapshot of the current position.
func (r *Router) State() State {
	st := State{Screen: r.screen, Authenticated: r.session != nil}
	if r.siteID != nil {
		id := *r.siteID
		st.SiteID = &id
	}
	return st
}

// SessionChanged applies a sign-in (userID set) or sign-out (nil).
// Sign-out drops to the sign-in screen unless a public site is shown.
func (r *Router) SessionChanged(userID *uuid.UUID) State {
	if userID == nil {
		r.session = nil
		if r.screen != ScreenPublic {
			r.to(ScreenAuth, nil)
		}
		return r.State()
	}

	id := *userID
	r.session = &id
	if r.screen == ScreenAuth {
		r.to(ScreenDashboard, nil)
	}
	return r.State()
}

// CreateNew opens the builder for a new site.
func (r *Router) CreateNew() State {
	return r.authed(ScreenBuilder, nil)
}

// Edit opens the builder for an existing site.
func (r *Router) Edit(siteID uuid.UUID) State {
	return r.authed(ScreenBuilder, &siteID)
}

// Back leaves the builder for the dashboard.
func (r *Router) Back() State {
	return r.authed(ScreenDashboard, nil)
}

// OpenPublic shows a public site. No session is needed.
func (r *Router) OpenPublic(siteID uuid.UUID) State {
	r.to(ScreenPublic, &siteID)
	return r.State()
}

func (r *Router) authed(screen Screen, siteID *uuid.UUID) State {
	if r.session == nil {
		r.to(ScreenAuth, nil)
		return r.State()
	}
	r.to(screen, siteID)
	return r.State()
}

func (r *Router) to(screen Screen, siteID *uuid.UUID) {
	r.screen = screen
	r.siteID = siteID
}

// Navigation is a stateless request for a screen, as sent by a client that
// was just (re)loaded.
type Navigation struct {
	PublicSiteID *uuid.UUID
	EditSiteID   *uuid.UUID
	New          bool
}

// Resolve replays a session and a navigation request on a fresh router.
// A public site wins over builder navigation; New wins over EditSiteID.
func Resolve(userID *uuid.UUID, nav Navigation) State {
	r := New()
	r.SessionChanged(userID)

	switch {
	case nav.PublicSiteID != nil:
		return r.OpenPublic(*nav.PublicSiteID)
	case nav.New:
		return r.CreateNew()
	case nav.EditSiteID != nil:
		return r.Edit(*nav.EditSiteID)
	}
	return r.State()
}
