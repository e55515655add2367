package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db      pinger
	cache   pinger
	version string
}

// NewHealthHandler creates a HealthHandler. cache may be nil when the public
// cache is disabled.
func NewHealthHandler(db, cache pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable. The cache is optional
// for serving and does not affect readiness.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every dependency with its ping latency. A down cache
// degrades the status without failing the check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": check(ctx, h.db)}
	overall := "ok"
	if components["database"].Status != "ok" {
		overall = "down"
	}

	if h.cache != nil {
		components["cache"] = check(ctx, h.cache)
		if components["cache"].Status != "ok" && overall == "ok" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func check(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
