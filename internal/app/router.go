package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/landing-builder-backend/internal/config"
	"github.com/heartmarshall/landing-builder-backend/internal/transport/middleware"
	"github.com/heartmarshall/landing-builder-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type handlers struct {
	auth   *rest.AuthHandler
	me     *rest.MeHandler
	sites  *rest.SiteHandler
	public *rest.PublicHandler
	health *rest.HealthHandler
}

// newRouter assembles the HTTP surface. limiter may be nil when rate limiting
// is disabled.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
	h handlers,
) http.Handler {
	limit := func(perMinute int) middleware.Middleware {
		if limiter == nil {
			return middleware.Passthrough
		}
		return limiter.Limit(perMinute)
	}
	authLimit := limit(cfg.RateLimit.AuthPerMinute)
	generateLimit := limit(cfg.RateLimit.GeneratePerMinute)
	session := middleware.Auth(tokens)

	r := chi.NewRouter()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Metrics,
		middleware.CORS(cfg.CORS),
		middleware.MaxBody(cfg.Server.MaxBodyBytes),
	)

	r.Get("/live", h.health.Live)
	r.Get("/ready", h.health.Ready)
	r.Get("/health", h.health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/s/{siteID}", h.public.Page)

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authLimit)
			r.Post("/register", h.auth.Register)
			r.Post("/login", h.auth.Login)
			r.Post("/refresh", h.auth.Refresh)
			r.Post("/password/forgot", h.auth.ForgotPassword)
			r.Post("/password/reset", h.auth.ResetPassword)
		})
		r.With(session, middleware.RequireSession).Post("/logout", h.auth.Logout)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/public/sites/{siteID}", h.public.JSON)

		r.Group(func(r chi.Router) {
			r.Use(session)
			r.Get("/session/view", rest.SessionView)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession)

				r.Get("/me", h.me.Get)
				r.Patch("/me", h.me.Update)
				r.Post("/me/seen", h.me.Seen)

				r.Get("/sites", h.sites.List)
				r.Post("/sites", h.sites.Create)
				r.Get("/sites/new", h.sites.New)
				r.With(generateLimit).Post("/sites/generate", h.sites.Generate)
				r.Get("/sites/{siteID}", h.sites.Get)
				r.Put("/sites/{siteID}", h.sites.Update)
				r.Post("/sites/{siteID}/unpublish", h.sites.Unpublish)
			})
		})
	})

	return r
}
