package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/landing-builder-backend/internal/config"
)

// originPolicy is the parsed form of CORSConfig.AllowedOrigins.
type originPolicy struct {
	any     bool
	origins map[string]struct{}
}

func newOriginPolicy(list string) originPolicy {
	p := originPolicy{origins: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[strings.ToLower(o)] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.any {
		return true
	}
	_, ok := p.origins[strings.ToLower(origin)]
	return ok
}

// CORS reflects allowed origins and short-circuits preflight requests
// (OPTIONS carrying Access-Control-Request-Method) with 204.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newOriginPolicy(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := policy.allows(origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
