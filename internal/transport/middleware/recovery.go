package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/landing-builder-backend/internal/metrics"
	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged 500 response. http.ErrAbortHandler
// is re-raised so net/http can drop the connection silently.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				metrics.PanicsTotal.Inc()
				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				}
				if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
					attrs = append(attrs, slog.String("request_id", id))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
