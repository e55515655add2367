package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

// quietPaths are polled by orchestrators and scrapers; their successful
// requests are logged at DEBUG.
var quietPaths = map[string]bool{"/live": true, "/ready": true, "/health": true, "/metrics": true}

// Logger logs one "http.request" line per request. 5xx responses are logged
// at ERROR.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if ip := ctxutil.ClientIPFromCtx(ctx); ip != "" {
				attrs = append(attrs, slog.String("client_ip", ip))
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case quietPaths[r.URL.Path]:
				level = slog.LevelDebug
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter captures the response status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
