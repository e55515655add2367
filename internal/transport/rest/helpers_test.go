package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type request struct {
	method  string
	pattern string
	path    string
	body    string
	userID  *uuid.UUID
}

// do routes one request through a chi router so URL params resolve.
func do(t *testing.T, h http.HandlerFunc, req request) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Method(req.method, req.pattern, h)

	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}
	httpReq := httptest.NewRequest(req.method, req.path, body)
	if req.userID != nil {
		httpReq = httpReq.WithContext(ctxutil.WithUserID(httpReq.Context(), *req.userID))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httpReq)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return v
}
