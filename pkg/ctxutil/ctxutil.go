// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	ownerIDKey   ctxKey = "owner_id"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithUserID stores the authenticated user (the site owner) in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, id)
}

// UserIDFromCtx returns the authenticated user.
// A missing value, uuid.Nil or a value of the wrong type all report false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// HasSession reports whether the context carries an authenticated user.
func HasSession(ctx context.Context) bool {
	_, ok := UserIDFromCtx(ctx)
	return ok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" when no request id was assigned.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
