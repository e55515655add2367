package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile record created at sign-up.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	AvatarURL    *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSeenAt   time.Time
}

// RefreshToken is a stored (hashed) refresh token.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsExpired reports whether the token is expired at the given time.
func (t RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsRevoked reports whether the token has been revoked.
func (t RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// PasswordResetToken is a single-use token issued by a password reset request.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	UsedAt    *time.Time
}

// IsUsable reports whether the token can still reset a password.
func (t PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && !now.After(t.ExpiresAt)
}
