package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/landing-builder-backend/internal/auth"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// Refresh exchanges a refresh token for a new session and revokes the old
// token. Presenting a token that was already rotated away revokes every
// session of its owner.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		s.log.WarnContext(ctx, "revoked refresh token presented, revoking all sessions",
			slog.String("user_id", token.UserID.String()))
		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke sessions: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}
	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
