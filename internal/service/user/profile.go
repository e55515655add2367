package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile. It does not touch
// last-seen; see TouchLastSeen.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateDisplayName changes the authenticated user's display name.
func (s *Service) UpdateDisplayName(ctx context.Context, input UpdateDisplayNameInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Update profile
	user, err := s.users.UpdateDisplayName(ctx, userID, strings.TrimSpace(input.DisplayName))
	if err != nil {
		return nil, fmt.Errorf("user.UpdateDisplayName: %w", err)
	}

	s.log.InfoContext(ctx, "display name updated",
		slog.String("user_id", userID.String()))

	return user, nil
}

// TouchLastSeen records that the authenticated user is active now.
// Repeated calls are harmless; the stored value never moves backwards.
func (s *Service) TouchLastSeen(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.TouchLastSeen(ctx, userID, s.now().UTC()); err != nil {
		return fmt.Errorf("user.TouchLastSeen: %w", err)
	}
	return nil
}
