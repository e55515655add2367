package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// Register creates a new user profile with email + password authentication
// and signs it in. Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create the profile and the first refresh token together.
	// Email uniqueness is enforced by a DB constraint.
	var result *AuthResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			DisplayName:  input.DisplayName,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
			LastSeenAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", result.User.ID.String()))

	return result, nil
}
