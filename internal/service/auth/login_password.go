package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// unknownUserHash is compared against when the email is not registered, so
// both failure paths cost one bcrypt comparison.
var unknownUserHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("no such user"), bcrypt.DefaultCost)
	return h
})

// LoginWithPassword authenticates a user with email + password. An unknown
// email and a wrong password both return ErrUnauthorized.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.LoginWithPassword get user: %w", err)
	}

	hash := unknownUserHash()
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(input.Password)); err != nil || user == nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
