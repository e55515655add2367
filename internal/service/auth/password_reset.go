package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/landing-builder-backend/internal/auth"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// RequestPasswordReset issues a single-use reset token and mails a link to
// it. An unknown email returns nil so account existence is not revealed.
func (s *Service) RequestPasswordReset(ctx context.Context, input PasswordResetRequestInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset for unknown email")
			return nil
		}
		return fmt.Errorf("auth.RequestPasswordReset get user: %w", err)
	}

	raw, hash, err := auth.NewOpaqueToken()
	if err != nil {
		return fmt.Errorf("auth.RequestPasswordReset generate token: %w", err)
	}

	if err := s.resetTokens.Create(ctx, &domain.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(s.cfg.ResetTokenTTL),
	}); err != nil {
		return fmt.Errorf("auth.RequestPasswordReset store token: %w", err)
	}

	if err := s.mail.SendPasswordReset(ctx, user.Email, resetLink(s.cfg.ResetURL, raw)); err != nil {
		return fmt.Errorf("auth.RequestPasswordReset send: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested", slog.String("user_id", user.ID.String()))
	return nil
}

// ResetPassword sets a new password using a reset token, consumes the token
// and signs the user out everywhere.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	token, err := s.resetTokens.GetByHash(ctx, auth.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ResetPassword get token: %w", err)
	}
	now := time.Now()
	if !token.IsUsable(now) {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// MarkUsed fails for a token consumed concurrently.
		if err := s.resetTokens.MarkUsed(txCtx, token.ID, now); err != nil {
			return fmt.Errorf("mark token used: %w", err)
		}
		if err := s.users.UpdatePassword(txCtx, token.UserID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, token.UserID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", token.UserID.String()))
	return nil
}

func resetLink(base, token string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "token=" + url.QueryEscape(token)
}
