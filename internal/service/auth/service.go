package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/config"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// userRepo stores credentials alongside the profile.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// tokenRepo stores refresh token hashes. GetByHash also returns revoked
// tokens so reuse can be detected.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// resetTokenRepo stores single-use password reset token hashes.
type resetTokenRepo interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager runs fn atomically; repositories join through ctx.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager signs access tokens and mints opaque refresh tokens.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// mailer delivers password reset links.
type mailer interface {
	SendPasswordReset(ctx context.Context, email, link string) error
}

// Service is the password identity provider: sign-up, sign-in, session
// rotation, sign-out and password reset.
type Service struct {
	log         *slog.Logger
	users       userRepo
	tokens      tokenRepo
	resetTokens resetTokenRepo
	tx          txManager
	jwt         jwtManager
	mail        mailer
	cfg         config.AuthConfig
}

func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	resetTokens resetTokenRepo,
	tx txManager,
	jwt jwtManager,
	mail mailer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		tokens:      tokens,
		resetTokens: resetTokens,
		tx:          tx,
		jwt:         jwt,
		mail:        mail,
		cfg:         cfg,
	}
}

// AuthResult is a freshly issued session.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token; only its hash is stored
	User         *domain.User
}

// issueTokens signs an access token and stores the hash of a new refresh token.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}
