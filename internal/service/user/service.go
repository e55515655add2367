package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	now   func() time.Time
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		now:   time.Now,
	}
}
