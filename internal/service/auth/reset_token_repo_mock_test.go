package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

var _ resetTokenRepo = &resetTokenRepoMock{}

type resetTokenRepoMock struct {
	CreateFunc        func(ctx context.Context, token *domain.PasswordResetToken) error
	DeleteExpiredFunc func(ctx context.Context) (int, error)
	GetByHashFunc     func(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error)
	MarkUsedFunc      func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Token *domain.PasswordResetToken
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
		GetByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		MarkUsed []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
	}
	lockCreate        sync.RWMutex
	lockDeleteExpired sync.RWMutex
	lockGetByHash     sync.RWMutex
	lockMarkUsed      sync.RWMutex
}

func (mock *resetTokenRepoMock) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	if mock.CreateFunc == nil {
		panic("resetTokenRepoMock.CreateFunc: method is nil but resetTokenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token *domain.PasswordResetToken
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, token)
}

func (mock *resetTokenRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Token *domain.PasswordResetToken
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *resetTokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("resetTokenRepoMock.DeleteExpiredFunc: method is nil but resetTokenRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *resetTokenRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

func (mock *resetTokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	if mock.GetByHashFunc == nil {
		panic("resetTokenRepoMock.GetByHashFunc: method is nil but resetTokenRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{
		Ctx:       ctx,
		TokenHash: tokenHash,
	}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *resetTokenRepoMock) GetByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *resetTokenRepoMock) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkUsedFunc == nil {
		panic("resetTokenRepoMock.MarkUsedFunc: method is nil but resetTokenRepo.MarkUsed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		Id:  id,
		At:  at,
	}
	mock.lockMarkUsed.Lock()
	mock.calls.MarkUsed = append(mock.calls.MarkUsed, callInfo)
	mock.lockMarkUsed.Unlock()
	return mock.MarkUsedFunc(ctx, id, at)
}

func (mock *resetTokenRepoMock) MarkUsedCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockMarkUsed.RLock()
	calls := mock.calls.MarkUsed
	mock.lockMarkUsed.RUnlock()
	return calls
}
