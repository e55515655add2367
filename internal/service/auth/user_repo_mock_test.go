package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, hash string) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdatePassword []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Hash string
		}
	}
	lockCreate         sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdatePassword sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Hash string
	}{
		Ctx:  ctx,
		Id:   id,
		Hash: hash,
	}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Hash string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
