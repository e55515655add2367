package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TouchLastSeenFunc     func(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateDisplayNameFunc func(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		TouchLastSeen []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
		UpdateDisplayName []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Name string
		}
	}
	lockGetByID           sync.RWMutex
	lockTouchLastSeen     sync.RWMutex
	lockUpdateDisplayName sync.RWMutex
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

func (mock *userRepoMock) TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastSeenFunc == nil {
		panic("userRepoMock.TouchLastSeenFunc: method is nil but userRepo.TouchLastSeen was just called")
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
	mock.lockTouchLastSeen.Lock()
	mock.calls.TouchLastSeen = append(mock.calls.TouchLastSeen, callInfo)
	mock.lockTouchLastSeen.Unlock()
	return mock.TouchLastSeenFunc(ctx, id, at)
}

func (mock *userRepoMock) TouchLastSeenCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockTouchLastSeen.RLock()
	calls := mock.calls.TouchLastSeen
	mock.lockTouchLastSeen.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	if mock.UpdateDisplayNameFunc == nil {
		panic("userRepoMock.UpdateDisplayNameFunc: method is nil but userRepo.UpdateDisplayName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Name string
	}{
		Ctx:  ctx,
		Id:   id,
		Name: name,
	}
	mock.lockUpdateDisplayName.Lock()
	mock.calls.UpdateDisplayName = append(mock.calls.UpdateDisplayName, callInfo)
	mock.lockUpdateDisplayName.Unlock()
	return mock.UpdateDisplayNameFunc(ctx, id, name)
}

func (mock *userRepoMock) UpdateDisplayNameCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Name string
} {
	mock.lockUpdateDisplayName.RLock()
	calls := mock.calls.UpdateDisplayName
	mock.lockUpdateDisplayName.RUnlock()
	return calls
}
