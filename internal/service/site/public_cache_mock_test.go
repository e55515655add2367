package site

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

var _ publicCache = &publicCacheMock{}

type publicCacheMock struct {
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error)
	InvalidateFunc func(ctx context.Context, id uuid.UUID) error
	SetFunc        func(ctx context.Context, p *domain.PublicSite) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Invalidate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Set []struct {
			Ctx context.Context
			P   *domain.PublicSite
		}
	}
	lockGet        sync.RWMutex
	lockInvalidate sync.RWMutex
	lockSet        sync.RWMutex
}

func (mock *publicCacheMock) Get(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error) {
	if mock.GetFunc == nil {
		panic("publicCacheMock.GetFunc: method is nil but publicCache.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *publicCacheMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *publicCacheMock) Invalidate(ctx context.Context, id uuid.UUID) error {
	if mock.InvalidateFunc == nil {
		panic("publicCacheMock.InvalidateFunc: method is nil but publicCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx, id)
}

func (mock *publicCacheMock) InvalidateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}

func (mock *publicCacheMock) Set(ctx context.Context, p *domain.PublicSite) error {
	if mock.SetFunc == nil {
		panic("publicCacheMock.SetFunc: method is nil but publicCache.Set was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PublicSite
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, p)
}

func (mock *publicCacheMock) SetCalls() []struct {
	Ctx context.Context
	P   *domain.PublicSite
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
