package site

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

var _ siteRepo = &siteRepoMock{}

type siteRepoMock struct {
	GetByIDFunc      func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Site, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Site, error)
	UpdateStatusFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, status domain.SiteStatus, at time.Time) error
	UpsertFunc       func(ctx context.Context, s *domain.Site) (*domain.Site, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
			Status  domain.SiteStatus
			At      time.Time
		}
		Upsert []struct {
			Ctx context.Context
			S   *domain.Site
		}
	}
	lockGetByID      sync.RWMutex
	lockListByOwner  sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockUpsert       sync.RWMutex
}

func (mock *siteRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Site, error) {
	if mock.GetByIDFunc == nil {
		panic("siteRepoMock.GetByIDFunc: method is nil but siteRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Id:      id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *siteRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *siteRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Site, error) {
	if mock.ListByOwnerFunc == nil {
		panic("siteRepoMock.ListByOwnerFunc: method is nil but siteRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *siteRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *siteRepoMock) UpdateStatus(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, status domain.SiteStatus, at time.Time) error {
	if mock.UpdateStatusFunc == nil {
		panic("siteRepoMock.UpdateStatusFunc: method is nil but siteRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
		Status  domain.SiteStatus
		At      time.Time
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Id:      id,
		Status:  status,
		At:      at,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, ownerID, id, status, at)
}

func (mock *siteRepoMock) UpdateStatusCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
	Status  domain.SiteStatus
	At      time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *siteRepoMock) Upsert(ctx context.Context, s *domain.Site) (*domain.Site, error) {
	if mock.UpsertFunc == nil {
		panic("siteRepoMock.UpsertFunc: method is nil but siteRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Site
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *siteRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   *domain.Site
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
