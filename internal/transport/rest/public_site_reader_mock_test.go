package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

var _ publicSiteReader = &publicSiteReaderMock{}

type publicSiteReaderMock struct {
	GetPublicFunc func(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error)

	calls struct {
		GetPublic []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetPublic sync.RWMutex
}

func (mock *publicSiteReaderMock) GetPublic(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error) {
	if mock.GetPublicFunc == nil {
		panic("publicSiteReaderMock.GetPublicFunc: method is nil but publicSiteReader.GetPublic was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetPublic.Lock()
	mock.calls.GetPublic = append(mock.calls.GetPublic, callInfo)
	mock.lockGetPublic.Unlock()
	return mock.GetPublicFunc(ctx, id)
}

func (mock *publicSiteReaderMock) GetPublicCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetPublic.RLock()
	calls := mock.calls.GetPublic
	mock.lockGetPublic.RUnlock()
	return calls
}
