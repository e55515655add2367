package site

import (
	"context"
	"sync"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, prompt domain.SitePrompt) (*domain.GeneratedPage, error)

	calls struct {
		Generate []struct {
			Ctx    context.Context
			Prompt domain.SitePrompt
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, prompt domain.SitePrompt) (*domain.GeneratedPage, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt domain.SitePrompt
	}{
		Ctx:    ctx,
		Prompt: prompt,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, prompt)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx    context.Context
	Prompt domain.SitePrompt
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
