package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/landing-builder-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc             func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginWithPasswordFunc    func(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error)
	RefreshFunc              func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc               func(ctx context.Context) error
	RequestPasswordResetFunc func(ctx context.Context, input auth.PasswordResetRequestInput) error
	ResetPasswordFunc        func(ctx context.Context, input auth.ResetPasswordInput) error

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		LoginWithPassword []struct {
			Ctx   context.Context
			Input auth.LoginPasswordInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		Logout []struct {
			Ctx context.Context
		}
		RequestPasswordReset []struct {
			Ctx   context.Context
			Input auth.PasswordResetRequestInput
		}
		ResetPassword []struct {
			Ctx   context.Context
			Input auth.ResetPasswordInput
		}
	}
	lockRegister             sync.RWMutex
	lockLoginWithPassword    sync.RWMutex
	lockRefresh              sync.RWMutex
	lockLogout               sync.RWMutex
	lockRequestPasswordReset sync.RWMutex
	lockResetPassword        sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error) {
	if mock.LoginWithPasswordFunc == nil {
		panic("authServiceMock.LoginWithPasswordFunc: method is nil but authService.LoginWithPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginPasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLoginWithPassword.Lock()
	mock.calls.LoginWithPassword = append(mock.calls.LoginWithPassword, callInfo)
	mock.lockLoginWithPassword.Unlock()
	return mock.LoginWithPasswordFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.LoginPasswordInput
} {
	mock.lockLoginWithPassword.RLock()
	calls := mock.calls.LoginWithPassword
	mock.lockLoginWithPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) RequestPasswordReset(ctx context.Context, input auth.PasswordResetRequestInput) error {
	if mock.RequestPasswordResetFunc == nil {
		panic("authServiceMock.RequestPasswordResetFunc: method is nil but authService.RequestPasswordReset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.PasswordResetRequestInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRequestPasswordReset.Lock()
	mock.calls.RequestPasswordReset = append(mock.calls.RequestPasswordReset, callInfo)
	mock.lockRequestPasswordReset.Unlock()
	return mock.RequestPasswordResetFunc(ctx, input)
}

func (mock *authServiceMock) RequestPasswordResetCalls() []struct {
	Ctx   context.Context
	Input auth.PasswordResetRequestInput
} {
	mock.lockRequestPasswordReset.RLock()
	calls := mock.calls.RequestPasswordReset
	mock.lockRequestPasswordReset.RUnlock()
	return calls
}

func (mock *authServiceMock) ResetPassword(ctx context.Context, input auth.ResetPasswordInput) error {
	if mock.ResetPasswordFunc == nil {
		panic("authServiceMock.ResetPasswordFunc: method is nil but authService.ResetPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ResetPasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockResetPassword.Lock()
	mock.calls.ResetPassword = append(mock.calls.ResetPassword, callInfo)
	mock.lockResetPassword.Unlock()
	return mock.ResetPasswordFunc(ctx, input)
}

func (mock *authServiceMock) ResetPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.ResetPasswordInput
} {
	mock.lockResetPassword.RLock()
	calls := mock.calls.ResetPassword
	mock.lockResetPassword.RUnlock()
	return calls
}
