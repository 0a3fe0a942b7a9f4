package smocks

import (
	"context"

	"github.com/brmartin/shortly/internal/services"
	"github.com/stretchr/testify/mock"
)

type AuthMock struct {
	mock.Mock
}

func (m *AuthMock) CreateAccount(ctx context.Context, email string, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*services.AuthResult), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *AuthMock) Login(ctx context.Context, email string, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*services.AuthResult), args.Error(1) //nolint:wrapcheck,errcheck
}
