package smocks

import (
	"context"

	"github.com/brmartin/shortly/internal/models"
	"github.com/stretchr/testify/mock"
)

type URLMock struct {
	mock.Mock
}

func (m *URLMock) Shorten(ctx context.Context, rawURL string, userID *string) (*models.ShortURL, error) {
	args := m.Called(ctx, rawURL, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLMock) RedirectToOriginal(ctx context.Context, shortCode string) (string, error) {
	args := m.Called(ctx, shortCode)
	return args.String(0), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLMock) FindByOwner(ctx context.Context, userID string) ([]models.ShortURL, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLMock) Update(ctx context.Context, id string, originalURL string, callerID string) (*models.ShortURL, error) {
	args := m.Called(ctx, id, originalURL, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLMock) Delete(ctx context.Context, id string, callerID string) (*models.ShortURL, error) {
	args := m.Called(ctx, id, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}
