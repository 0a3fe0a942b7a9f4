package mocks

import (
	"context"

	"github.com/brmartin/shortly/internal/models"
	"github.com/stretchr/testify/mock"
)

type URLRepoMock struct {
	mock.Mock
}

func (m *URLRepoMock) Create(ctx context.Context, sURL *models.ShortURL) (*models.ShortURL, error) {
	args := m.Called(ctx, sURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) GetByShortCode(ctx context.Context, shortCode string) (*models.ShortURL, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) GetByID(ctx context.Context, id string) (*models.ShortURL, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) GetAllByUserID(ctx context.Context, userID string) ([]models.ShortURL, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) UpdateOriginalURL(ctx context.Context, id string, originalURL string) (*models.ShortURL, error) {
	args := m.Called(ctx, id, originalURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) SoftDelete(ctx context.Context, id string) (*models.ShortURL, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) IncrementClicks(ctx context.Context, shortCode string) error {
	args := m.Called(ctx, shortCode)
	return args.Error(0) //nolint:wrapcheck,errcheck
}
