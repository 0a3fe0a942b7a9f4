package controllers

import (
	"context"

	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/services"
)

// Authenticator сценарии регистрации и входа.
type Authenticator interface {
	CreateAccount(ctx context.Context, email string, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email string, password string) (*services.AuthResult, error)
}

// URLShortener сценарии работы с короткими ссылками.
type URLShortener interface {
	Shorten(ctx context.Context, rawURL string, userID *string) (*models.ShortURL, error)
	RedirectToOriginal(ctx context.Context, shortCode string) (string, error)
	FindByOwner(ctx context.Context, userID string) ([]models.ShortURL, error)
	Update(ctx context.Context, id string, originalURL string, callerID string) (*models.ShortURL, error)
	Delete(ctx context.Context, id string, callerID string) (*models.ShortURL, error)
}
