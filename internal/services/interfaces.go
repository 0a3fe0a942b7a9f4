package services

import (
	"context"

	"github.com/brmartin/shortly/internal/models"
)

// UserRepository описывает репозиторий для пользователей.
type UserRepository interface {
	// Create создает запись пользователя и возвращает ее с заполненным id.
	Create(ctx context.Context, mUser *models.User) (*models.User, error)
	// GetByEmail находит неудаленного пользователя по email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// URLRepository описывает репозиторий для коротких ссылок.
type URLRepository interface {
	// Create создает запись короткой ссылки.
	Create(ctx context.Context, sURL *models.ShortURL) (*models.ShortURL, error)
	// GetByShortCode находит запись по короткому коду (включая удаленные).
	GetByShortCode(ctx context.Context, shortCode string) (*models.ShortURL, error)
	// GetByID находит запись по id.
	GetByID(ctx context.Context, id string) (*models.ShortURL, error)
	// GetAllByUserID возвращает неудаленные записи пользователя.
	GetAllByUserID(ctx context.Context, userID string) ([]models.ShortURL, error)
	// UpdateOriginalURL меняет целевой адрес записи.
	UpdateOriginalURL(ctx context.Context, id string, originalURL string) (*models.ShortURL, error)
	// SoftDelete помечает запись удаленной.
	SoftDelete(ctx context.Context, id string) (*models.ShortURL, error)
	// IncrementClicks увеличивает счетчик переходов на единицу.
	IncrementClicks(ctx context.Context, shortCode string) error
}
