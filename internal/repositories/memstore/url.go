package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/brmartin/shortly/internal/db"
	"github.com/brmartin/shortly/internal/db/memory"
	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/google/uuid"
)

const urlKeyPrefix = "url:"

// URLRepo репозиторий коротких ссылок в памяти.
type URLRepo struct {
	s  *db.MemoryStorage
	mu sync.Mutex
}

func NewURLRepo(store *db.MemoryStorage) *URLRepo {
	return &URLRepo{
		s: store,
	}
}

// Create создает запись. Уникальность короткого кода проверяется здесь же,
// по аналогии с уникальным индексом в sql реализации.
func (u *URLRepo) Create(ctx context.Context, sURL *models.ShortURL) (*models.ShortURL, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := memory.FilterAll[models.ShortURL](ctx, u.s.MStorage, func(val models.ShortURL) bool {
		return val.ShortCode == sURL.ShortCode
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}
	if len(existing) > 0 {
		return nil, repositories.ErrDuplicateKey
	}

	if sURL.ID == "" {
		sURL.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	sURL.CreatedAt = now
	sURL.UpdatedAt = now

	if setErr := memory.Set[models.ShortURL](ctx, urlKeyPrefix+sURL.ID, sURL, u.s.MStorage); setErr != nil {
		return nil, fmt.Errorf("failed to create record: %w", convertErrorType(setErr))
	}
	return sURL, nil
}

// GetByShortCode возвращает запись по короткому коду, включая помеченные удаленными.
// Фильтрацию по DeletedAt делает вызывающая сторона.
func (u *URLRepo) GetByShortCode(ctx context.Context, shortCode string) (*models.ShortURL, error) {
	urls, err := memory.FilterAll[models.ShortURL](ctx, u.s.MStorage, func(val models.ShortURL) bool {
		return val.ShortCode == shortCode
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by short code %s: %w",
			shortCode, convertErrorType(err),
		)
	}
	if len(urls) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &urls[0], nil
}

func (u *URLRepo) GetByID(ctx context.Context, id string) (*models.ShortURL, error) {
	url, err := memory.Get[models.ShortURL](ctx, urlKeyPrefix+id, u.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by id %s: %w",
			id, convertErrorType(err),
		)
	}
	return url, nil
}

// GetAllByUserID возвращает неудаленные записи пользователя в порядке создания.
func (u *URLRepo) GetAllByUserID(ctx context.Context, userID string) ([]models.ShortURL, error) {
	urls, err := memory.FilterAll[models.ShortURL](ctx, u.s.MStorage, func(val models.ShortURL) bool {
		if val.UserID == nil || val.DeletedAt != nil {
			return false
		}
		return *val.UserID == userID
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get records by user id %s: %w",
			userID, convertErrorType(err),
		)
	}
	sort.Slice(urls, func(i, j int) bool {
		return urls[i].CreatedAt.Before(urls[j].CreatedAt)
	})
	return urls, nil
}

func (u *URLRepo) UpdateOriginalURL(ctx context.Context, id string, originalURL string) (*models.ShortURL, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	url, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url.OriginalURL = originalURL
	url.UpdatedAt = time.Now().UTC()

	if setErr := memory.Set[models.ShortURL](ctx, urlKeyPrefix+id, url, u.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return nil, fmt.Errorf("failed to update record %s: %w", id, convertErrorType(setErr))
	}
	return url, nil
}

func (u *URLRepo) SoftDelete(ctx context.Context, id string) (*models.ShortURL, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	url, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	url.DeletedAt = &now
	url.UpdatedAt = now

	if setErr := memory.Set[models.ShortURL](ctx, urlKeyPrefix+id, url, u.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return nil, fmt.Errorf("failed to soft delete record %s: %w", id, convertErrorType(setErr))
	}
	return url, nil
}

// IncrementClicks увеличивает счетчик переходов. Атомарность обеспечивается
// мьютексом репозитория.
func (u *URLRepo) IncrementClicks(ctx context.Context, shortCode string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	url, err := u.GetByShortCode(ctx, shortCode)
	if err != nil {
		return err
	}
	if url.DeletedAt != nil {
		return repositories.ErrNotFound
	}
	url.Clicks++

	if setErr := memory.Set[models.ShortURL](ctx, urlKeyPrefix+url.ID, url, u.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return fmt.Errorf("failed to increment clicks for %s: %w", shortCode, convertErrorType(setErr))
	}
	return nil
}
