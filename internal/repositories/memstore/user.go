package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brmartin/shortly/internal/db"
	"github.com/brmartin/shortly/internal/db/memory"
	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/google/uuid"
)

const userKeyPrefix = "user:"

// UserRepo репозиторий пользователей в памяти.
type UserRepo struct {
	s  *db.MemoryStorage
	mu sync.Mutex
}

func NewUserRepo(store *db.MemoryStorage) *UserRepo {
	return &UserRepo{
		s: store,
	}
}

// Create создает пользователя. Уникальность email проверяется здесь же,
// по аналогии с уникальным индексом в sql реализации.
func (u *UserRepo) Create(ctx context.Context, mUser *models.User) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := memory.FilterAll[models.User](ctx, u.s.MStorage, func(val models.User) bool {
		return val.Email == mUser.Email
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", convertErrorType(err))
	}
	if len(existing) > 0 {
		return nil, repositories.ErrDuplicateKey
	}

	if mUser.ID == "" {
		mUser.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	mUser.CreatedAt = now
	mUser.UpdatedAt = now

	if setErr := memory.Set[models.User](ctx, userKeyPrefix+mUser.ID, mUser, u.s.MStorage); setErr != nil {
		return nil, fmt.Errorf("failed to create user: %w", convertErrorType(setErr))
	}
	return mUser, nil
}

// GetByEmail ищет пользователя по email среди неудаленных записей.
func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := memory.FilterAll[models.User](ctx, u.s.MStorage, func(val models.User) bool {
		return val.Email == email && val.DeletedAt == nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, convertErrorType(err))
	}
	if len(users) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &users[0], nil
}
