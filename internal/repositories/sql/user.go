package sql

import (
	"context"

	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewUserRepo(db *gorm.DB, logger *logrus.Logger) *UserRepo {
	return &UserRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/user"),
	}
}

func (u *UserRepo) Create(ctx context.Context, mUser *models.User) (*models.User, error) {
	if mUser.ID == "" {
		mUser.ID = uuid.NewString()
	}
	if err := u.db.WithContext(ctx).Create(mUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicateKey
		}
		u.logger.WithError(err).Errorf("failed to create user %s", mUser.Email)
		return nil, convertErrorType(err)
	}
	return mUser, nil
}

// GetByEmail ищет пользователя по email среди неудаленных записей.
func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).
		Where("email = ? AND deleted_at IS NULL", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		u.logger.WithError(err).Errorf("failed to get user by email %s", email)
		return nil, convertErrorType(err)
	}
	return &user, nil
}
