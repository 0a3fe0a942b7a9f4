package sql

import (
	"context"
	"time"

	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type URLRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewURLRepo(db *gorm.DB, logger *logrus.Logger) *URLRepo {
	return &URLRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/url"),
	}
}

func (u *URLRepo) Create(ctx context.Context, sURL *models.ShortURL) (*models.ShortURL, error) {
	if sURL.ID == "" {
		sURL.ID = uuid.NewString()
	}
	if err := u.db.WithContext(ctx).Create(sURL).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicateKey
		}
		u.logger.WithError(err).Errorf("failed to create record %+v", *sURL)
		return nil, convertErrorType(err)
	}
	return sURL, nil
}

// GetByShortCode возвращает запись по короткому коду, включая помеченные удаленными.
// Фильтрацию по deleted_at делает вызывающая сторона.
func (u *URLRepo) GetByShortCode(ctx context.Context, shortCode string) (*models.ShortURL, error) {
	var url models.ShortURL
	if err := u.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&url).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		u.logger.WithError(err).Errorf("failed to get record by short code %s", shortCode)
		return nil, convertErrorType(err)
	}
	return &url, nil
}

func (u *URLRepo) GetByID(ctx context.Context, id string) (*models.ShortURL, error) {
	var url models.ShortURL
	if err := u.db.WithContext(ctx).Where("id = ?", id).First(&url).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		u.logger.WithError(err).Errorf("failed to get record by id %s", id)
		return nil, convertErrorType(err)
	}
	return &url, nil
}

// GetAllByUserID возвращает неудаленные записи пользователя в порядке создания.
func (u *URLRepo) GetAllByUserID(ctx context.Context, userID string) ([]models.ShortURL, error) {
	var urls []models.ShortURL
	err := u.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at ASC").
		Find(&urls).Error
	if err != nil {
		u.logger.WithError(err).Errorf("failed to get records by user id %s", userID)
		return nil, convertErrorType(err)
	}
	return urls, nil
}

// UpdateOriginalURL меняет только original_url, остальные поля не трогает.
func (u *URLRepo) UpdateOriginalURL(ctx context.Context, id string, originalURL string) (*models.ShortURL, error) {
	res := u.db.WithContext(ctx).
		Model(&models.ShortURL{}).
		Where("id = ?", id).
		Update("original_url", originalURL)
	if res.Error != nil {
		u.logger.WithError(res.Error).Errorf("failed to update record %s", id)
		return nil, convertErrorType(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repositories.ErrNotFound
	}
	return u.GetByID(ctx, id)
}

// SoftDelete помечает запись удаленной и возвращает ее.
func (u *URLRepo) SoftDelete(ctx context.Context, id string) (*models.ShortURL, error) {
	now := time.Now().UTC()
	res := u.db.WithContext(ctx).
		Model(&models.ShortURL{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)
	if res.Error != nil {
		u.logger.WithError(res.Error).Errorf("failed to soft delete record %s", id)
		return nil, convertErrorType(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repositories.ErrNotFound
	}
	return u.GetByID(ctx, id)
}

// IncrementClicks атомарно увеличивает счетчик переходов средствами базы.
func (u *URLRepo) IncrementClicks(ctx context.Context, shortCode string) error {
	res := u.db.WithContext(ctx).
		Model(&models.ShortURL{}).
		Where("short_code = ? AND deleted_at IS NULL", shortCode).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if res.Error != nil {
		u.logger.WithError(res.Error).Errorf("failed to increment clicks for %s", shortCode)
		return convertErrorType(res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
