package services

import (
	"context"

	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// URLService сценарии работы с короткими ссылками.
type URLService struct {
	urls   URLRepository
	logger *logrus.Entry
}

func NewURLService(urls URLRepository, logger *logrus.Logger) *URLService {
	return &URLService{
		urls:   urls,
		logger: logger.WithField("module", "services/url"),
	}
}

// Shorten создает короткую ссылку. Код генерируется случайно; при коллизии
// по уникальному индексу делается повторная попытка с новым кодом, после
// maxShortCodeAttempts попыток длина кода увеличивается.
func (u *URLService) Shorten(ctx context.Context, rawURL string, userID *string) (*models.ShortURL, error) {
	length := models.ShortCodeLength

	for attempt := 1; attempt <= maxShortCodeAttempts*2; attempt++ {
		if attempt > maxShortCodeAttempts {
			length = models.ShortCodeMaxLength
		}

		code, genErr := generateShortCode(length)
		if genErr != nil {
			u.logger.WithError(genErr).Error("failed to generate short code")
			return nil, errors.Wrap(ErrServiceUnavailable, "failed to create short url")
		}

		created, createErr := u.urls.Create(ctx, &models.ShortURL{
			OriginalURL: rawURL,
			ShortCode:   code,
			UserID:      userID,
		})
		if createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				// коллизия короткого кода, пробуем еще раз
				continue
			}
			u.logger.WithError(createErr).Error("failed to create short url")
			return nil, errors.Wrap(ErrServiceUnavailable, "failed to create short url")
		}

		u.logger.Infof("short url %s created", created.ShortCode)
		return created, nil
	}

	return nil, errors.Wrap(ErrServiceUnavailable, "short code generation attempts exhausted")
}

// RedirectToOriginal возвращает целевой адрес по короткому коду и увеличивает
// счетчик переходов. Удаленные и несуществующие коды неразличимы для вызывающего.
func (u *URLService) RedirectToOriginal(ctx context.Context, shortCode string) (string, error) {
	sURL, err := u.urls.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", errors.Wrap(ErrRecordNotFound, "URL not found or deleted")
		}
		u.logger.WithError(err).Errorf("failed to look up short code %s", shortCode)
		return "", errors.Wrap(ErrServiceUnavailable, "failed to resolve short url")
	}
	if sURL.Deleted() {
		return "", errors.Wrap(ErrRecordNotFound, "URL not found or deleted")
	}

	if incErr := u.urls.IncrementClicks(ctx, shortCode); incErr != nil {
		u.logger.WithError(incErr).Errorf("failed to increment clicks for %s", shortCode)
		return "", errors.Wrap(ErrServiceUnavailable, "failed to resolve short url")
	}

	return sURL.OriginalURL, nil
}

// FindByOwner возвращает неудаленные ссылки пользователя. Пустой список не ошибка.
func (u *URLService) FindByOwner(ctx context.Context, userID string) ([]models.ShortURL, error) {
	urls, err := u.urls.GetAllByUserID(ctx, userID)
	if err != nil {
		u.logger.WithError(err).Errorf("failed to list urls for user %s", userID)
		return nil, errors.Wrap(ErrServiceUnavailable, "failed to list urls")
	}
	return urls, nil
}

// Update меняет целевой адрес ссылки. Доступно только владельцу.
func (u *URLService) Update(ctx context.Context, id string, originalURL string, callerID string) (*models.ShortURL, error) {
	if err := u.checkOwnership(ctx, id, callerID); err != nil {
		return nil, err
	}

	updated, updateErr := u.urls.UpdateOriginalURL(ctx, id, originalURL)
	if updateErr != nil {
		if errors.Is(updateErr, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "url %s not found", id)
		}
		u.logger.WithError(updateErr).Errorf("failed to update url %s", id)
		return nil, errors.Wrap(ErrServiceUnavailable, "failed to update url")
	}
	return updated, nil
}

// Delete помечает ссылку удаленной (мягкое удаление). Доступно только владельцу.
func (u *URLService) Delete(ctx context.Context, id string, callerID string) (*models.ShortURL, error) {
	if err := u.checkOwnership(ctx, id, callerID); err != nil {
		return nil, err
	}

	deleted, deleteErr := u.urls.SoftDelete(ctx, id)
	if deleteErr != nil {
		if errors.Is(deleteErr, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "url %s not found", id)
		}
		u.logger.WithError(deleteErr).Errorf("failed to delete url %s", id)
		return nil, errors.Wrap(ErrServiceUnavailable, "failed to delete url")
	}

	u.logger.Infof("short url %s deleted", deleted.ShortCode)
	return deleted, nil
}

// checkOwnership загружает запись и сверяет владельца. Отсутствующая запись
// дает ErrRecordNotFound до проверки владельца, анонимная запись не
// принадлежит никому.
func (u *URLService) checkOwnership(ctx context.Context, id string, callerID string) error {
	sURL, err := u.urls.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errors.Wrapf(ErrRecordNotFound, "url %s not found", id)
		}
		u.logger.WithError(err).Errorf("failed to get url %s", id)
		return errors.Wrap(ErrServiceUnavailable, "failed to get url")
	}
	if sURL.UserID == nil || *sURL.UserID != callerID {
		return errors.Wrap(ErrUnauthorized, "you do not own this URL")
	}
	return nil
}
