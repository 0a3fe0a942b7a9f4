package services

import (
	"context"
	"time"

	"github.com/brmartin/shortly/internal/hashing"
	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/brmartin/shortly/internal/tokens"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AuthResult результат успешной регистрации или входа.
// Пароль (и его дайджест) сюда не попадает никогда.
type AuthResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AuthService сценарии регистрации и входа.
type AuthService struct {
	users       UserRepository
	hasher      hashing.Hasher
	jwtSecret   []byte
	tokenTTL    time.Duration
	dummyDigest string
	logger      *logrus.Entry
}

func NewAuthService(
	users UserRepository,
	hasher hashing.Hasher,
	jwtSecret []byte,
	tokenTTL time.Duration,
	logger *logrus.Logger,
) *AuthService {
	// Дайджест случайной строки. Нужен чтобы при входе с несуществующим email
	// сравнение все равно выполнялось и оба пути отказа занимали сопоставимое время.
	dummyDigest, err := hasher.Hash(uuid.NewString())
	if err != nil {
		logger.WithError(err).Error("failed to precompute dummy digest")
	}

	return &AuthService{
		users:       users,
		hasher:      hasher,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		dummyDigest: dummyDigest,
		logger:      logger.WithField("module", "services/auth"),
	}
}

// CreateAccount регистрирует пользователя: проверяет уникальность email,
// хеширует пароль, сохраняет запись и выпускает токен.
func (s *AuthService) CreateAccount(ctx context.Context, email string, password string) (*AuthResult, error) {
	_, findErr := s.users.GetByEmail(ctx, email)
	if findErr == nil {
		return nil, errors.Wrap(ErrConflict, "user already exists")
	}
	if !errors.Is(findErr, repositories.ErrNotFound) {
		s.logger.WithError(findErr).Error("failed to check email uniqueness")
		return nil, errors.Wrap(ErrInternal, "failed to create user")
	}

	digest, hashErr := s.hasher.Hash(password)
	if hashErr != nil {
		s.logger.WithError(hashErr).Error("failed to hash password")
		return nil, errors.Wrap(ErrInternal, "failed to create user")
	}

	created, createErr := s.users.Create(ctx, &models.User{
		Email:          email,
		PasswordDigest: digest,
	})
	if createErr != nil {
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			return nil, errors.Wrap(ErrConflict, "user already exists")
		}
		s.logger.WithError(createErr).Error("failed to create user")
		return nil, errors.Wrap(ErrInternal, "failed to create user")
	}
	// Защитная ветка: хранилище обязано вернуть созданную запись либо ошибку.
	if created == nil {
		return nil, errors.Wrap(ErrUnauthorized, "user not found after create")
	}

	token, tokenErr := tokens.GenerateAccessJWT(created.ID, created.Email, s.tokenTTL, s.jwtSecret)
	if tokenErr != nil {
		s.logger.WithError(tokenErr).Error("failed to issue token")
		return nil, errors.Wrap(ErrInternal, "failed to create user")
	}

	s.logger.Infof("user %s created", created.Email)

	return &AuthResult{
		ID:    created.ID,
		Email: created.Email,
		Token: token,
	}, nil
}

// Login проверяет учетные данные и выпускает токен. Все внутренние сбои
// схлопываются в один и тот же ответ, чтобы наружу не утекало состояние
// (существует email или нет, упало хранилище или подпись).
func (s *AuthService) Login(ctx context.Context, email string, password string) (*AuthResult, error) {
	user, findErr := s.users.GetByEmail(ctx, email)
	if findErr != nil {
		// сравнение выполняем в любом случае
		s.hasher.Compare(s.dummyDigest, password)

		if !errors.Is(findErr, repositories.ErrNotFound) {
			s.logger.WithError(findErr).Error("login lookup failed")
		}
		return nil, invalidCredentials()
	}

	if !s.hasher.Compare(user.PasswordDigest, password) {
		return nil, invalidCredentials()
	}

	token, tokenErr := tokens.GenerateAccessJWT(user.ID, user.Email, s.tokenTTL, s.jwtSecret)
	if tokenErr != nil {
		s.logger.WithError(tokenErr).Error("failed to issue token")
		return nil, invalidCredentials()
	}

	s.logger.Infof("user %s logged in", user.Email)

	return &AuthResult{
		ID:    user.ID,
		Email: user.Email,
		Token: token,
	}, nil
}

func invalidCredentials() error {
	return errors.Wrap(ErrUnauthorized, "invalid credentials")
}
