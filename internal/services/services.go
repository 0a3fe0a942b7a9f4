package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/brmartin/shortly/internal/db"
	"github.com/brmartin/shortly/internal/hashing"
	"github.com/brmartin/shortly/internal/repositories/memstore"
	"github.com/brmartin/shortly/internal/repositories/sql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQL      ServiceType = "sql"
	ServiceTypeInMemory ServiceType = "inMemory"
)

// Services сервисный слой приложения.
type Services struct {
	AuthService *AuthService
	URLService  *URLService
}

// FactoryParams входные данные фабрики сервисов.
type FactoryParams struct {
	Conn      any
	Type      ServiceType
	JWTSecret []byte
	TokenTTL  time.Duration
	Logger    *logrus.Logger
}

func Factory(p FactoryParams) (*Services, error) {
	switch p.Type {
	case ServiceTypeSQL:
		gormDB, ok := p.Conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return buildServices(sql.NewUserRepo(gormDB, p.Logger), sql.NewURLRepo(gormDB, p.Logger), p), nil
	case ServiceTypeInMemory:
		store, ok := p.Conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return buildServices(memstore.NewUserRepo(store), memstore.NewURLRepo(store), p), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", p.Type)
	}
}

func buildServices(users UserRepository, urls URLRepository, p FactoryParams) *Services {
	hasher := hashing.NewBcryptHasher()
	return &Services{
		AuthService: NewAuthService(users, hasher, p.JWTSecret, p.TokenTTL, p.Logger),
		URLService:  NewURLService(urls, p.Logger),
	}
}
