package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgres создает подключение к PostgreSQL и накатывает миграцию схемы.
//
// Параметры:
//   - dsn: строка подключения к базе данных (Data Source Name)
//
// Возвращает:
//   - *gorm.DB: подключение
//   - error: ошибка подключения или миграции
func NewPostgres(dsn string) (*gorm.DB, error) {
	conn, connErr := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if connErr != nil {
		return nil, fmt.Errorf("connect postgres error: %w", connErr)
	}
	if migrateErr := migrate(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}
