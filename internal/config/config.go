package config

import (
	"flag"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type DBType string

const (
	DBTypeSQLite   DBType = "sqlite"
	DBTypePostgres DBType = "postgres"
	DBTypeInMemory DBType = "inMemory"
)

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL
	BaseURL *url.URL `env:"BASE_URL"`
	// DSN PostgreSQL. Если задан, хранилище postgres
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь до файла sqlite
	SQLiteDBPath string `env:"SQLITE_DB_PATH" envDefault:"shortly.db"`
	// Ключ подписи токенов. Обязателен
	JWTSecret string `env:"JWT_SECRET"`
	// Срок действия выпускаемых токенов
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	// Тип хранилища
	DBType DBType `env:"DB" envDefault:"sqlite"` // через флаги не настраиваю, незачем
	Logger *logrus.Logger
}

func LoadConfig() (*Config, error) {
	// .env не обязателен, полагаемся на переменные окружения
	_ = godotenv.Load()

	var flagsConfig, envConfig Config
	logger := initLogger()

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	loadsFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	conf.Logger = logger
	return conf, nil
}

// MustLoadConfig вызывает панику если произошла ошибка.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// loadsFlags парсит флаги командной строки.
func loadsFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "DSN PostgreSQL")

	bDesc := "Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запущенного сервера)"
	flag.Func("b", bDesc, func(rawURL string) error {
		parsedURL, err := url.ParseRequestURI(rawURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}

		// создаем новый инстанс, отсекая тем самым Path и Query если они заданы в базовом урле.
		flagsConfig.BaseURL = &url.URL{
			Scheme: parsedURL.Scheme,
			Host:   parsedURL.Host,
		}
		return nil
	})

	flag.Parse()
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress: defaultIfBlank[string](envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:       defaultIfBlank[*url.URL](envConfig.BaseURL, flagsConfig.BaseURL),
		DatabaseDSN:   defaultIfBlank[string](envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLiteDBPath:  envConfig.SQLiteDBPath,
		JWTSecret:     envConfig.JWTSecret,
		TokenTTL:      envConfig.TokenTTL,
		DBType:        defaultIfBlank[DBType](envConfig.DBType, flagsConfig.DBType),
	}
}

func defaultIfBlank[T any](value T, defaultValue T) T {
	if v, ok := any(value).(string); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(DBType); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(*url.URL); ok && v == nil {
		return defaultValue
	}
	return value
}
