package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/brmartin/shortly/internal/config"
	"github.com/brmartin/shortly/internal/controllers"
	"github.com/brmartin/shortly/internal/db"
	"github.com/brmartin/shortly/internal/services"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(conf config.Config) (*App, error) {
	logger := conf.Logger
	if logger == nil {
		logger = logrus.New()
	}

	dbServices, servicesErr := initServices(conf, logger)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbServices: dbServices,
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и ждет сигнала остановки.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	server := controllers.SetupRouter(controllers.RouterParams{
		AuthService: a.dbServices.AuthService,
		URLService:  a.dbServices.URLService,
		AppConf:     a.config,
		Logger:      a.Logger,
	})

	go func() {
		if err := server.Run(a.config.ServerAddress); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}

	return serverErr
}

// initServices создает подключение к хранилищу и возвращает сервисный слой приложения.
func initServices(appConf config.Config, logger *logrus.Logger) (*services.Services, error) {
	dbConn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  whatIsDBStorageType(&appConf),
		PostgresDSN:  &appConf.DatabaseDSN,
		SQLiteDBPath: &appConf.SQLiteDBPath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(services.FactoryParams{
		Conn:      dbConn,
		Type:      whatIsServiceType(&appConf),
		JWTSecret: []byte(appConf.JWTSecret),
		TokenTTL:  appConf.TokenTTL,
		Logger:    logger,
	})
	if dbServErr != nil {
		return nil, dbServErr //nolint:wrapcheck
	}
	return dbServices, nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	if appConf.DatabaseDSN != "" {
		return db.StorageTypePostgres
	}
	if appConf.DBType == config.DBTypeInMemory {
		return db.StorageTypeInMemory
	}
	return db.StorageTypeSQLite
}

func whatIsServiceType(appConf *config.Config) services.ServiceType {
	if appConf.DatabaseDSN == "" && appConf.DBType == config.DBTypeInMemory {
		return services.ServiceTypeInMemory
	}
	return services.ServiceTypeSQL
}
