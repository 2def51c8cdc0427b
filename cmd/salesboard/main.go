package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/salesboard/internal/pkg/config"
	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/internal/pkg/health"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/middleware"
	"github.com/piresc/salesboard/internal/pkg/models"
	nrpkg "github.com/piresc/salesboard/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/salesboard/internal/pkg/nsq"
	"github.com/piresc/salesboard/internal/pkg/server"
	"github.com/piresc/salesboard/services/transactions"
	"github.com/piresc/salesboard/services/transactions/gateway"
	gateway_nsq "github.com/piresc/salesboard/services/transactions/gateway/nsq"
	"github.com/piresc/salesboard/services/transactions/handler"
	httpHandler "github.com/piresc/salesboard/services/transactions/handler/http"
	"github.com/piresc/salesboard/services/transactions/repository"
	"github.com/piresc/salesboard/services/transactions/usecase"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config/salesboard.env")
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("db_driver", configs.Database.Driver),
	)

	healthService := health.NewHealthService(zapLogger)
	var shutdownHooks []func(context.Context) error

	// Record store
	txRepo, closeStore, err := newTransactionRepo(configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize record store", logger.Err(err))
	}
	shutdownHooks = append(shutdownHooks, closeStore)
	healthService.AddChecker("database", health.NewPingChecker(txRepo))

	// Seed lock: Redis when configured, otherwise in-process
	var seedLock transactions.SeedLocker = repository.NewLocalSeedLocker()
	if configs.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownHooks = append(shutdownHooks, func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.NewPingChecker(redisClient))
		seedLock = repository.NewRedisSeedLocker(redisClient, time.Duration(configs.Seed.LockTTL)*time.Second)
	}

	// Seeded events: NSQ when configured
	var publisher gateway_nsq.Publisher
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownHooks = append(shutdownHooks, func(context.Context) error {
			producer.Stop()
			return nil
		})
		publisher = producer
	}

	// Initialize Gateway
	txGW := gateway.NewTransactionGW(
		configs.Seed.SourceURL,
		time.Duration(configs.Seed.FetchTimeout)*time.Second,
		publisher,
		configs.NSQ.Topic,
	)

	// Initialize UseCase
	txUC := usecase.NewTransactionUC(txRepo, seedLock, txGW, configs)

	// Initialize handlers
	transactionHandler := httpHandler.NewTransactionHandler(txUC)
	Handler := handler.NewHandler(transactionHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.Server.CORSOrigins,
	}))

	// Register health endpoints
	e.GET("/ping", health.NewPingHandler(appName, configs.App.Version))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	Handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	for _, hook := range shutdownHooks {
		srv.OnShutdown(hook)
	}
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}
}

// newTransactionRepo connects the record store selected by DB_DRIVER
func newTransactionRepo(configs *models.Config) (transactions.TransactionRepo, func(context.Context) error, error) {
	switch configs.Database.Driver {
	case "postgres":
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresTransactionRepo(postgresClient)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			postgresClient.Close()
			return nil, nil, err
		}
		return repo, func(context.Context) error { return postgresClient.Close() }, nil

	case "mongodb", "":
		mongoClient, err := database.NewMongoClient(configs.Database)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewMongoTransactionRepo(mongoClient, configs.Database.Collection)
		return repo, mongoClient.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", configs.Database.Driver)
	}
}
