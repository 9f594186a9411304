package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/uctoportal/backend/internal/adapter/http"
	"github.com/uctoportal/backend/internal/adapter/http/handler"
	"github.com/uctoportal/backend/internal/adapter/legacy"
	postgresRepo "github.com/uctoportal/backend/internal/adapter/repository/postgres"
	redisRepo "github.com/uctoportal/backend/internal/adapter/repository/redis"
	"github.com/uctoportal/backend/internal/infrastructure/config"
	"github.com/uctoportal/backend/internal/infrastructure/logger"
	"github.com/uctoportal/backend/internal/infrastructure/metrics"
	"github.com/uctoportal/backend/internal/infrastructure/postgres"
	"github.com/uctoportal/backend/internal/infrastructure/redis"
	"github.com/uctoportal/backend/internal/infrastructure/syncworker"
	"github.com/uctoportal/backend/internal/usecase"
)

func main() {
	// .env is a local-dev convenience, absence is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	txManager := postgresRepo.NewTxManager(pool)
	companyRepo := postgresRepo.NewCompanyRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	postingRepo := postgresRepo.NewPostingRepository(pool)
	importRunRepo := postgresRepo.NewImportRunRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()

	cache := redisRepo.NewCache(redisClient)
	exportReader := legacy.NewReader(cfg.LegacyExportDir, appLogger)
	retrier := legacy.NewRetrier(appLogger)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	accountUC := usecase.NewAccountUseCase(companyRepo, accountRepo)
	statementUC := usecase.NewStatementUseCase(
		companyRepo, accountRepo, postingRepo,
		cache, cfg.StatementCacheTTL, appLogger, appMetrics,
	)
	importUC := usecase.NewImportUseCase(
		txManager, companyRepo, accountRepo, postingRepo, importRunRepo,
		exportReader, retrier, cache, idGen, appLogger, appMetrics,
	)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CompanyHandler:   handler.NewCompanyHandler(companyUC),
		AccountHandler:   handler.NewAccountHandler(accountUC),
		StatementHandler: handler.NewStatementHandler(statementUC),
		ImportHandler:    handler.NewImportHandler(importUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		Logger:           appLogger,
	})

	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()

	if cfg.SyncInterval > 0 {
		worker := syncworker.New(syncworker.Config{
			Companies: companyUC,
			Importer:  importUC,
			Interval:  cfg.SyncInterval,
			Logger:    appLogger,
		})

		go func() {
			if err := worker.Start(workerCtx); err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("export sync worker stopped")
			}
		}()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
