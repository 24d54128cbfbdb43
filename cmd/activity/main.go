package main

import (
	"context"
	"log"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/config"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/constants"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/database"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/health"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	natspkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/nats"
	nrpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/newrelic"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/server"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity/handler"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity/handler/scheduler"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity/repository"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	appName := "heartfund-activity"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/activity.env"))

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
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := natsClient.EnsureStreams(initCtx, natspkg.DefaultStreamConfigs()); err != nil {
		zapLogger.Fatal("Failed to initialize JetStream streams", zap.Error(err))
	}

	activityRepo := repository.NewActivityRepository(configs, postgresClient.GetDB(), redisClient)
	activityUC := usecase.NewActivityUC(configs, activityRepo, zapLogger)

	h := handler.NewHandler(activityUC, natsClient)
	if err := h.InitNATSConsumers(initCtx); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	backfill, err := scheduler.NewBackfillScheduler(configs.Activity.BackfillSpec, activityUC, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to schedule activity backfill", zap.Error(err))
	}
	backfill.Start()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient.GetDB()))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient, constants.StreamDonation))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	h.RegisterRoutes(e.Group("/api/v1"))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	srv.OnShutdown(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(5 * time.Second)
		}
		return zapLogger.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(backfill.Stop)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
