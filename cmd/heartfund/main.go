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
	campaignHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns/handler"
	campaignRepository "github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns/repository"
	campaignUsecase "github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns/usecase"
	donationGateway "github.com/DaKaufeeBoii/heartfund-fundraising/services/donations/gateway"
	donationHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/donations/handler"
	donationUsecase "github.com/DaKaufeeBoii/heartfund-fundraising/services/donations/usecase"
	historyHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/history/handler"
	historyRepository "github.com/DaKaufeeBoii/heartfund-fundraising/services/history/repository"
	historyUsecase "github.com/DaKaufeeBoii/heartfund-fundraising/services/history/usecase"
	userHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/users/handler"
	userRepository "github.com/DaKaufeeBoii/heartfund-fundraising/services/users/repository"
	userUsecase "github.com/DaKaufeeBoii/heartfund-fundraising/services/users/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	appName := "heartfund"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/heartfund.env"))

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

	streamCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := natsClient.EnsureStreams(streamCtx, natspkg.DefaultStreamConfigs()); err != nil {
		zapLogger.Fatal("Failed to initialize JetStream streams", zap.Error(err))
	}
	cancel()

	// Repositories
	db := postgresClient.GetDB()
	campaignRepo := campaignRepository.NewCampaignRepository(configs, db)
	historyRepo := historyRepository.NewHistoryRepository(configs, db, redisClient)
	userRepo := userRepository.NewUserRepository(configs, db)

	// Gateways
	paymentGW := donationGateway.NewPaymentGW(configs.Payment, zapLogger)
	eventGW := donationGateway.NewEventGW(natsClient)

	// Use cases
	historyUC := historyUsecase.NewHistoryUC(configs, historyRepo, campaignRepo, zapLogger)
	campaignUC := campaignUsecase.NewCampaignUC(configs, campaignRepo, historyUC, zapLogger)
	donationUC := donationUsecase.NewDonationUC(configs, campaignRepo, historyRepo, paymentGW, eventGW, zapLogger)
	userUC := userUsecase.NewUserUC(configs, userRepo, zapLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(db))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient, constants.StreamDonation))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api/v1")
	userHandler.NewHandler(userUC, configs).RegisterRoutes(api)
	campaignHandler.NewHandler(campaignUC, configs).RegisterRoutes(api)
	donationHandler.NewHandler(donationUC, redisClient.Client, configs).RegisterRoutes(api)
	historyHandler.NewHandler(historyUC, configs).RegisterRoutes(api)

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

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
