package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	planUseCase "github.com/Vergil4828/KinoService/internal/domain/usecase/plan"
	subscriptionUseCase "github.com/Vergil4828/KinoService/internal/domain/usecase/subscription"
	"github.com/Vergil4828/KinoService/internal/domain/usecase/txrunner"
	userUseCase "github.com/Vergil4828/KinoService/internal/domain/usecase/user"
	walletUseCase "github.com/Vergil4828/KinoService/internal/domain/usecase/wallet"

	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/handler"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/routes"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/cache"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/database"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/database/migration"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/logger"
	timeProvider "github.com/Vergil4828/KinoService/internal/infrastructure/adapter/time"
	"github.com/Vergil4828/KinoService/internal/infrastructure/config"
	"github.com/Vergil4828/KinoService/internal/infrastructure/scheduler"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		ConnectAttempts: cfg.Database.ConnectAttempts,
		ConnectDelay:    cfg.Database.ConnectDelay,
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewMigrationManager(db, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	appCache := buildCache(cfg, appLogger)

	uow := dbManager.CreateUnitOfWork()
	runner := txrunner.New(uow, tp, appLogger, txrunner.Config{
		MaxAttempts:  cfg.Retry.MaxAttempts,
		BaseBackoff:  cfg.Retry.BaseBackoff,
		MaxBackoff:   cfg.Retry.MaxBackoff,
		JitterFactor: cfg.Retry.JitterFactor,
	})

	walletService := walletUseCase.NewService(runner, appCache, tp, appLogger, walletUseCase.Policy{
		MinDepositInCents: cfg.Wallet.MinDepositCents,
		HistoryLimit:      cfg.Wallet.HistoryLimit,
		SnapshotTTL:       cfg.Wallet.SnapshotTTL,
	})
	subscriptionService := subscriptionUseCase.NewService(runner, appCache, tp, appLogger)
	planService := planUseCase.NewService(runner, appLogger)
	userService := userUseCase.NewService(runner, tp, appLogger)

	if err := planService.SeedDefaultPlans(context.Background()); err != nil {
		appLogger.Error("Failed to seed default plans", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	var reconcileJob *scheduler.ReconcileJob
	if cfg.Scheduler.Enabled {
		reconcileJob = scheduler.NewReconcileJob(subscriptionService, appLogger, cfg.Scheduler.ReconcileInterval)
		reconcileJob.Start()
	}

	userHandler := handler.NewUserHandler(userService, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, appLogger)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, appLogger)
	planHandler := handler.NewPlanHandler(planService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, walletHandler, subscriptionHandler, planHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if reconcileJob != nil {
		reconcileJob.Stop()
	}

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildCache connects to redis when enabled, falling back to a noop cache so
// the wallet and subscription flows keep working without it
func buildCache(cfg *config.Config, appLogger coreport.Logger) coreport.Cache {
	if !cfg.Redis.Enabled {
		appLogger.Info("Redis disabled, using noop cache", nil)
		return cache.NewNoopCache()
	}

	redisCache, err := cache.NewRedisCache(context.Background(), &cache.Config{
		Addr:        cfg.Redis.Addr,
		Username:    cfg.Redis.Username,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		MaxRetries:  cfg.Redis.MaxRetries,
		DialTimeout: cfg.Redis.DialTimeout,
		Timeout:     cfg.Redis.Timeout,
	})
	if err != nil {
		appLogger.Warn("Redis unavailable, using noop cache", map[string]any{"error": err.Error()})
		return cache.NewNoopCache()
	}

	return redisCache
}
