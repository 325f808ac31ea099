package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shenikar/cad_state_system/internal/cadapi"
	"github.com/shenikar/cad_state_system/internal/config"
	v1 "github.com/shenikar/cad_state_system/internal/handler/http/v1"
	"github.com/shenikar/cad_state_system/internal/notification"
	"github.com/shenikar/cad_state_system/internal/repository"
	"github.com/shenikar/cad_state_system/internal/service"
	"github.com/shenikar/cad_state_system/internal/stream"
	"github.com/shenikar/cad_state_system/internal/syncer"
	"github.com/shenikar/cad_state_system/internal/webhook"
	"github.com/shenikar/cad_state_system/pkg/logger"
	"github.com/shenikar/cad_state_system/pkg/postgres"
	redisclient "github.com/shenikar/cad_state_system/pkg/redis"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background sync workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply database migrations on start")
}

func runServer() error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.ServiceName)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if !skipMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, 0, log); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Поток событий для WebSocket клиентов
	hub := stream.NewHub(log)
	go hub.Run(ctx)

	// События уходят и в очередь вебхуков, и подписчикам WebSocket
	publisher := webhook.NewMultiPublisher(webhook.NewRedisWebhookPublisher(redisClient), hub)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	sessionRepo := repository.NewSessionRepository(dbpool)
	manifestRepo := repository.NewManifestRepository(dbpool)
	detailsCache := repository.NewDetailsCache(redisClient, cfg.DetailsCacheTTL)
	scheduler := notification.NewRedisScheduler(redisClient)

	// Инициализация сервисов
	cadClient := cadapi.NewClient(cfg, log)
	stateManager := service.NewStateManager(cadClient, sessionRepo, manifestRepo, detailsCache, publisher, scheduler, log, cfg)

	// Первичная синхронизация. Без CAD сервис все равно поднимается и
	// досинхронизируется воркером.
	if err := stateManager.SyncInitial(ctx); err != nil {
		log.WithError(err).Warn("Initial sync failed")
	}

	syncer.NewWorker(stateManager, log, cfg.SyncInterval).Start(ctx)
	notification.NewDispatcher(scheduler, publisher, log, cfg.NotificationPollInterval).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(stateManager, hub, log, cfg)

	// Настройка Gin роутера
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := v1.NewRouter(handler, cfg, log)

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		log.WithError(err).Error("HTTP server failed")
		cancel()
		return fmt.Errorf("error starting HTTP server: %w", err)
	}

	// Останавливаем воркеры и хаб до остановки сервера
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}
