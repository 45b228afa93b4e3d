package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/tourist_safety/internal/anomaly"
	"github.com/shenikar/tourist_safety/internal/config"
	v1 "github.com/shenikar/tourist_safety/internal/handler/http/v1"
	"github.com/shenikar/tourist_safety/internal/metrics"
	"github.com/shenikar/tourist_safety/internal/notify"
	"github.com/shenikar/tourist_safety/internal/realtime"
	"github.com/shenikar/tourist_safety/internal/repository"
	"github.com/shenikar/tourist_safety/internal/scoring"
	"github.com/shenikar/tourist_safety/internal/service"
	"github.com/shenikar/tourist_safety/internal/webhook"
	"github.com/shenikar/tourist_safety/pkg/logger"
	natsconn "github.com/shenikar/tourist_safety/pkg/nats"
	"github.com/shenikar/tourist_safety/pkg/postgres"
	redisclient "github.com/shenikar/tourist_safety/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/tourist_safety/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New("file://migrations", migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newBroker выбирает транспорт рассылки тревог. cleanup закрывает то, что открыто здесь.
func newBroker(cfg *config.Config, redisClient *goredis.Client, log *logrus.Logger) (notify.Broker, func(), error) {
	switch cfg.Broker {
	case config.BrokerRedis:
		return notify.NewRedisBroker(redisClient), func() {}, nil
	case config.BrokerNATS:
		nc, err := natsconn.NewNATSConn(cfg.NATSURL, log)
		if err != nil {
			return nil, nil, err
		}
		return notify.NewNATSBroker(nc), nc.Close, nil
	case config.BrokerMemory:
		return notify.NewMemoryBroker(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown broker %q", cfg.Broker)
}

// @title Tourist Safety API
// @version 1.0
// @description Safety scoring, geofence risk zones and alert lifecycle for tourists.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Service stopped with error")
	}
}

// run собирает зависимости и работает до сигнала остановки.
// Отложенные закрытия выполняются до выхода из процесса.
func run() error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст живет до сигнала остановки
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
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

	// Брокер рассылки тревог
	broker, closeBroker, err := newBroker(cfg, redisClient, log)
	if err != nil {
		return fmt.Errorf("failed to create alert broker: %w", err)
	}
	defer closeBroker()
	defer broker.Close()
	log.WithField("broker", cfg.Broker).Info("Alert broker ready")

	// Детектор аномалий
	detector, err := anomaly.NewDetector(anomaly.Config{
		Trees:         cfg.AnomalyTrees,
		MaxSamples:    anomaly.DefaultConfig().MaxSamples,
		Contamination: cfg.AnomalyContamination,
		Seed:          cfg.AnomalySeed,
	}, cfg.DetectorCacheTTL)
	if err != nil {
		return fmt.Errorf("failed to create anomaly detector: %w", err)
	}
	metrics.RegisterDetectorCache(prometheus.DefaultRegisterer, detector.CachedModels)

	// Инициализация репозиториев
	trajectoryRepo := repository.NewTrajectoryRepository(dbpool)
	zoneRepo := repository.NewGeoZoneRepository(dbpool, redisClient)
	alertRepo := repository.NewAlertRepository(dbpool)
	touristRepo := repository.NewTouristRepository(dbpool)

	// Инициализация сервисов
	evaluator := scoring.NewEvaluator(trajectoryRepo, zoneRepo, detector, log)
	alertEngine := service.NewAlertEngine(alertRepo, touristRepo, notify.NewAlertPublisher(broker), log)
	safetyService := service.NewSafetyService(
		trajectoryRepo, zoneRepo, alertRepo, touristRepo, evaluator, alertEngine,
		service.SafetyOptions{
			AlertThreshold:      cfg.AlertScoreThreshold,
			DashboardWindowDays: cfg.DashboardWindowDays,
		},
		log,
	)

	if err := safetyService.SeedDefaultZones(ctx); err != nil {
		return fmt.Errorf("failed to seed default geo zones: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// WebSocket хаб получает тревоги через собственную подписку
	hub := realtime.NewHub(cfg.WSAllowedOrigins, log)
	hubMessages, err := broker.Subscribe(gctx, notify.AlertsTopic)
	if err != nil {
		return fmt.Errorf("failed to subscribe hub to alerts: %w", err)
	}
	g.Go(func() error { return hub.Run(gctx, hubMessages) })

	// Вебхук подключается, только если задан URL
	if cfg.WebhookURL != "" {
		webhookMessages, err := broker.Subscribe(gctx, notify.AlertsTopic)
		if err != nil {
			return fmt.Errorf("failed to subscribe webhook to alerts: %w", err)
		}
		dispatcher := webhook.NewDispatcher(webhook.NewSender(cfg.WebhookURL, cfg.WebhookSecret, cfg.WebhookTimeout), log)
		g.Go(func() error { return dispatcher.Run(gctx, webhookMessages) })
	} else {
		log.Warn("Webhook URL is not configured. Webhook delivery disabled.")
	}

	if len(cfg.APIKeys) == 0 {
		log.Warn("API_KEYS is empty. All protected routes will reject requests.")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(safetyService, alertEngine, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server gracefully stopped")
	return nil
}
