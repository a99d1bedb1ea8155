package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/api"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/config"
	redisc "github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/redis"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/service"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/storage/postgres"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redisc.Redis
	NotifyQ    *redisc.NotificationQueue
	Sender     *service.NotificationSender // nil when notifications are disabled
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redisc.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notifyQueue := redisc.NewNotificationQueue(redisClient.Client, "notifications:queue")
	hospitalCache := redisc.NewHospitalCache(redisClient)

	dispatchSvc := service.NewDispatchEngine(
		storage.Alerts(), storage.Inventories(), storage.Users(),
		notifyQueue, hospitalCache, logger,
	)
	directorySvc := service.NewDirectory(
		storage.Alerts(), storage.Inventories(), storage.Users(),
		hospitalCache, logger,
	)
	inventorySvc := service.NewInventoryLedger(storage.Inventories(), logger)
	adminSvc := service.NewAdmin(storage.Users(), storage.Inventories(), hospitalCache, logger)

	srv := service.NewService(dispatchSvc, directorySvc, inventorySvc, adminSvc)

	var sender *service.NotificationSender
	if !cfg.Notify.Disabled {
		sender = service.NewNotificationSender(logger, cfg.Notify, notifyQueue)
	}

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		NotifyQ:    notifyQueue,
		Sender:     sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
