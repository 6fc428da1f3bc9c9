package app

import (
	"context"
	"time"

	"go-hrm/internal/config"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/producer"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/shared/metrics"

	"go.uber.org/zap"
)

const outboxPollInterval = 3 * time.Second

// RunWorker relays outbox rows to Kafka until ctx is cancelled.
func RunWorker(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logger = logger.Named("app.worker")
	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(ctx, cfg.DB, connectRetries, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(ctx, cfg.KafkaBroker, connectRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	relay := producer.NewRelay(kafka.NewOutboxRepository(gormDB), kafkaWriter, metrics.New(), logger)
	relay.Run(ctx, outboxPollInterval)

	logger.Info("worker shutting down")
	return nil
}
