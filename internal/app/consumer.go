package app

import (
	"context"

	"go-hrm/internal/config"
	"go-hrm/internal/department"
	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka/consumer"
	"go-hrm/internal/shared/connection"

	"go.uber.org/zap"
)

const departmentProvisionerGroup = "hrm-department-provisioner"

// RunConsumer provisions default departments for newly registered companies
// until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logger = logger.Named("app.consumer")
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

	// The department list cache is dropped after provisioning.
	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, connectRetries, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	departmentService := department.NewService(department.NewRepository(gormDB), rdb, logger)

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.CompanyLifecycleTopic, departmentProvisionerGroup)
	defer reader.Close()

	consumer.NewCompanyLifecycleHandler(departmentService, logger).Consume(ctx, reader)

	logger.Info("consumer shutting down")
	return nil
}
