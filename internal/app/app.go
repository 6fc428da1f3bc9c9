package app

import (
	"context"
	"fmt"

	"go-hrm/internal/config"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp connects the stores, migrates the schema and builds the router.
// cleanup releases the connections.
func BuildApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (router *gin.Engine, cleanup func(), err error) {
	db, err := connection.ConnectGORMWithRetry(ctx, cfg.DB, connectRetries, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("auto migrate: %w", err)
	}

	rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, connectRetries, logger)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	router, err = NewRouter(Infra{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Metrics: metrics.New(),
		Logger:  logger,
	})
	if err != nil {
		rdb.Close()
		sqlDB.Close()
		return nil, nil, err
	}

	return router, func() {
		rdb.Close()
		sqlDB.Close()
	}, nil
}
