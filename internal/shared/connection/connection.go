package connection

import (
	"context"
	"fmt"
	"time"

	"go-hrm/internal/config"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultRetryWait = 5 * time.Second

// Retry calls fn up to attempts times, sleeping wait between failures. It
// gives up early when ctx is done.
func Retry(ctx context.Context, name string, attempts int, wait time.Duration, logger *zap.Logger, fn func(ctx context.Context) error) error {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		if lastErr = fn(ctx); lastErr == nil {
			logger.Info(name+" connected", zap.Int("attempt", i))
			return nil
		}

		logger.Warn(name+" connect failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(lastErr),
		)
		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("%s connection failed after %d retries: %w", name, attempts, lastErr)
}

func PostgresDSN(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)
}

func ConnectGORMWithRetry(ctx context.Context, cfg config.DBConfig, maxRetries int, logger *zap.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	err := Retry(ctx, "postgres", maxRetries, defaultRetryWait, logger, func(ctx context.Context) error {
		opened, err := gorm.Open(postgres.Open(PostgresDSN(cfg)), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return err
		}

		sqlDB, err := opened.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			sqlDB.Close()
			return err
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		db = opened
		return nil
	})
	return db, err
}

func ConnectRedisWithRetry(ctx context.Context, addr string, maxRetries int, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	err := Retry(ctx, "redis", maxRetries, defaultRetryWait, logger, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// ConnectKafkaWithRetry checks the broker is reachable and returns a writer
// for the outbox relay. Messages carry their own topic.
func ConnectKafkaWithRetry(ctx context.Context, broker string, maxRetries int, logger *zap.Logger) (*kafkago.Writer, error) {
	err := Retry(ctx, "kafka", maxRetries, defaultRetryWait, logger, func(ctx context.Context) error {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			return err
		}
		return conn.Close()
	})
	if err != nil {
		return nil, err
	}

	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}

// NewKafkaReader returns a consumer-group reader. Offsets are committed
// explicitly by the caller.
func NewKafkaReader(broker, topic, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
