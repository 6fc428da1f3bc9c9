package connection_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/config"
	"go-hrm/internal/shared/connection"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPostgresDSN(t *testing.T) {
	dsn := connection.PostgresDSN(config.DBConfig{
		Host: "db", User: "hrm", Password: "secret", Name: "hrm", Port: "5432", SSLMode: "disable",
	})
	assert.Equal(t, "host=db user=hrm password=secret dbname=hrm port=5432 sslmode=disable TimeZone=UTC", dsn)
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("SucceedsAfterFailures", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		calls := 0
		err := connection.Retry(ctx, "postgres", 3, time.Millisecond, zap.New(core), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("refused")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 2, logs.FilterMessage("postgres connect failed").Len())
	})

	t.Run("GivesUp", func(t *testing.T) {
		refused := errors.New("refused")
		calls := 0
		err := connection.Retry(ctx, "redis", 2, time.Millisecond, zap.NewNop(), func(context.Context) error {
			calls++
			return refused
		})
		assert.ErrorIs(t, err, refused)
		assert.ErrorContains(t, err, "after 2 retries")
		assert.Equal(t, 2, calls)
	})

	t.Run("StopsOnCancel", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := connection.Retry(cctx, "kafka", 5, time.Hour, zap.NewNop(), func(context.Context) error {
			return errors.New("refused")
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnectRedisWithRetry(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := connection.ConnectRedisWithRetry(context.Background(), mr.Addr(), 1, zap.NewNop())
	assert.NoError(t, err)
	defer rdb.Close()
	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
}
