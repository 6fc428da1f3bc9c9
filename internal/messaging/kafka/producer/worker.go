package producer

import (
	"context"
	"time"

	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/metrics"

	"go.uber.org/zap"
)

const batchSize = 50

// Relay moves pending outbox rows to Kafka.
type Relay struct {
	repo    kafka.OutboxRepository
	writer  MessageWriter
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, m *metrics.Metrics, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.L()
	}
	return &Relay{
		repo:    repo,
		writer:  writer,
		metrics: m,
		logger:  logger.Named("kafka.producer.worker"),
		now:     time.Now,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	r.logger.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := r.ProcessPending(ctx); err != nil {
				r.logger.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// ProcessPending publishes one batch and returns how many events were sent.
func (r *Relay) ProcessPending(ctx context.Context) (int, error) {
	events, err := r.repo.ListPending(ctx, batchSize, r.now().UTC())
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	r.logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, r.writer, event); err != nil {
			r.logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			r.metrics.OutboxEvent(event.EventType, "failed")
			if err := r.repo.MarkFailed(ctx, event, err.Error(), r.now().UTC()); err != nil {
				r.logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(err))
			}
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID, r.now().UTC()); err != nil {
			r.logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		sent++
		r.metrics.OutboxEvent(event.EventType, "sent")
		r.logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return sent, nil
}
