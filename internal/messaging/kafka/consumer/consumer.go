package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-hrm/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrMalformedEvent marks a message that will never decode. It is committed
// and skipped.
var ErrMalformedEvent = errors.New("malformed event")

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// DepartmentProvisioner creates the default departments of a company. It
// must be idempotent because delivery is at least once.
type DepartmentProvisioner interface {
	ProvisionDefaults(ctx context.Context, companyID uuid.UUID) (int64, error)
}

type CompanyLifecycleHandler struct {
	departments DepartmentProvisioner
	logger      *zap.Logger
}

func NewCompanyLifecycleHandler(departments DepartmentProvisioner, logger *zap.Logger) *CompanyLifecycleHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &CompanyLifecycleHandler{
		departments: departments,
		logger:      logger.Named("kafka.consumer.company_lifecycle"),
	}
}

// Handle processes one message. Unknown event types are ignored.
func (h *CompanyLifecycleHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	var event events.CompanyRegisteredEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return errors.Join(ErrMalformedEvent, err)
	}

	if event.EventType != events.EventTypeCompanyRegistered {
		h.logger.Debug("ignoring event", zap.String("event_type", event.EventType))
		return nil
	}

	companyID, err := uuid.Parse(event.CompanyID)
	if err != nil {
		return errors.Join(ErrMalformedEvent, err)
	}

	created, err := h.departments.ProvisionDefaults(ctx, companyID)
	if err != nil {
		return err
	}

	h.logger.Info("default departments provisioned",
		zap.String("request_id", event.RequestID),
		zap.String("company_id", event.CompanyID),
		zap.Int64("created", created),
	)
	return nil
}

// Consume runs the fetch/handle/commit loop until ctx is cancelled. A message
// whose handling fails for a transient reason is left uncommitted.
func (h *CompanyLifecycleHandler) Consume(ctx context.Context, reader MessageReader) {
	h.logger.Info("company lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				h.logger.Info("company lifecycle consumer stopped")
				return
			}
			h.logger.Error("fetch company lifecycle message failed", zap.Error(err))
			continue
		}

		if err := h.Handle(ctx, msg); err != nil {
			if !errors.Is(err, ErrMalformedEvent) {
				h.logger.Error("handle company lifecycle message failed",
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
			h.logger.Error("decode company lifecycle message failed", zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			h.logger.Error("commit company lifecycle message failed", zap.Error(err))
		}
	}
}
