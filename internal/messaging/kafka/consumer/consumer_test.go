package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka/consumer"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeProvisioner struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeProvisioner) ProvisionDefaults(ctx context.Context, companyID uuid.UUID) (int64, error) {
	f.calls = append(f.calls, companyID)
	return 4, f.err
}

// fakeReader serves msgs once, then blocks until ctx is cancelled.
type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func registered(t *testing.T, companyID string, offset int64) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.CompanyRegisteredEvent{
		EventType: events.EventTypeCompanyRegistered,
		CompanyID: companyID,
		Slug:      "acme",
	})
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: body}
}

func TestCompanyLifecycleHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("ProvisionsDepartments", func(t *testing.T) {
		prov := &fakeProvisioner{}
		h := consumer.NewCompanyLifecycleHandler(prov, nil)
		companyID := uuid.New()

		err := h.Handle(ctx, registered(t, companyID.String(), 1))
		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{companyID}, prov.calls)
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		prov := &fakeProvisioner{}
		h := consumer.NewCompanyLifecycleHandler(prov, nil)

		err := h.Handle(ctx, kafkago.Message{Value: []byte("{")})
		assert.ErrorIs(t, err, consumer.ErrMalformedEvent)
		assert.Empty(t, prov.calls)
	})

	t.Run("BadCompanyID", func(t *testing.T) {
		h := consumer.NewCompanyLifecycleHandler(&fakeProvisioner{}, nil)

		err := h.Handle(ctx, registered(t, "nope", 1))
		assert.ErrorIs(t, err, consumer.ErrMalformedEvent)
	})

	t.Run("OtherEventTypeIgnored", func(t *testing.T) {
		prov := &fakeProvisioner{}
		h := consumer.NewCompanyLifecycleHandler(prov, nil)

		err := h.Handle(ctx, kafkago.Message{Value: []byte(`{"event_type":"company.renamed"}`)})
		assert.NoError(t, err)
		assert.Empty(t, prov.calls)
	})
}

func TestCompanyLifecycleHandler_Consume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prov := &fakeProvisioner{}
	h := consumer.NewCompanyLifecycleHandler(prov, nil)
	reader := &fakeReader{
		msgs: []kafkago.Message{
			registered(t, uuid.NewString(), 10),
			{Offset: 11, Value: []byte("garbage")},
		},
		cancel: cancel,
	}

	h.Consume(ctx, reader)

	assert.Len(t, prov.calls, 1)
	assert.Equal(t, []int64{10, 11}, reader.committed)
}

func TestCompanyLifecycleHandler_Consume_TransientFailureNotCommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prov := &fakeProvisioner{err: errors.New("db down")}
	h := consumer.NewCompanyLifecycleHandler(prov, nil)
	reader := &fakeReader{msgs: []kafkago.Message{registered(t, uuid.NewString(), 7)}, cancel: cancel}

	h.Consume(ctx, reader)

	assert.Empty(t, reader.committed)
}
