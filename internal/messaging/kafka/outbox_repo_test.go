package kafka_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 15*time.Second, kafka.RetryDelay(0))
	assert.Equal(t, 45*time.Second, kafka.RetryDelay(2))
	assert.Equal(t, 150*time.Second, kafka.RetryDelay(30))
}

func TestValidateOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("rid", "company", "c1", events.EventTypeCompanyRegistered,
		events.CompanyLifecycleTopic, events.CompanyRegisteredEvent{CompanyID: "c1"})
	assert.NoError(t, err)
	assert.NoError(t, kafka.ValidateOutboxEvent(event))

	noTopic := event
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	badStatus := event
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	db := testdb.New(t, &kafka.OutboxEvent{})
	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	first, err := kafka.NewOutboxEvent("r1", "company", "c1", events.EventTypeCompanyRegistered,
		events.CompanyLifecycleTopic, map[string]string{"company_id": "c1"})
	assert.NoError(t, err)
	second, err := kafka.NewOutboxEvent("r2", "company", "c2", events.EventTypeCompanyRegistered,
		events.CompanyLifecycleTopic, map[string]string{"company_id": "c2"})
	assert.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, first))
	assert.NoError(t, repo.Create(ctx, second))

	pending, err := repo.ListPending(ctx, 10, now)
	assert.NoError(t, err)
	assert.Len(t, pending, 2)

	assert.NoError(t, repo.MarkSent(ctx, first.ID, now))
	assert.NoError(t, repo.MarkFailed(ctx, pending[1], strings.Repeat("x", 600), now))

	pending, err = repo.ListPending(ctx, 10, now)
	assert.NoError(t, err)
	assert.Empty(t, pending, "failed event waits for its back-off")

	pending, err = repo.ListPending(ctx, 10, now.Add(kafka.RetryDelay(0)))
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, 1, pending[0].RetryCount)
	assert.Equal(t, kafka.OutboxStatusFailed, pending[0].Status)
	assert.Len(t, *pending[0].ErrorMessage, 500)
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db := testdb.New(t, &kafka.OutboxEvent{})
	repo := kafka.NewOutboxRepository(db)

	err := repo.Create(context.Background(), kafka.OutboxEvent{ID: "x", Topic: "t"})
	assert.Error(t, err)
}
