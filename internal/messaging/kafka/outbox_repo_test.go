package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-manpower/internal/events"
	"go-manpower/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("rid-1", "schedule", "s-1",
		events.EventScheduleVisibilityChanged, events.ScheduleVisibilityTopic,
		events.ScheduleVisibilityChangedEvent{ScheduleID: "s-1", Visibility: "public"})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Contains(t, string(event.Payload), `"visibility":"public"`)
}

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event, err := kafka.NewOutboxEvent("", "employee", "e-1", events.EventEmployeeDeactivated, events.EmployeeLifecycleTopic, map[string]string{"a": "b"})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(ctx, event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.Error(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{}))
	assert.Error(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: "weird"}))
	assert.NoError(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusSent}))
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lease := time.Date(2024, 6, 1, 7, 1, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 20, float64(60)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow("o-1", "rid", "schedule", "s-1", events.EventScheduleVisibilityChanged, events.ScheduleVisibilityTopic, []byte(`{}`), kafka.OutboxStatusFailed, 3, lease))

	got, err := kafka.NewOutboxRepository(db).ClaimPending(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].RetryCount)
	assert.Equal(t, lease, got[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedDeadLetters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("o-1", kafka.OutboxStatusFailed, kafka.OutboxStatusDead, kafka.MaxOutboxAttempts, "broker unavailable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "o-1", "broker unavailable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM outbox_events").
		WithArgs(kafka.OutboxStatusSent, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := kafka.NewOutboxRepository(db).PurgeSent(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
