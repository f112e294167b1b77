package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-manpower/internal/messaging/kafka"
	kafkaMock "go-manpower/internal/messaging/kafka/mock"
	"go-manpower/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeWriter struct {
	failKey string
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failKey {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestRelayBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and records each outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failKey: "sched-2"}

		repo.EXPECT().ClaimPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "sched-1", EventType: "schedule.visibility_changed", Topic: "hr.schedule.visibility.v1", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "sched-2", EventType: "schedule.visibility_changed", Topic: "hr.schedule.visibility.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "o-2", "broker unavailable").Return(nil)

		claimed, err := producer.RelayBatch(ctx, repo, writer, zap.NewNop(), 50)

		assert.NoError(t, err)
		assert.Equal(t, 2, claimed)
		if assert.Len(t, writer.written, 1) {
			msg := writer.written[0]
			assert.Equal(t, "hr.schedule.visibility.v1", msg.Topic)
			assert.Equal(t, "outbox_id", msg.Headers[0].Key)
			assert.Equal(t, "o-1", string(msg.Headers[0].Value))
		}
	})

	t.Run("last attempt is logged as dead-lettered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		core, logs := observer.New(zap.WarnLevel)

		repo.EXPECT().ClaimPending(ctx, 10).Return([]kafka.OutboxEvent{
			{ID: "o-9", AggregateID: "down", Topic: "t", Payload: []byte(`{}`), RetryCount: kafka.MaxOutboxAttempts - 1},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o-9", "broker unavailable").Return(nil)

		_, err := producer.RelayBatch(ctx, repo, &fakeWriter{failKey: "down"}, zap.New(core), 10)

		assert.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("outbox event dead-lettered").Len())
	})

	t.Run("claim error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.RelayBatch(ctx, repo, &fakeWriter{}, zap.NewNop(), 50)

		assert.Error(t, err)
	})
}

func TestPurgeSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	core, logs := observer.New(zap.InfoLevel)

	repo.EXPECT().PurgeSent(gomock.Any(), cutoff).Return(int64(12), nil)

	producer.PurgeSent(context.Background(), repo, zap.New(core), cutoff)

	assert.Equal(t, 1, logs.FilterMessage("purged sent outbox rows").Len())
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ClaimPending(gomock.Any(), 5).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		producer.ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), producer.RelayOptions{
			PollInterval: 5 * time.Millisecond,
			BatchSize:    5,
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}
