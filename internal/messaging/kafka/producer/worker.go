package producer

import (
	"context"
	"time"

	"go-manpower/internal/messaging/kafka"

	"go.uber.org/zap"
)

type RelayOptions struct {
	PollInterval time.Duration
	BatchSize    int
	// Retention is how long sent rows are kept before PurgeSent removes them.
	Retention  time.Duration
	PurgeEvery time.Duration
}

func (o RelayOptions) withDefaults() RelayOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 50
	}
	if o.Retention <= 0 {
		o.Retention = 7 * 24 * time.Hour
	}
	if o.PurgeEvery <= 0 {
		o.PurgeEvery = time.Hour
	}
	return o
}

// ProcessOutboxEvents relays committed outbox rows to Kafka until ctx is done.
// Several relays may share one table; ClaimPending keeps their batches disjoint.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	opts RelayOptions,
) {
	opts = opts.withDefaults()
	log := logger.Named("kafka.relay")

	poll := time.NewTicker(opts.PollInterval)
	defer poll.Stop()
	purge := time.NewTicker(opts.PurgeEvery)
	defer purge.Stop()

	log.Info("outbox relay started",
		zap.Duration("poll_interval", opts.PollInterval),
		zap.Int("batch_size", opts.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-poll.C:
			// drain while full batches keep coming
			for {
				claimed, err := RelayBatch(ctx, repo, writer, log, opts.BatchSize)
				if err != nil {
					log.Error("relay outbox batch failed", zap.Error(err))
					break
				}
				if claimed < opts.BatchSize || ctx.Err() != nil {
					break
				}
			}
		case now := <-purge.C:
			PurgeSent(ctx, repo, log, now.Add(-opts.Retention))
		}
	}
}

// RelayBatch claims one batch, publishes it, and records each outcome.
// It returns how many rows were claimed.
func RelayBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	batchSize int,
) (int, error) {
	events, err := repo.ClaimPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("relaying outbox batch", zap.Int("count", len(events)))

	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			attempt := event.RetryCount + 1
			fields = append(fields, zap.Int("attempt", attempt), zap.Error(err))
			if attempt >= kafka.MaxOutboxAttempts {
				logger.Warn("outbox event dead-lettered", fields...)
			} else {
				logger.Error("publish outbox event failed", fields...)
			}
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("record outbox failure", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		// A failed MarkSent leaves the lease to expire, so the event is
		// published again; consumers dedupe on the outbox id header.
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("record outbox delivery", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		logger.Info("outbox event sent", fields...)
	}

	return len(events), nil
}

// PurgeSent deletes delivered rows processed before cutoff.
func PurgeSent(ctx context.Context, repo kafka.OutboxRepository, logger *zap.Logger, cutoff time.Time) {
	n, err := repo.PurgeSent(ctx, cutoff)
	if err != nil {
		logger.Error("purge outbox failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged sent outbox rows", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
}
