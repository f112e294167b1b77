package consumer

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

const outboxIDHeader = "outbox_id"

// Deduper remembers which outbox events were already handled. The relay is
// at-least-once, so the same outbox id can arrive twice.
type Deduper interface {
	Seen(ctx context.Context, outboxID string) (bool, error)
	Mark(ctx context.Context, outboxID string) error
}

type RedisDeduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDeduper(rdb *redis.Client, ttl time.Duration) *RedisDeduper {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDeduper{rdb: rdb, ttl: ttl}
}

func dedupeKey(outboxID string) string {
	return "outbox:handled:" + outboxID
}

func (d *RedisDeduper) Seen(ctx context.Context, outboxID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, dedupeKey(outboxID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *RedisDeduper) Mark(ctx context.Context, outboxID string) error {
	return d.rdb.Set(ctx, dedupeKey(outboxID), 1, d.ttl).Err()
}

func outboxID(msg kafkago.Message) string {
	for _, h := range msg.Headers {
		if h.Key == outboxIDHeader {
			return string(h.Value)
		}
	}
	return ""
}
