package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-manpower/internal/config"
	"go-manpower/internal/events"
	"go-manpower/internal/messaging/kafka/consumer"
	"go-manpower/internal/notification"
	"go-manpower/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	consumerGroupID = "go-manpower-notifications"
	dedupeTTL       = 24 * time.Hour
)

func newReader(broker, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        consumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer turns schedule and employee events into notifications until
// SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")
	dispatcher := notification.NewLogDispatcher(logger)

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxConnectRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()
	dedupe := consumer.NewRedisDeduper(rdb, dedupeTTL)

	visibilityReader := newReader(cfg.KafkaBroker, events.ScheduleVisibilityTopic)
	defer visibilityReader.Close()
	lifecycleReader := newReader(cfg.KafkaBroker, events.EmployeeLifecycleTopic)
	defer lifecycleReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer.ConsumeScheduleVisibility(gctx, visibilityReader, dedupe, dispatcher, logger)
		return nil
	})
	g.Go(func() error {
		consumer.ConsumeEmployeeLifecycle(gctx, lifecycleReader, dedupe, dispatcher, logger)
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return g.Wait()
}
