package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-manpower/internal/config"
	"go-manpower/internal/messaging/kafka"
	"go-manpower/internal/messaging/kafka/producer"
	"go-manpower/internal/shared/connection"

	"go.uber.org/zap"
)

var relayOptions = producer.RelayOptions{
	PollInterval: 3 * time.Second,
	BatchSize:    50,
	Retention:    7 * 24 * time.Hour,
}

// RunWorker relays committed outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.MaxConnectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.MaxConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		relayOptions,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
