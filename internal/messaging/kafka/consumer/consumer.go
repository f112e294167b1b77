package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-manpower/internal/events"
	"go-manpower/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errSkip marks a message that can never be processed; it is committed and dropped.
var errSkip = errors.New("skip message")

// consume runs handle for every message. Messages are committed after a
// successful handle or a skip; transient failures are left uncommitted so the
// group redelivers them. With a non-nil dedupe, messages whose outbox id was
// already handled are committed without calling handle. Dedupe lookups fail
// open.
func consume(ctx context.Context, reader MessageReader, dedupe Deduper, log *zap.Logger, handle func(ctx context.Context, msg kafkago.Message) error) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		id := outboxID(msg)
		if dedupe != nil && id != "" {
			seen, err := dedupe.Seen(ctx, id)
			if err != nil {
				log.Warn("dedupe lookup failed", zap.String("outbox_id", id), zap.Error(err))
			}
			if seen {
				log.Debug("duplicate outbox event", zap.String("outbox_id", id))
				commit(ctx, reader, log, msg)
				continue
			}
		}

		err = handle(ctx, msg)
		if err != nil && !errors.Is(err, errSkip) {
			log.Error("handle message failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err == nil && dedupe != nil && id != "" {
			if markErr := dedupe.Mark(ctx, id); markErr != nil {
				log.Warn("dedupe mark failed", zap.String("outbox_id", id), zap.Error(markErr))
			}
		}
		commit(ctx, reader, log, msg)
	}
}

func commit(ctx context.Context, reader MessageReader, log *zap.Logger, msg kafkago.Message) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
	}
}

// ConsumeScheduleVisibility notifies employees whose schedule was published or hidden.
func ConsumeScheduleVisibility(
	ctx context.Context,
	reader MessageReader,
	dedupe Deduper,
	dispatcher notification.Dispatcher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.schedule_visibility")
	consume(ctx, reader, dedupe, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.ScheduleVisibilityChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode schedule visibility event failed", zap.Error(err))
			return errSkip
		}
		if event.EventType != events.EventScheduleVisibilityChanged {
			return errSkip
		}

		template := notification.TemplateScheduleHidden
		if event.Visibility == "public" {
			template = notification.TemplateSchedulePublished
		}

		if err := dispatcher.Dispatch(ctx, notification.Notification{
			CompanyID:  event.CompanyID,
			EmployeeID: event.EmployeeID,
			Template:   template,
			Data: map[string]string{
				"schedule_id": event.ScheduleID,
				"date":        event.Date,
				"shift":       event.ShiftName,
				"sub_section": event.SubSectionName,
			},
		}); err != nil {
			return err
		}

		log.Info("schedule visibility notification sent",
			zap.String("schedule_id", event.ScheduleID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("visibility", event.Visibility),
		)
		return nil
	})
}

// ConsumeEmployeeLifecycle notifies deactivated employees.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	dedupe Deduper,
	dispatcher notification.Dispatcher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	consume(ctx, reader, dedupe, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed", zap.Error(err))
			return errSkip
		}
		if event.EventType != events.EventEmployeeDeactivated {
			return errSkip
		}

		return dispatcher.Dispatch(ctx, notification.Notification{
			CompanyID:  event.CompanyID,
			EmployeeID: event.EmployeeID,
			Template:   notification.TemplateEmployeeDeactivated,
			Data:       map[string]string{"reason": event.Reason},
		})
	})
}
