package notification

import (
	"context"

	"go.uber.org/zap"
)

const (
	TemplateSchedulePublished   = "schedule_published"
	TemplateScheduleHidden      = "schedule_hidden"
	TemplateEmployeeDeactivated = "employee_deactivated"
)

type Notification struct {
	CompanyID  string
	EmployeeID string
	Template   string
	Data       map[string]string
}

// Dispatcher delivers a notification to an outside channel (WhatsApp, email).
// Delivery is fire-and-forget from the point of view of the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// LogDispatcher records notifications in the log. It is the default channel
// when no messaging provider is configured.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	if logger == nil {
		logger = zap.L()
	}
	return &LogDispatcher{logger: logger.Named("notification")}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, n Notification) error {
	fields := []zap.Field{
		zap.String("company_id", n.CompanyID),
		zap.String("employee_id", n.EmployeeID),
		zap.String("template", n.Template),
	}
	for k, v := range n.Data {
		fields = append(fields, zap.String("data."+k, v))
	}
	d.logger.Info("notification dispatched", fields...)
	return nil
}
