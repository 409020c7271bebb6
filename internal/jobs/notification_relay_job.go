package jobs

import (
	"context"
	"errors"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRelayJob drains the queued status notifications and hands them
// to the push dispatcher. Runs every second so customers see status changes
// near real time.
type NotificationRelayJob struct {
	handler commands.RelayNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates a new job for relaying queued notifications.
// Uses RelayNotificationsCommandHandler to deliver pending messages every second.
func NewNotificationRelayJob(handler commands.RelayNotificationsCommandHandler, logger *slog.Logger) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins the notification relay job to run every second.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRelayNotificationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is the normal idle state, not a failure
			if !errors.Is(err, commands.ErrNoNotificationsFound) {
				j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every second)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
