package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"
)

// overdueReminderSchedule fires once a day at 10:00 store time, late enough
// that a morning return beats the reminder.
const overdueReminderSchedule = "0 0 10 * * *"

// OverdueReminderJob texts renters whose rentals have run past the return
// deadline. One message per overdue order per day.
type OverdueReminderJob struct {
	handler  queries.GetOverdueRentalsQueryHandler
	renderer ports.MessageRenderer
	sender   ports.MessageSender
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueReminderJob creates the daily reminder job.
func NewOverdueReminderJob(
	handler queries.GetOverdueRentalsQueryHandler,
	renderer ports.MessageRenderer,
	sender ports.MessageSender,
	logger *slog.Logger,
) *OverdueReminderJob {
	return &OverdueReminderJob{
		handler:  handler,
		renderer: renderer,
		sender:   sender,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_reminder_job"),
	}
}

// Start schedules the job.
func (j *OverdueReminderJob) Start() error {
	_, err := j.cron.AddFunc(overdueReminderSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue reminder job started (running daily)")
	return nil
}

// Stop stops the job.
func (j *OverdueReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue reminder job stopped")
}

func (j *OverdueReminderJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueRentalsQuery(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue reminder query construction failed", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue reminder query failed", "error", err)
		return
	}

	for _, rental := range overdue {
		text, err := j.renderer.Render(ports.MsgOverdueReminder, map[string]any{
			"name":        rental.UserName,
			"target_date": rental.TargetDate.Format("2006-01-02"),
		})
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue reminder render failed",
				"order_id", rental.OrderID, "error", err)
			continue
		}
		if err := j.sender.Send(ctx, rental.Phone, text); err != nil {
			j.logger.ErrorContext(ctx, "Overdue reminder send failed",
				"order_id", rental.OrderID, "error", err)
		}
	}
}
