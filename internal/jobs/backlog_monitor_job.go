package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogMonitorJob watches the kitchen backlog. Runs every minute and logs a
// warning for each order that has stayed in the received state longer than the
// configured threshold, so staff notice orders the kitchen forgot to release.
type BacklogMonitorJob struct {
	handler   queries.GetReceivedBacklogQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewBacklogMonitorJob creates a job that reports orders stuck in the kitchen
// for longer than threshold.
func NewBacklogMonitorJob(
	handler queries.GetReceivedBacklogQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *BacklogMonitorJob {
	return &BacklogMonitorJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "backlog_monitor_job"),
	}
}

// Start begins the backlog monitor job to run every minute.
func (j *BacklogMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Backlog monitor job started (running every minute)", "threshold", j.threshold)
	return nil
}

// Stop stops the backlog monitor job.
func (j *BacklogMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog monitor job stopped")
}

func (j *BacklogMonitorJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetReceivedBacklogQuery(time.Now().Add(-j.threshold))
	if err != nil {
		j.logger.ErrorContext(ctx, "Backlog monitor job failed to build query", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Backlog monitor job failed", "error", err)
		return
	}

	for _, view := range stale {
		j.logger.WarnContext(ctx, "Order stuck in kitchen beyond threshold",
			"orderId", view.ID.String(),
			"confirmationNumber", view.ConfirmationNumber,
			"customerName", view.CustomerName,
			"waitingFor", time.Since(view.CreatedAt).Round(time.Second).String(),
		)
	}
}
