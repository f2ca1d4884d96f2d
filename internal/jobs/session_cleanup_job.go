package jobs

import (
	"context"
	"log/slog"

	"ecommerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob removes expired session tokens from storage.
// Runs once a minute so stale sessions never outlive their expiry by much.
type SessionCleanupJob struct {
	handler commands.PurgeExpiredSessionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionCleanupJob creates a new job for purging expired sessions.
// Uses PurgeExpiredSessionsCommandHandler to delete stale tokens.
func NewSessionCleanupJob(handler commands.PurgeExpiredSessionsCommandHandler, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeExpiredSessionsCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired sessions removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
