package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"shipper/internal/core/application/usecases/commands"
	"shipper/internal/core/ports"
	"shipper/internal/pkg/errs"
)

// BoardRefreshJob periodically reloads the order board from the remote
// service, the background analog of pull-to-refresh. The schedule comes from
// configuration; every tick resolves the current session, so a logout simply
// makes the job idle until someone signs in again.
type BoardRefreshJob struct {
	handler  commands.RefreshBoardCommandHandler
	sessions ports.SessionStore
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewBoardRefreshJob creates a refresh job with the given cron schedule
// (with a seconds field, e.g. "*/30 * * * * *").
func NewBoardRefreshJob(
	handler commands.RefreshBoardCommandHandler,
	sessions ports.SessionStore,
	schedule string,
	logger *slog.Logger,
) *BoardRefreshJob {
	return &BoardRefreshJob{
		handler:  handler,
		sessions: sessions,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "board_refresh_job"),
	}
}

// Start begins the periodic refresh. Errors inside a tick are logged and
// never stop the schedule; a missing session is not an error at all.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		sh, err := j.sessions.Load(ctx)
		if err != nil {
			if !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Board refresh job could not read session", "error", err)
			}
			return
		}

		cmd, err := commands.NewRefreshBoardCommand(sh.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Board refresh job failed", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Board refresh job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid board refresh schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the board refresh job.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
