package jobs

import (
	"context"
	"log/slog"

	"ordercompletion/internal/core/application/usecases/commands"
	"ordercompletion/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CompletionSweepJob periodically runs the completion workflow over every
// submitted order. Orders that became eligible since the last sweep (old
// enough, fully delivered) get notified and finished without an API call.
type CompletionSweepJob struct {
	completeHandler    commands.CompleteOrdersCommandHandler
	uncompletedHandler queries.GetUncompletedOrdersQueryHandler
	schedule           string
	cron               *cron.Cron
	logger             *slog.Logger
}

// NewCompletionSweepJob creates a sweep job with the given cron schedule.
// The schedule uses the six-field form with a seconds column, e.g.
// "0 */5 * * * *" for every five minutes.
func NewCompletionSweepJob(
	completeHandler commands.CompleteOrdersCommandHandler,
	uncompletedHandler queries.GetUncompletedOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *CompletionSweepJob {
	return &CompletionSweepJob{
		completeHandler:    completeHandler,
		uncompletedHandler: uncompletedHandler,
		schedule:           schedule,
		cron:               cron.New(cron.WithSeconds()),
		logger:             logger.With("component", "completion_sweep_job"),
	}
}

// Start begins the periodic sweep.
func (j *CompletionSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Completion sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *CompletionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Completion sweep job stopped")
}

// sweep runs one pass: list submitted orders, then run the completion
// workflow over their ids. An empty candidate set is a normal outcome.
func (j *CompletionSweepJob) sweep() {
	ctx := context.Background()

	candidates, err := j.uncompletedHandler.Handle(ctx, queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Completion sweep failed to list submitted orders", "error", err)
		return
	}

	if len(candidates) == 0 {
		return
	}

	ids := make([]int64, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.ID)
	}

	cmd, err := commands.NewCompleteOrdersCommand(ids)
	if err != nil {
		j.logger.ErrorContext(ctx, "Completion sweep built an invalid command", "error", err)
		return
	}

	result, err := j.completeHandler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Completion sweep failed", "error", err)
		return
	}

	if len(result.SuccessfullyNotified) > 0 {
		j.logger.InfoContext(ctx, "Completion sweep finished orders",
			"candidates", len(ids),
			"completed", len(result.SuccessfullyNotified),
			"failed_to_update", len(result.FailedToUpdate),
		)
	}
}
