package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DistributionCloseSchedule fires at midnight on the first day of every month.
const DistributionCloseSchedule = "0 0 0 1 * *"

type periodCloser interface {
	Handle(ctx context.Context, cmd commands.CloseDistributionPeriodCommand) ([]*distribution.Record, error)
}

// DistributionCloseJob writes the owners' distribution records of the month
// that just ended, and on January 1 of the year that just ended as well.
// Closing is idempotent, so a rerun after a partial failure only fills in
// the missing owners.
type DistributionCloseJob struct {
	handler periodCloser
	clock   kernel.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewDistributionCloseJob(handler periodCloser, clock kernel.Clock, logger *slog.Logger) *DistributionCloseJob {
	return &DistributionCloseJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		logger:  logger.With("component", "distribution_close_job"),
	}
}

// Start schedules the job.
func (j *DistributionCloseJob) Start() error {
	_, err := j.cron.AddFunc(DistributionCloseSchedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Distribution close job started", "schedule", DistributionCloseSchedule)
	return nil
}

// Run closes the periods that ended before now. Every period is attempted;
// the failures are logged and returned joined.
func (j *DistributionCloseJob) Run(ctx context.Context) error {
	now := j.clock().UTC()

	periods := []distribution.Period{distribution.MonthOf(now).Previous()}
	if now.Month() == time.January {
		periods = append(periods, distribution.YearOf(now).Previous())
	}

	var errs []error
	for _, p := range periods {
		cmd, err := commands.NewCloseDistributionPeriodCommand(p.Type, p.Start)
		if err == nil {
			_, err = j.handler.Handle(ctx, cmd)
		}

		if err != nil {
			j.logger.ErrorContext(ctx, "Closing distribution period failed", "period", p.String(), "error", err)
			errs = append(errs, err)
			continue
		}

		j.logger.InfoContext(ctx, "Distribution period closed", "period", p.String(), "type", p.Type)
	}

	return errors.Join(errs...)
}

// Stop stops the scheduler; a running close is allowed to finish.
func (j *DistributionCloseJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Distribution close job stopped")
}
