package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingReimbursementSchedule fires every day at 08:00.
const PendingReimbursementSchedule = "0 0 8 * * *"

type pendingTotalsReader interface {
	Handle(ctx context.Context, query queries.GetOwnerPendingTotalsQuery) ([]queries.GetOwnerPendingTotalsQueryResponse, error)
}

// PendingReimbursementJob logs a daily reminder of what the business owes
// each owner for personal outlays.
type PendingReimbursementJob struct {
	reader pendingTotalsReader
	cron   *cron.Cron
	logger *slog.Logger
}

func NewPendingReimbursementJob(reader pendingTotalsReader, logger *slog.Logger) *PendingReimbursementJob {
	return &PendingReimbursementJob{
		reader: reader,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "pending_reimbursement_job"),
	}
}

func (j *PendingReimbursementJob) Start() error {
	_, err := j.cron.AddFunc(PendingReimbursementSchedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending reimbursement job started", "schedule", PendingReimbursementSchedule)
	return nil
}

// Run logs one line per owner with something pending.
func (j *PendingReimbursementJob) Run(ctx context.Context) error {
	totals, err := j.reader.Handle(ctx, queries.NewGetOwnerPendingTotalsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Reading pending reimbursements failed", "error", err)
		return err
	}

	for _, t := range totals {
		if t.Count == 0 {
			continue
		}
		j.logger.InfoContext(ctx, "Reimbursement pending",
			"owner", t.Owner, "total", t.Total.String(), "expenses", t.Count)
	}
	return nil
}

func (j *PendingReimbursementJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending reimbursement job stopped")
}
