package jobs

import (
	"fmt"
	"slices"
)

// Job is a scheduled task the manager can start and stop.
type Job interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  Job
}

// JobManager starts the laundry's background jobs together and stops them in
// reverse order.
type JobManager struct {
	jobs []namedJob
}

func NewJobManager(
	distributionCloseJob *DistributionCloseJob,
	pendingReimbursementJob *PendingReimbursementJob,
) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "distribution close", job: distributionCloseJob},
			{name: "pending reimbursement", job: pendingReimbursementJob},
		},
	}
}

// StartAll starts every job. When one fails to start, the jobs already
// running are stopped before the error is returned.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			stopAll(jm.jobs[:i])
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

// StopAll waits for running executions to finish.
func (jm *JobManager) StopAll() {
	stopAll(jm.jobs)
}

func stopAll(jobs []namedJob) {
	for _, j := range slices.Backward(jobs) {
		j.job.Stop()
	}
}
