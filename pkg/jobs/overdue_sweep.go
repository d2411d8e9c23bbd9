package jobs

import (
	"context"

	"github.com/condoboard/core/pkg/services"
)

// OverdueSweepJob reclassifies payments that missed their due date and
// escalates repeated delinquency
type OverdueSweepJob struct {
	overdue *services.OverdueService
}

func NewOverdueSweepJob(overdue *services.OverdueService) Job {
	return &OverdueSweepJob{overdue: overdue}
}

func (j *OverdueSweepJob) Execute(ctx context.Context) error {
	return j.overdue.Sweep(ctx)
}

func (j *OverdueSweepJob) Name() string {
	return "overdue_sweep"
}

func (j *OverdueSweepJob) Schedule() string {
	// Daily at 05:00, after the banks' overnight settlement files land
	return "0 5 * * *"
}
