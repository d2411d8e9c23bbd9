package jobs

import (
	"context"

	"github.com/condoboard/core/pkg/services"
)

// ContractExpirySweepJob warns staff of contracts nearing expiry
type ContractExpirySweepJob struct {
	alerts *services.ContractAlertService
}

func NewContractExpirySweepJob(alerts *services.ContractAlertService) Job {
	return &ContractExpirySweepJob{alerts: alerts}
}

func (j *ContractExpirySweepJob) Execute(ctx context.Context) error {
	return j.alerts.NotifyExpiring(ctx)
}

func (j *ContractExpirySweepJob) Name() string {
	return "contract_expiry_sweep"
}

func (j *ContractExpirySweepJob) Schedule() string {
	// Weekly on Sunday at 07:00
	return "0 7 * * 0"
}
