package jobs

import (
	"context"

	"github.com/condoboard/core/pkg/services"
)

// MonthlyBillingJob generates the condominium payments for the current month
type MonthlyBillingJob struct {
	billing *services.BillingService
}

func NewMonthlyBillingJob(billing *services.BillingService) Job {
	return &MonthlyBillingJob{billing: billing}
}

func (j *MonthlyBillingJob) Execute(ctx context.Context) error {
	return j.billing.GenerateMonthlyCharges(ctx)
}

func (j *MonthlyBillingJob) Name() string {
	return "monthly_billing"
}

func (j *MonthlyBillingJob) Schedule() string {
	// First day of the month at 01:00; due date is the 10th
	return "0 1 1 * *"
}
