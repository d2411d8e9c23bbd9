package jobs

import (
	"context"

	"github.com/condoboard/core/pkg/services"
)

// LowStockSweepJob alerts staff to inventory items below their minimum
type LowStockSweepJob struct {
	alerts *services.StockAlertService
}

func NewLowStockSweepJob(alerts *services.StockAlertService) Job {
	return &LowStockSweepJob{alerts: alerts}
}

func (j *LowStockSweepJob) Execute(ctx context.Context) error {
	return j.alerts.NotifyLowStock(ctx)
}

func (j *LowStockSweepJob) Name() string {
	return "low_stock_sweep"
}

func (j *LowStockSweepJob) Schedule() string {
	// Weekly on Monday at 08:00, so purchasing can react the same day
	return "0 8 * * 1"
}
