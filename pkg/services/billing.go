package services

import (
	"context"
	"fmt"
	"time"

	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/models"
)

// Day of month every generated condominium charge falls due
const billingDueDay = 10

// BillingService ensures every unit with a configured base fee has exactly
// one condominium payment for the current reference month.
type BillingService struct {
	condominiums CondominiumStore
	units        UnitStore
	payments     PaymentStore
	now          func() time.Time
}

func NewBillingService(condominiums CondominiumStore, units UnitStore, payments PaymentStore) *BillingService {
	return &BillingService{
		condominiums: condominiums,
		units:        units,
		payments:     payments,
		now:          time.Now,
	}
}

// GenerateMonthlyCharges creates the pending condominium payments for the
// current month. The existence pre-check plus the conflict-safe insert make a
// repeated run in the same month a no-op.
func (s *BillingService) GenerateMonthlyCharges(ctx context.Context) error {
	log := logger.WithContext(ctx, "monthly-billing")

	now := s.now()
	month := int(now.Month())
	year := now.Year()
	dueDate := time.Date(year, now.Month(), billingDueDay, 0, 0, 0, 0, now.Location())

	condos, err := s.condominiums.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active condominiums: %w", err)
	}

	created := 0
	skipped := 0
	for _, condo := range condos {
		units, err := s.units.ListActiveByCondominium(ctx, condo.ID)
		if err != nil {
			return fmt.Errorf("failed to list units of condominium %d: %w", condo.ID, err)
		}

		for _, unit := range units {
			// Units without a configured base fee are not billed
			if unit.BaseFee == nil {
				skipped++
				continue
			}

			exists, err := s.payments.ExistsForUnitMonth(ctx, unit.ID, models.PaymentTypeCondominium, month, year)
			if err != nil {
				return err
			}
			if exists {
				skipped++
				continue
			}

			payment := &models.Payment{
				UnitID:         unit.ID,
				Type:           models.PaymentTypeCondominium,
				Amount:         *unit.BaseFee,
				Description:    fmt.Sprintf("Condominium fee %02d/%d - unit %s", month, year, unit.Number),
				DueDate:        dueDate,
				Status:         models.PaymentStatusPending,
				ReferenceMonth: month,
				ReferenceYear:  year,
			}

			inserted, err := s.payments.Create(ctx, payment)
			if err != nil {
				return err
			}
			if !inserted {
				// Another run won the insert race; the unique index
				// already holds the single payment for this month.
				log.Debug().
					Int64("unit_id", unit.ID).
					Int("month", month).
					Int("year", year).
					Msg("Payment already created concurrently, skipping")
				skipped++
				continue
			}
			created++
		}
	}

	log.Info().
		Str("action", "billing_done").
		Int("month", month).
		Int("year", year).
		Int("created", created).
		Int("skipped", skipped).
		Msg("Monthly billing completed")
	return nil
}
