package services

import (
	"context"
	"fmt"
	"time"

	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/models"
)

const (
	expiryWindowDays = 30
	urgentWithinDays = 7
)

// ContractAlertService warns staff of supplier contracts nearing expiry.
// Every weekly run re-notifies every staff member for every contract still
// inside the window; there is no suppression of repeats.
type ContractAlertService struct {
	contracts ContractStore
	users     UserStore
	notifier  NotificationStore
	now       func() time.Time
}

func NewContractAlertService(contracts ContractStore, users UserStore, notifier NotificationStore) *ContractAlertService {
	return &ContractAlertService{
		contracts: contracts,
		users:     users,
		notifier:  notifier,
		now:       time.Now,
	}
}

// NotifyExpiring notifies active staff of contracts ending within 30 days
func (s *ContractAlertService) NotifyExpiring(ctx context.Context) error {
	log := logger.WithContext(ctx, "contract-expiry")

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := today.AddDate(0, 0, expiryWindowDays)

	expiring, err := s.contracts.ListActiveExpiringBetween(ctx, today, windowEnd)
	if err != nil {
		return fmt.Errorf("failed to list expiring contracts: %w", err)
	}
	if len(expiring) == 0 {
		log.Info().Str("action", "sweep_done").Msg("No contracts expiring within window")
		return nil
	}

	staff, err := s.users.ListActiveStaff(ctx)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}

	notified := 0
	for _, contract := range expiring {
		daysLeft := contract.DaysRemaining(today)

		kind := models.NotificationKindWarning
		if daysLeft <= urgentWithinDays {
			kind = models.NotificationKindUrgent
		}

		supplierName := "unknown supplier"
		if contract.Supplier != nil {
			supplierName = contract.Supplier.Name
		}
		condoName := ""
		if contract.Condominium != nil {
			condoName = contract.Condominium.Name
		}

		message := fmt.Sprintf("Contract %q with %s (%s) expires on %s, in %d day(s). Review it for renewal or termination.",
			contract.Title, supplierName, condoName, contract.EndDate.Format("2006-01-02"), daysLeft)

		for _, user := range staff {
			n := &models.Notification{
				UserID:  user.ID,
				Title:   "Contract expiring soon",
				Message: message,
				Kind:    kind,
			}
			if err := s.notifier.Create(ctx, n); err != nil {
				return err
			}
			notified++
		}
	}

	log.Info().
		Str("action", "sweep_done").
		Int("contracts", len(expiring)).
		Int("notifications", notified).
		Msg("Contract expiry sweep completed")
	return nil
}
