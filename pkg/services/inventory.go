package services

import (
	"context"
	"fmt"

	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/models"
)

// StockAlertService warns staff of inventory items below their configured
// minimum. Like the contract sweep, it re-notifies weekly while the
// condition persists.
type StockAlertService struct {
	inventory InventoryStore
	users     UserStore
	notifier  NotificationStore
}

func NewStockAlertService(inventory InventoryStore, users UserStore, notifier NotificationStore) *StockAlertService {
	return &StockAlertService{
		inventory: inventory,
		users:     users,
		notifier:  notifier,
	}
}

// NotifyLowStock creates one warning per low item per active staff member
func (s *StockAlertService) NotifyLowStock(ctx context.Context) error {
	log := logger.WithContext(ctx, "low-stock")

	items, err := s.inventory.ListBelowMinimum(ctx)
	if err != nil {
		return fmt.Errorf("failed to list low-stock items: %w", err)
	}
	if len(items) == 0 {
		log.Info().Str("action", "sweep_done").Msg("No items below minimum stock")
		return nil
	}

	staff, err := s.users.ListActiveStaff(ctx)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}

	notified := 0
	for _, item := range items {
		condoName := ""
		if item.Condominium != nil {
			condoName = item.Condominium.Name
		}

		message := fmt.Sprintf("Item %q at %s is below minimum stock: %d %s in stock, minimum is %d.",
			item.Name, condoName, item.Quantity, item.Unit, item.MinimumStock)

		for _, user := range staff {
			n := &models.Notification{
				UserID:  user.ID,
				Title:   "Low stock alert",
				Message: message,
				Kind:    models.NotificationKindWarning,
			}
			if err := s.notifier.Create(ctx, n); err != nil {
				return err
			}
			notified++
		}
	}

	log.Info().
		Str("action", "sweep_done").
		Int("items", len(items)).
		Int("notifications", notified).
		Msg("Low-stock sweep completed")
	return nil
}
