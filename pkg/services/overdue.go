package services

import (
	"context"
	"fmt"
	"time"

	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/models"
)

const (
	// OverdueTitle is the title of the first-miss warning notification
	OverdueTitle = "Overdue payment"
	// CriticalOverdueTitle is the title of the escalation notification; the
	// dedup query matches on it together with the payment description.
	CriticalOverdueTitle = "Critical overdue payment"

	criticalAfterDays = 5
	dedupWindowDays   = 7
)

// OverdueService reclassifies payments that missed their due date and
// escalates repeated delinquency via notifications.
type OverdueService struct {
	payments      PaymentStore
	notifications NotificationStore
	now           func() time.Time
}

func NewOverdueService(payments PaymentStore, notifications NotificationStore) *OverdueService {
	return &OverdueService{
		payments:      payments,
		notifications: notifications,
		now:           time.Now,
	}
}

// Sweep runs both phases of the overdue sweep: reclassify payments that were
// due yesterday, then escalate payments more than five days past due.
func (s *OverdueService) Sweep(ctx context.Context) error {
	log := logger.WithContext(ctx, "overdue-sweep")

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	reclassified, err := s.reclassifyMissed(ctx, today)
	if err != nil {
		return err
	}

	escalated, err := s.escalateCritical(ctx, today)
	if err != nil {
		return err
	}

	log.Info().
		Str("action", "sweep_done").
		Int("reclassified", reclassified).
		Int("escalated", escalated).
		Msg("Overdue sweep completed")
	return nil
}

func (s *OverdueService) reclassifyMissed(ctx context.Context, today time.Time) (int, error) {
	log := logger.WithContext(ctx, "overdue-sweep")

	yesterday := today.AddDate(0, 0, -1)
	missed, err := s.payments.ListPendingDueOn(ctx, yesterday)
	if err != nil {
		return 0, fmt.Errorf("failed to load payments due yesterday: %w", err)
	}

	for _, p := range missed {
		if err := s.payments.MarkOverdue(ctx, p.ID); err != nil {
			return 0, err
		}

		// Units without an assigned owner are reclassified silently
		if p.Unit == nil || p.Unit.Owner == nil {
			log.Warn().
				Int64("payment_id", p.ID).
				Int64("unit_id", p.UnitID).
				Msg("Unit has no owner, overdue payment not notified")
			continue
		}

		n := &models.Notification{
			UserID: p.Unit.Owner.ID,
			UnitID: &p.UnitID,
			Title:  OverdueTitle,
			Kind:   models.NotificationKindWarning,
			Message: fmt.Sprintf("Payment %q of %.2f for unit %s was due on %s and is now overdue.",
				p.Description, p.Amount, p.Unit.Number, p.DueDate.Format("2006-01-02")),
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			return 0, err
		}
		log.LogNotificationCreated(n.UserID, string(n.Kind), n.Title)
	}
	return len(missed), nil
}

func (s *OverdueService) escalateCritical(ctx context.Context, today time.Time) (int, error) {
	log := logger.WithContext(ctx, "overdue-sweep")

	cutoff := today.AddDate(0, 0, -criticalAfterDays)
	critical, err := s.payments.ListOverdueBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to load critical overdue payments: %w", err)
	}

	since := today.AddDate(0, 0, -dedupWindowDays)
	escalated := 0
	for _, p := range critical {
		if p.Unit == nil || p.Unit.Owner == nil {
			continue
		}
		ownerID := p.Unit.Owner.ID

		already, err := s.notifications.ExistsSimilarSince(ctx, ownerID, CriticalOverdueTitle, p.Description, since)
		if err != nil {
			return escalated, err
		}
		if already {
			continue
		}

		n := &models.Notification{
			UserID: ownerID,
			UnitID: &p.UnitID,
			Title:  CriticalOverdueTitle,
			Kind:   models.NotificationKindUrgent,
			Message: fmt.Sprintf("Payment %q of %.2f for unit %s is more than %d days overdue (due %s). Please regularize it immediately.",
				p.Description, p.Amount, p.Unit.Number, criticalAfterDays, p.DueDate.Format("2006-01-02")),
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			return escalated, err
		}
		escalated++
		log.LogNotificationCreated(n.UserID, string(n.Kind), n.Title)
	}
	return escalated, nil
}
