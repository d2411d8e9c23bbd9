package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condoboard/core/pkg/models"
)

func paymentWithOwner(id, unitID, ownerID int64, due time.Time, desc string) models.Payment {
	return models.Payment{
		ID:          id,
		UnitID:      unitID,
		Type:        models.PaymentTypeCondominium,
		Amount:      500,
		Description: desc,
		DueDate:     due,
		Status:      models.PaymentStatusPending,
		Unit: &models.Unit{
			ID:      unitID,
			Number:  "101",
			OwnerID: &ownerID,
			Owner:   &models.User{ID: ownerID, Name: "Ana", Role: models.UserRoleResident, Active: true},
		},
	}
}

func TestOverdueSweep_ReclassifiesAndNotifies(t *testing.T) {
	now := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	payments := newFakePaymentStore()
	payments.pendingDueOn = []models.Payment{
		paymentWithOwner(1, 10, 7, yesterday, "Condominium fee 03/2024 - unit 101"),
	}
	notifications := &fakeNotificationStore{}

	svc := NewOverdueService(payments, notifications)
	svc.now = fixedNow(now)

	require.NoError(t, svc.Sweep(context.Background()))

	assert.Equal(t, yesterday, payments.dueOnArg, "phase 1 must select payments due yesterday")
	assert.Equal(t, []int64{1}, payments.markedOverdue)

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	assert.Equal(t, int64(7), n.UserID)
	assert.Equal(t, OverdueTitle, n.Title)
	assert.Equal(t, models.NotificationKindWarning, n.Kind)
	require.NotNil(t, n.UnitID)
	assert.Equal(t, int64(10), *n.UnitID)
	assert.Contains(t, n.Message, "unit 101")
	assert.Contains(t, n.Message, "2024-03-14")
}

func TestOverdueSweep_UnitWithoutOwnerIsSilent(t *testing.T) {
	now := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)

	orphan := paymentWithOwner(2, 11, 0, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), "fee")
	orphan.Unit.Owner = nil
	orphan.Unit.OwnerID = nil

	payments := newFakePaymentStore()
	payments.pendingDueOn = []models.Payment{orphan}
	notifications := &fakeNotificationStore{}

	svc := NewOverdueService(payments, notifications)
	svc.now = fixedNow(now)

	require.NoError(t, svc.Sweep(context.Background()))

	assert.Equal(t, []int64{2}, payments.markedOverdue, "payment is still reclassified")
	assert.Empty(t, notifications.created, "no owner means no notification")
}

func TestOverdueSweep_EscalatesCritical(t *testing.T) {
	now := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)

	old := paymentWithOwner(3, 12, 9, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "Condominium fee 02/2024 - unit 101")
	old.Status = models.PaymentStatusOverdue

	payments := newFakePaymentStore()
	payments.overdueBefore = []models.Payment{old}
	notifications := &fakeNotificationStore{similarSeen: false}

	svc := NewOverdueService(payments, notifications)
	svc.now = fixedNow(now)

	require.NoError(t, svc.Sweep(context.Background()))

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), payments.beforeArg,
		"critical cutoff is five days before today")
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), notifications.sinceArg,
		"dedup window is seven days")

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	assert.Equal(t, CriticalOverdueTitle, n.Title)
	assert.Equal(t, models.NotificationKindUrgent, n.Kind)
	assert.Equal(t, int64(9), n.UserID)
	assert.Contains(t, n.Message, "Condominium fee 02/2024 - unit 101")

	// The dedup query carries the payment description substring
	require.Len(t, notifications.similarArgs, 1)
	assert.Equal(t, "Condominium fee 02/2024 - unit 101", notifications.similarArgs[0])
}

func TestOverdueSweep_SkipsAlreadyEscalated(t *testing.T) {
	now := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)

	old := paymentWithOwner(4, 13, 9, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "fee 02/2024")
	old.Status = models.PaymentStatusOverdue

	payments := newFakePaymentStore()
	payments.overdueBefore = []models.Payment{old}
	notifications := &fakeNotificationStore{similarSeen: true}

	svc := NewOverdueService(payments, notifications)
	svc.now = fixedNow(now)

	require.NoError(t, svc.Sweep(context.Background()))
	assert.Empty(t, notifications.created, "a notification inside the window suppresses escalation")
}
