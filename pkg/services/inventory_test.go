package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condoboard/core/pkg/models"
)

func TestLowStock_NotifiesEveryStaffPerItem(t *testing.T) {
	inventory := &fakeInventoryStore{items: []models.InventoryItem{
		{
			ID:            1,
			CondominiumID: 1,
			Name:          "Light bulbs",
			Quantity:      3,
			MinimumStock:  10,
			Unit:          "pcs",
			Status:        models.InventoryItemStatusAvailable,
			Condominium:   &models.Condominium{ID: 1, Name: "Residencial Aurora"},
		},
	}}
	users := &fakeUserStore{staff: staffUsers()}
	notifications := &fakeNotificationStore{}

	svc := NewStockAlertService(inventory, users, notifications)
	require.NoError(t, svc.NotifyLowStock(context.Background()))

	require.Len(t, notifications.created, 2, "one notification per staff member")
	for _, n := range notifications.created {
		assert.Equal(t, "Low stock alert", n.Title)
		assert.Equal(t, models.NotificationKindWarning, n.Kind)
		assert.Contains(t, n.Message, "Light bulbs")
		assert.Contains(t, n.Message, "3 pcs")
		assert.Contains(t, n.Message, "minimum is 10")
		assert.Contains(t, n.Message, "Residencial Aurora")
	}
	assert.Equal(t, int64(1), notifications.created[0].UserID)
	assert.Equal(t, int64(2), notifications.created[1].UserID)
}

func TestLowStock_NothingBelowMinimum(t *testing.T) {
	inventory := &fakeInventoryStore{}
	users := &fakeUserStore{staff: staffUsers()}
	notifications := &fakeNotificationStore{}

	svc := NewStockAlertService(inventory, users, notifications)
	require.NoError(t, svc.NotifyLowStock(context.Background()))

	assert.False(t, users.called)
	assert.Empty(t, notifications.created)
}
