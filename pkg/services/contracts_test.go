package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condoboard/core/pkg/models"
)

func expiringContract(id int64, title string, end time.Time) models.Contract {
	return models.Contract{
		ID:            id,
		CondominiumID: 1,
		SupplierID:    5,
		Title:         title,
		EndDate:       end,
		Status:        models.ContractStatusActive,
		Supplier:      &models.Supplier{ID: 5, Name: "CleanCo"},
		Condominium:   &models.Condominium{ID: 1, Name: "Residencial Aurora"},
	}
}

func staffUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "Alice", Role: models.UserRoleAdmin, Active: true},
		{ID: 2, Name: "Bruno", Role: models.UserRoleManager, Active: true},
	}
}

func TestContractExpiry_NotifiesEveryStaffPerContract(t *testing.T) {
	now := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)

	contracts := &fakeContractStore{contracts: []models.Contract{
		expiringContract(1, "Cleaning services", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)),    // 5 days
		expiringContract(2, "Elevator maintenance", time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)), // 26 days
	}}
	users := &fakeUserStore{staff: staffUsers()}
	notifications := &fakeNotificationStore{}

	svc := NewContractAlertService(contracts, users, notifications)
	svc.now = fixedNow(now)

	require.NoError(t, svc.NotifyExpiring(context.Background()))

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), contracts.fromArg)
	assert.Equal(t, time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC), contracts.toArg,
		"window is thirty days from today")

	// 2 contracts x 2 staff, no dedup against prior weeks
	require.Len(t, notifications.created, 4)

	urgent := 0
	warning := 0
	for _, n := range notifications.created {
		switch n.Kind {
		case models.NotificationKindUrgent:
			urgent++
			assert.Contains(t, n.Message, "Cleaning services")
		case models.NotificationKindWarning:
			warning++
			assert.Contains(t, n.Message, "Elevator maintenance")
		}
		assert.Equal(t, "Contract expiring soon", n.Title)
		assert.Contains(t, n.Message, "CleanCo")
	}
	assert.Equal(t, 2, urgent, "contract within seven days escalates to urgent")
	assert.Equal(t, 2, warning)
}

func TestContractExpiry_SevenDayBoundaryIsUrgent(t *testing.T) {
	now := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)

	contracts := &fakeContractStore{contracts: []models.Contract{
		expiringContract(1, "Security", time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)), // exactly 7 days
	}}
	users := &fakeUserStore{staff: staffUsers()[:1]}
	notifications := &fakeNotificationStore{}

	svc := NewContractAlertService(contracts, users, notifications)
	svc.now = fixedNow(now)

	require.NoError(t, svc.NotifyExpiring(context.Background()))
	require.Len(t, notifications.created, 1)
	assert.Equal(t, models.NotificationKindUrgent, notifications.created[0].Kind)
}

func TestContractExpiry_NoContractsNoStaffLookup(t *testing.T) {
	now := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)

	contracts := &fakeContractStore{}
	users := &fakeUserStore{staff: staffUsers()}
	notifications := &fakeNotificationStore{}

	svc := NewContractAlertService(contracts, users, notifications)
	svc.now = fixedNow(now)

	require.NoError(t, svc.NotifyExpiring(context.Background()))
	assert.False(t, users.called, "empty window short-circuits before loading staff")
	assert.Empty(t, notifications.created)
}
