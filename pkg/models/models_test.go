package models

import (
	"testing"
	"time"
)

func TestPayment_DaysOverdue(t *testing.T) {
	now := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"five days late", time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC), 5},
		{"due today", now, 0},
		{"not yet due", time.Date(2024, 3, 20, 5, 0, 0, 0, time.UTC), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{DueDate: tt.due}
			if got := p.DaysOverdue(now); got != tt.want {
				t.Errorf("DaysOverdue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContract_DaysRemaining(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	c := Contract{EndDate: time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)}
	if got := c.DaysRemaining(today); got != 7 {
		t.Errorf("DaysRemaining() = %d, want 7", got)
	}
}

func TestInventoryItem_BelowMinimum(t *testing.T) {
	tests := []struct {
		name string
		item InventoryItem
		want bool
	}{
		{
			"below minimum",
			InventoryItem{Status: InventoryItemStatusAvailable, Quantity: 2, MinimumStock: 5},
			true,
		},
		{
			"at minimum",
			InventoryItem{Status: InventoryItemStatusAvailable, Quantity: 5, MinimumStock: 5},
			false,
		},
		{
			"tracking disabled",
			InventoryItem{Status: InventoryItemStatusAvailable, Quantity: 0, MinimumStock: 0},
			false,
		},
		{
			"discontinued item",
			InventoryItem{Status: InventoryItemStatusDiscontinued, Quantity: 1, MinimumStock: 5},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.BelowMinimum(); got != tt.want {
				t.Errorf("BelowMinimum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUser_IsStaff(t *testing.T) {
	if !(&User{Role: UserRoleAdmin}).IsStaff() {
		t.Error("admin should be staff")
	}
	if !(&User{Role: UserRoleManager}).IsStaff() {
		t.Error("manager should be staff")
	}
	if (&User{Role: UserRoleResident}).IsStaff() {
		t.Error("resident should not be staff")
	}
}
