package services

import (
	"context"
	"time"

	"github.com/condoboard/core/pkg/models"
)

// PaymentStore is the payment access the sweeps and the billing generator need
type PaymentStore interface {
	ListPendingDueOn(ctx context.Context, day time.Time) ([]models.Payment, error)
	ListOverdueBefore(ctx context.Context, cutoff time.Time) ([]models.Payment, error)
	MarkOverdue(ctx context.Context, paymentID int64) error
	ExistsForUnitMonth(ctx context.Context, unitID int64, typ models.PaymentType, month, year int) (bool, error)
	Create(ctx context.Context, p *models.Payment) (bool, error)
}

// NotificationStore creates alert notifications and answers dedup queries
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ExistsSimilarSince(ctx context.Context, userID int64, title, messageSubstring string, since time.Time) (bool, error)
}

// ContractStore is the read access the expiry sweep needs
type ContractStore interface {
	ListActiveExpiringBetween(ctx context.Context, from, to time.Time) ([]models.Contract, error)
}

// InventoryStore is the read access the low-stock sweep needs
type InventoryStore interface {
	ListBelowMinimum(ctx context.Context) ([]models.InventoryItem, error)
}

// UnitStore is the read access the billing generator needs
type UnitStore interface {
	ListActiveByCondominium(ctx context.Context, condominiumID int64) ([]models.Unit, error)
}

// CondominiumStore is the read access the billing generator needs
type CondominiumStore interface {
	ListActive(ctx context.Context) ([]models.Condominium, error)
}

// UserStore resolves the staff audience of administrative alerts
type UserStore interface {
	ListActiveStaff(ctx context.Context) ([]models.User, error)
}
