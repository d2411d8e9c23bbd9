package services

import (
	"context"
	"time"

	"github.com/condoboard/core/pkg/models"
)

type fakePaymentStore struct {
	pendingDueOn  []models.Payment
	overdueBefore []models.Payment
	exists        map[int64]bool
	createOK      bool
	createErr     error

	markedOverdue []int64
	created       []models.Payment
	dueOnArg      time.Time
	beforeArg     time.Time
	existsQueried []int64
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		exists:   make(map[int64]bool),
		createOK: true,
	}
}

func (f *fakePaymentStore) ListPendingDueOn(ctx context.Context, day time.Time) ([]models.Payment, error) {
	f.dueOnArg = day
	return f.pendingDueOn, nil
}

func (f *fakePaymentStore) ListOverdueBefore(ctx context.Context, cutoff time.Time) ([]models.Payment, error) {
	f.beforeArg = cutoff
	return f.overdueBefore, nil
}

func (f *fakePaymentStore) MarkOverdue(ctx context.Context, paymentID int64) error {
	f.markedOverdue = append(f.markedOverdue, paymentID)
	return nil
}

func (f *fakePaymentStore) ExistsForUnitMonth(ctx context.Context, unitID int64, typ models.PaymentType, month, year int) (bool, error) {
	f.existsQueried = append(f.existsQueried, unitID)
	return f.exists[unitID], nil
}

func (f *fakePaymentStore) Create(ctx context.Context, p *models.Payment) (bool, error) {
	if f.createErr != nil {
		return false, f.createErr
	}
	if !f.createOK {
		return false, nil
	}
	f.created = append(f.created, *p)
	return true, nil
}

type fakeNotificationStore struct {
	created     []models.Notification
	similarSeen bool
	similarArgs []string
	sinceArg    time.Time
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotificationStore) ExistsSimilarSince(ctx context.Context, userID int64, title, messageSubstring string, since time.Time) (bool, error) {
	f.similarArgs = append(f.similarArgs, messageSubstring)
	f.sinceArg = since
	return f.similarSeen, nil
}

type fakeContractStore struct {
	contracts []models.Contract
	fromArg   time.Time
	toArg     time.Time
}

func (f *fakeContractStore) ListActiveExpiringBetween(ctx context.Context, from, to time.Time) ([]models.Contract, error) {
	f.fromArg = from
	f.toArg = to
	return f.contracts, nil
}

type fakeInventoryStore struct {
	items []models.InventoryItem
}

func (f *fakeInventoryStore) ListBelowMinimum(ctx context.Context) ([]models.InventoryItem, error) {
	return f.items, nil
}

type fakeUnitStore struct {
	unitsByCondo map[int64][]models.Unit
}

func (f *fakeUnitStore) ListActiveByCondominium(ctx context.Context, condominiumID int64) ([]models.Unit, error) {
	return f.unitsByCondo[condominiumID], nil
}

type fakeCondominiumStore struct {
	condos []models.Condominium
}

func (f *fakeCondominiumStore) ListActive(ctx context.Context) ([]models.Condominium, error) {
	return f.condos, nil
}

type fakeUserStore struct {
	staff  []models.User
	called bool
}

func (f *fakeUserStore) ListActiveStaff(ctx context.Context) ([]models.User, error) {
	f.called = true
	return f.staff, nil
}

// fixedNow returns a clock stuck at the given instant
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
