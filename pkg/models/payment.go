package models

import "time"

// PaymentStatus represents the collection state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentType distinguishes the recurring condominium charge from ad-hoc ones
type PaymentType string

const (
	PaymentTypeCondominium PaymentType = "condominium"
	PaymentTypeExtra       PaymentType = "extra"
	PaymentTypeFine        PaymentType = "fine"
)

// Payment is a charge against a unit for a given reference month.
// The monthly billing generator creates at most one condominium-type payment
// per (unit, reference_month, reference_year).
type Payment struct {
	ID             int64         `json:"id"`
	UnitID         int64         `json:"unit_id"`
	Type           PaymentType   `json:"type"`
	Amount         float64       `json:"amount"`
	Description    string        `json:"description"`
	DueDate        time.Time     `json:"due_date"`
	PaidDate       *time.Time    `json:"paid_date,omitempty"`
	Status         PaymentStatus `json:"status"`
	ReferenceMonth int           `json:"reference_month"`
	ReferenceYear  int           `json:"reference_year"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	// Eager-loaded association
	Unit *Unit `json:"unit,omitempty"`
}

// DaysOverdue returns how many whole days past due the payment is at now.
// Zero or negative means the payment is not yet late.
func (p *Payment) DaysOverdue(now time.Time) int {
	return int(now.Sub(p.DueDate).Hours() / 24)
}
