package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoboard/core/pkg/models"
)

// Payments provides access to the payments table
type Payments struct {
	pool *pgxpool.Pool
}

func NewPayments(pool *pgxpool.Pool) *Payments {
	return &Payments{pool: pool}
}

const paymentWithUnitColumns = `
	p.id, p.unit_id, p.type, p.amount, p.description, p.due_date, p.paid_date,
	p.status, p.reference_month, p.reference_year, p.created_at, p.updated_at,
	u.id, u.condominium_id, u.number, u.owner_id, u.base_fee, u.status,
	o.id, o.name, o.email, o.role, o.active`

func scanPaymentWithUnit(rows pgx.Rows) (models.Payment, error) {
	var p models.Payment
	var u models.Unit
	var ownerID *int64
	var ownerName, ownerEmail, ownerRole *string
	var ownerActive *bool

	err := rows.Scan(
		&p.ID, &p.UnitID, &p.Type, &p.Amount, &p.Description, &p.DueDate, &p.PaidDate,
		&p.Status, &p.ReferenceMonth, &p.ReferenceYear, &p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.CondominiumID, &u.Number, &u.OwnerID, &u.BaseFee, &u.Status,
		&ownerID, &ownerName, &ownerEmail, &ownerRole, &ownerActive,
	)
	if err != nil {
		return p, err
	}

	if ownerID != nil {
		u.Owner = &models.User{
			ID:     *ownerID,
			Name:   *ownerName,
			Email:  *ownerEmail,
			Role:   models.UserRole(*ownerRole),
			Active: *ownerActive,
		}
	}
	p.Unit = &u
	return p, nil
}

// ListPendingDueOn returns pending payments whose due date falls on the given
// day, with the unit and its owner eager-loaded.
func (r *Payments) ListPendingDueOn(ctx context.Context, day time.Time) ([]models.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+paymentWithUnitColumns+`
		FROM payments p
		JOIN units u ON u.id = p.unit_id
		LEFT JOIN users o ON o.id = u.owner_id
		WHERE p.status = $1 AND p.due_date = $2::date
		ORDER BY p.id
	`, models.PaymentStatusPending, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments due on %s: %w", day.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPaymentWithUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ListOverdueBefore returns overdue payments with a due date strictly before
// the cutoff, with the unit and its owner eager-loaded.
func (r *Payments) ListOverdueBefore(ctx context.Context, cutoff time.Time) ([]models.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+paymentWithUnitColumns+`
		FROM payments p
		JOIN units u ON u.id = p.unit_id
		LEFT JOIN users o ON o.id = u.owner_id
		WHERE p.status = $1 AND p.due_date < $2::date
		ORDER BY p.due_date, p.id
	`, models.PaymentStatusOverdue, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue payments before %s: %w", cutoff.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPaymentWithUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// MarkOverdue transitions a payment to overdue status
func (r *Payments) MarkOverdue(ctx context.Context, paymentID int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE payments
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, models.PaymentStatusOverdue, paymentID, models.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark payment %d overdue: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %d was not pending", paymentID)
	}
	return nil
}

// ExistsForUnitMonth reports whether a payment of the given type already
// exists for the unit in the reference month
func (r *Payments) ExistsForUnitMonth(ctx context.Context, unitID int64, typ models.PaymentType, month, year int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM payments
			WHERE unit_id = $1 AND type = $2
			  AND reference_month = $3 AND reference_year = $4
		)
	`, unitID, typ, month, year).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payment existence for unit %d: %w", unitID, err)
	}
	return exists, nil
}

// Create inserts a payment. The unique index on
// (unit_id, type, reference_month, reference_year) makes concurrent billing
// runs converge: on conflict nothing is inserted and created is false.
func (r *Payments) Create(ctx context.Context, p *models.Payment) (bool, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO payments (unit_id, type, amount, description, due_date, status, reference_month, reference_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (unit_id, type, reference_month, reference_year) DO NOTHING
		RETURNING id, created_at, updated_at
	`, p.UnitID, p.Type, p.Amount, p.Description, p.DueDate, p.Status, p.ReferenceMonth, p.ReferenceYear).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // already billed for this month
	}
	if err != nil {
		return false, fmt.Errorf("failed to create payment for unit %d: %w", p.UnitID, err)
	}
	return true, nil
}
