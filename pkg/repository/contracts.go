package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoboard/core/pkg/models"
)

// Contracts provides read access to supplier contracts
type Contracts struct {
	pool *pgxpool.Pool
}

func NewContracts(pool *pgxpool.Pool) *Contracts {
	return &Contracts{pool: pool}
}

// ListActiveExpiringBetween returns active contracts whose end date falls
// inside [from, to], with supplier and condominium eager-loaded.
func (r *Contracts) ListActiveExpiringBetween(ctx context.Context, from, to time.Time) ([]models.Contract, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.condominium_id, c.supplier_id, c.title, c.start_date, c.end_date,
		       c.monthly_value, c.status, c.created_at, c.updated_at,
		       s.id, s.name, s.document, s.email, s.phone,
		       cd.id, cd.name, cd.address, cd.city, cd.status
		FROM contracts c
		JOIN suppliers s ON s.id = c.supplier_id
		JOIN condominiums cd ON cd.id = c.condominium_id
		WHERE c.status = $1
		  AND c.end_date >= $2::date
		  AND c.end_date <= $3::date
		ORDER BY c.end_date, c.id
	`, models.ContractStatusActive, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring contracts: %w", err)
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		var c models.Contract
		var s models.Supplier
		var cd models.Condominium
		err := rows.Scan(
			&c.ID, &c.CondominiumID, &c.SupplierID, &c.Title, &c.StartDate, &c.EndDate,
			&c.MonthlyValue, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&s.ID, &s.Name, &s.Document, &s.Email, &s.Phone,
			&cd.ID, &cd.Name, &cd.Address, &cd.City, &cd.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		c.Supplier = &s
		c.Condominium = &cd
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
