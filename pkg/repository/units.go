package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoboard/core/pkg/models"
)

// Units provides read access to condominium units
type Units struct {
	pool *pgxpool.Pool
}

func NewUnits(pool *pgxpool.Pool) *Units {
	return &Units{pool: pool}
}

// ListActiveByCondominium returns the active units of a condominium.
// The billing generator decides per unit whether a base fee is configured.
func (r *Units) ListActiveByCondominium(ctx context.Context, condominiumID int64) ([]models.Unit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, condominium_id, number, floor, owner_id, base_fee, status, created_at, updated_at
		FROM units
		WHERE condominium_id = $1 AND status = $2
		ORDER BY number
	`, condominiumID, models.UnitStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list units of condominium %d: %w", condominiumID, err)
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var u models.Unit
		err := rows.Scan(&u.ID, &u.CondominiumID, &u.Number, &u.Floor, &u.OwnerID, &u.BaseFee, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}
