package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoboard/core/pkg/models"
)

// Condominiums provides read access to condominiums
type Condominiums struct {
	pool *pgxpool.Pool
}

func NewCondominiums(pool *pgxpool.Pool) *Condominiums {
	return &Condominiums{pool: pool}
}

// ListActive returns all active condominiums
func (r *Condominiums) ListActive(ctx context.Context) ([]models.Condominium, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, address, city, status, created_at, updated_at
		FROM condominiums
		WHERE status = $1
		ORDER BY name
	`, models.CondominiumStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active condominiums: %w", err)
	}
	defer rows.Close()

	var condos []models.Condominium
	for rows.Next() {
		var c models.Condominium
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan condominium: %w", err)
		}
		condos = append(condos, c)
	}
	return condos, rows.Err()
}
