package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoboard/core/pkg/models"
)

// Inventory provides read access to inventory items
type Inventory struct {
	pool *pgxpool.Pool
}

func NewInventory(pool *pgxpool.Pool) *Inventory {
	return &Inventory{pool: pool}
}

// ListBelowMinimum returns available items whose quantity dropped below their
// configured minimum stock, with the owning condominium eager-loaded.
// Items with minimum_stock = 0 never qualify.
func (r *Inventory) ListBelowMinimum(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.condominium_id, i.name, i.quantity, i.minimum_stock, i.unit,
		       i.status, i.created_at, i.updated_at,
		       cd.id, cd.name, cd.address, cd.city, cd.status
		FROM inventory_items i
		JOIN condominiums cd ON cd.id = i.condominium_id
		WHERE i.status = $1
		  AND i.minimum_stock > 0
		  AND i.quantity < i.minimum_stock
		ORDER BY cd.name, i.name
	`, models.InventoryItemStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to list low-stock items: %w", err)
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var i models.InventoryItem
		var cd models.Condominium
		err := rows.Scan(
			&i.ID, &i.CondominiumID, &i.Name, &i.Quantity, &i.MinimumStock, &i.Unit,
			&i.Status, &i.CreatedAt, &i.UpdatedAt,
			&cd.ID, &cd.Name, &cd.Address, &cd.City, &cd.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		i.Condominium = &cd
		items = append(items, i)
	}
	return items, rows.Err()
}
