package models

import "time"

// InventoryItemStatus represents availability of an inventory item
type InventoryItemStatus string

const (
	InventoryItemStatusAvailable    InventoryItemStatus = "available"
	InventoryItemStatusDiscontinued InventoryItemStatus = "discontinued"
)

// InventoryItem is a consumable tracked per condominium.
// MinimumStock of zero disables low-stock alerts for the item.
type InventoryItem struct {
	ID            int64               `json:"id"`
	CondominiumID int64               `json:"condominium_id"`
	Name          string              `json:"name"`
	Quantity      int32               `json:"quantity"`
	MinimumStock  int32               `json:"minimum_stock"`
	Unit          string              `json:"unit"`
	Status        InventoryItemStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`

	// Eager-loaded association
	Condominium *Condominium `json:"condominium,omitempty"`
}

// BelowMinimum reports whether the item qualifies for a low-stock alert
func (i *InventoryItem) BelowMinimum() bool {
	return i.Status == InventoryItemStatusAvailable &&
		i.MinimumStock > 0 &&
		i.Quantity < i.MinimumStock
}
