package models

import "time"

// ContractStatus represents the lifecycle state of a supplier contract
type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "active"
	ContractStatusExpired   ContractStatus = "expired"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// Supplier is a service provider with contracts against condominiums
type Supplier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contract binds a supplier to a condominium for a period.
// The expiry sweep only reads contracts; renewal is a manual API action.
type Contract struct {
	ID            int64          `json:"id"`
	CondominiumID int64          `json:"condominium_id"`
	SupplierID    int64          `json:"supplier_id"`
	Title         string         `json:"title"`
	StartDate     time.Time      `json:"start_date"`
	EndDate       time.Time      `json:"end_date"`
	MonthlyValue  float64        `json:"monthly_value"`
	Status        ContractStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Eager-loaded associations
	Supplier    *Supplier    `json:"supplier,omitempty"`
	Condominium *Condominium `json:"condominium,omitempty"`
}

// DaysRemaining returns whole days until the contract end date at now
func (c *Contract) DaysRemaining(now time.Time) int {
	return int(c.EndDate.Sub(now).Hours() / 24)
}
