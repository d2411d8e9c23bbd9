package models

import "time"

// CondominiumStatus represents the lifecycle state of a condominium
type CondominiumStatus string

const (
	CondominiumStatusActive   CondominiumStatus = "active"
	CondominiumStatusInactive CondominiumStatus = "inactive"
)

// Condominium is a managed building with units, contracts and inventory
type Condominium struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	Status    CondominiumStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UnitStatus represents occupancy state of a unit
type UnitStatus string

const (
	UnitStatusActive   UnitStatus = "active"
	UnitStatusInactive UnitStatus = "inactive"
)

// Unit is a single apartment or commercial space inside a condominium.
// BaseFee is the recurring condominium charge used by monthly billing;
// nil means the unit is not billed automatically.
type Unit struct {
	ID            int64      `json:"id"`
	CondominiumID int64      `json:"condominium_id"`
	Number        string     `json:"number"`
	Floor         *int32     `json:"floor,omitempty"`
	OwnerID       *int64     `json:"owner_id,omitempty"`
	BaseFee       *float64   `json:"base_fee,omitempty"`
	Status        UnitStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Eager-loaded associations
	Owner       *User        `json:"owner,omitempty"`
	Condominium *Condominium `json:"condominium,omitempty"`
}

// UserRole controls back-office permissions
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleResident UserRole = "resident"
)

// User is a back-office account; residents are linked to units as owners
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStaff reports whether the user should receive administrative alerts
func (u *User) IsStaff() bool {
	return u.Role == UserRoleAdmin || u.Role == UserRoleManager
}
