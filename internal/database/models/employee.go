package models

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
	EmployeeStatusQuit     EmployeeStatus = "QUIT"
)

// Employee is a membership row linking a user to a store's roster. Its status
// is independent of the underlying user's status. The partial unique index
// allows re-hiring: any number of QUIT rows per (user, store), at most one
// ACTIVE one.
type Employee struct {
	Base
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_employees_active_unique,unique,where:status = 'ACTIVE'" json:"user_id"`
	StoreID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_employees_active_unique,unique,where:status = 'ACTIVE'" json:"store_id"`
	Role       string         `json:"role,omitempty"`
	HourlyWage int            `gorm:"check:hourly_wage >= 0" json:"hourly_wage"`
	Status     EmployeeStatus `gorm:"default:'ACTIVE'" json:"status"`
	HiredAt    time.Time      `gorm:"not null" json:"hired_at"`
	QuitAt     *time.Time     `json:"quit_at,omitempty"`

	// Relationships
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Store *Store `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}
