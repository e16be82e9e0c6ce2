package models

import "github.com/google/uuid"

type StoreType string

const (
	StoreTypeCafe       StoreType = "CAFE"
	StoreTypeRestaurant StoreType = "RESTAURANT"
	StoreTypeRetail     StoreType = "RETAIL"
	StoreTypeSalon      StoreType = "SALON"
	StoreTypeOther      StoreType = "OTHER"
)

type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "ACTIVE"
	StoreStatusInactive StoreStatus = "INACTIVE"
)

// DefaultGPSRadius is the clock-in radius in meters applied to new stores.
const DefaultGPSRadius = 50

type Store struct {
	Base
	OwnerID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"owner_id"`
	Name      string      `gorm:"not null" json:"name"`
	Type      StoreType   `gorm:"default:'OTHER'" json:"type"`
	Address   string      `json:"address,omitempty"`
	Latitude  *float64    `json:"latitude,omitempty"`
	Longitude *float64    `json:"longitude,omitempty"`
	GPSRadius int         `gorm:"default:50" json:"gps_radius"`
	Status    StoreStatus `gorm:"default:'ACTIVE'" json:"status"`

	// Relationships
	Owner     *User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Employees []Employee `gorm:"foreignKey:StoreID" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}

// ValidStoreType reports whether t is one of the store type enum values.
func ValidStoreType(t StoreType) bool {
	switch t {
	case StoreTypeCafe, StoreTypeRestaurant, StoreTypeRetail, StoreTypeSalon, StoreTypeOther:
		return true
	}
	return false
}
