package models

type UserRole string

const (
	RoleOwner    UserRole = "OWNER"
	RoleEmployee UserRole = "EMPLOYEE"
	RoleManager  UserRole = "MANAGER"
	RolePartner  UserRole = "PARTNER"
	RoleAdmin    UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type User struct {
	Base
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Role         UserRole   `gorm:"default:'EMPLOYEE'" json:"role"`
	Status       UserStatus `gorm:"default:'ACTIVE'" json:"status"`

	// Relationships
	OwnedStores []Store    `gorm:"foreignKey:OwnerID" json:"-"`
	Employments []Employee `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
