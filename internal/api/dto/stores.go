package dto

import (
	"time"

	"github.com/mina/shiftbase/internal/database/models"
)

type UpdateStoreRequest struct {
	Name      *string  `json:"name,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	GPSRadius *int     `json:"gpsRadius,omitempty"`
	Status    *string  `json:"status,omitempty"`
}

func (r UpdateStoreRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && *r.Name == "" {
		errors["name"] = "Name must not be empty"
	}
	if r.GPSRadius != nil && *r.GPSRadius <= 0 {
		errors["gpsRadius"] = "GPS radius must be positive"
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errors["latitude"] = "Latitude must be between -90 and 90"
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errors["longitude"] = "Longitude must be between -180 and 180"
	}
	if r.Status != nil && *r.Status != string(models.StoreStatusActive) && *r.Status != string(models.StoreStatusInactive) {
		errors["status"] = "Invalid store status"
	}

	return errors
}

type StoreDTO struct {
	ID        string   `json:"id"`
	OwnerID   string   `json:"ownerId"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	GPSRadius int      `json:"gpsRadius"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
}

func NewStoreDTO(store *models.Store) StoreDTO {
	return StoreDTO{
		ID:        store.ID.String(),
		OwnerID:   store.OwnerID.String(),
		Name:      store.Name,
		Type:      string(store.Type),
		Address:   store.Address,
		Latitude:  store.Latitude,
		Longitude: store.Longitude,
		GPSRadius: store.GPSRadius,
		Status:    string(store.Status),
		CreatedAt: store.CreatedAt.Format(time.RFC3339),
	}
}

type EmployeeDTO struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	Role       string  `json:"role,omitempty"`
	HourlyWage int     `json:"hourlyWage"`
	Status     string  `json:"status"`
	HiredAt    string  `json:"hiredAt"`
	QuitAt     *string `json:"quitAt,omitempty"`
	User       UserDTO `json:"user"`
}

func NewEmployeeDTO(emp *models.Employee) EmployeeDTO {
	d := EmployeeDTO{
		ID:         emp.ID.String(),
		UserID:     emp.UserID.String(),
		Role:       emp.Role,
		HourlyWage: emp.HourlyWage,
		Status:     string(emp.Status),
		HiredAt:    emp.HiredAt.Format("2006-01-02"),
	}
	if emp.QuitAt != nil {
		q := emp.QuitAt.Format("2006-01-02")
		d.QuitAt = &q
	}
	if emp.User != nil {
		d.User = NewUserDTO(emp.User)
	}
	return d
}
