package dto

import (
	"github.com/mina/shiftbase/internal/api/validation"
	"github.com/mina/shiftbase/internal/database/models"
)

type SignupOwnerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	StoreName string `json:"storeName"`
	StoreType string `json:"storeType,omitempty"`
}

func (r SignupOwnerRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Invalid email format"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	} else if ok, msg := validation.IsValidPassword(r.Password); !ok {
		errors["password"] = msg
	}
	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.StoreName == "" {
		errors["storeName"] = "Store name is required"
	}
	if r.StoreType != "" && !models.ValidStoreType(models.StoreType(r.StoreType)) {
		errors["storeType"] = "Invalid store type"
	}

	return errors
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r RefreshRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.RefreshToken == "" {
		errors["refreshToken"] = "Refresh token is required"
	}

	return errors
}

// UserDTO is the user projection used in responses. The password hash never
// appears here.
type UserDTO struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		Name:   user.Name,
		Phone:  user.Phone,
	}
}

type SignupOwnerData struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	StoreID      string `json:"storeId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginData struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	User         UserDTO `json:"user"`
}

type RefreshData struct {
	AccessToken string `json:"accessToken"`
}
