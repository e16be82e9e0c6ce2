package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mina/shiftbase/internal/api/dto"
	"github.com/mina/shiftbase/internal/api/middleware"
	"github.com/mina/shiftbase/internal/auth"
	"github.com/mina/shiftbase/internal/database/models"
)

type AuthHandler struct {
	authService auth.Authenticator
}

func NewAuthHandler(authService auth.Authenticator) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) SignupOwner(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Invalid request body", nil)
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Validation failed", details)
		return
	}

	result, err := h.authService.SignupOwner(r.Context(), auth.SignupOwnerInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Phone:     req.Phone,
		StoreName: req.StoreName,
		StoreType: models.StoreType(req.StoreType),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			writeError(w, http.StatusConflict, dto.CodeEmailAlreadyExists, "Email already exists", nil)
		default:
			writeError(w, http.StatusInternalServerError, dto.CodeInternalError, "Signup failed", nil)
		}
		return
	}

	setTokenCookie(w, result.AccessToken)

	writeData(w, http.StatusCreated, dto.SignupOwnerData{
		UserID:       result.User.ID.String(),
		Email:        result.User.Email,
		Role:         string(result.User.Role),
		StoreID:      result.Store.ID.String(),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Invalid request body", nil)
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Validation failed", details)
		return
	}

	result, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, dto.CodeInvalidCredentials, "Invalid email or password", nil)
		case errors.Is(err, auth.ErrInactiveUser):
			writeError(w, http.StatusForbidden, dto.CodeUserInactive, "Account is not active", nil)
		default:
			writeError(w, http.StatusInternalServerError, dto.CodeInternalError, "Login failed", nil)
		}
		return
	}

	setTokenCookie(w, result.AccessToken)

	writeData(w, http.StatusOK, dto.LoginData{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         dto.NewUserDTO(result.User),
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Invalid request body", nil)
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Validation failed", details)
		return
	}

	accessToken, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
			writeError(w, http.StatusUnauthorized, dto.CodeInvalidRefreshToken, "Invalid refresh token", nil)
		default:
			writeError(w, http.StatusInternalServerError, dto.CodeInternalError, "Refresh failed", nil)
		}
		return
	}

	setTokenCookie(w, accessToken)

	writeData(w, http.StatusOK, dto.RefreshData{AccessToken: accessToken})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, dto.CodeUserNotFound, "User not found", nil)
		return
	}

	writeData(w, http.StatusOK, dto.NewUserDTO(user))
}

func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
}
