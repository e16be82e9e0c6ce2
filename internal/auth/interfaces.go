package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/mina/shiftbase/internal/database/models"
)

// Authenticator defines the interface for the signup/login/refresh flows.
type Authenticator interface {
	SignupOwner(ctx context.Context, input SignupOwnerInput) (*SignupResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, role string, storeID *uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(tokenString string) (*AccessClaims, error)
	ValidateRefreshToken(tokenString string) (*RefreshClaims, error)
}

// Compile-time interface satisfaction checks
var (
	_ Authenticator = (*Service)(nil)
	_ TokenService  = (*JWTService)(nil)
)
