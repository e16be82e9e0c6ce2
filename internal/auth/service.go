package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mina/shiftbase/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is not active")
)

type Service struct {
	db    *gorm.DB
	users UserRepository
	jwt   TokenService
}

func NewService(db *gorm.DB, users UserRepository, jwt TokenService) *Service {
	return &Service{db: db, users: users, jwt: jwt}
}

type SignupOwnerInput struct {
	Email     string
	Password  string
	Name      string
	Phone     string
	StoreName string
	StoreType models.StoreType
}

type LoginInput struct {
	Email    string
	Password string
}

// SignupResult carries the created records plus an inline-issued token pair,
// so the client does not need a second login round trip.
type SignupResult struct {
	User         *models.User
	Store        *models.Store
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// NormalizeEmail is applied before every store and lookup, so email
// comparison is always exact-match against the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupOwner creates an OWNER user and their first store atomically. The
// password is hashed before the transaction opens; hashing is slow on
// purpose and must not hold a connection.
func (s *Service) SignupOwner(ctx context.Context, input SignupOwnerInput) (*SignupResult, error) {
	email := NormalizeEmail(input.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	storeType := input.StoreType
	if storeType == "" {
		storeType = models.StoreTypeOther
	}

	var user models.User
	var store models.Store
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Email:        email,
			PasswordHash: hash,
			Name:         input.Name,
			Phone:        input.Phone,
			Role:         models.RoleOwner,
			Status:       models.UserStatusActive,
		}
		if err := s.users.WithTx(tx).Create(ctx, &user); err != nil {
			return err
		}

		store = models.Store{
			OwnerID:   user.ID,
			Name:      input.StoreName,
			Type:      storeType,
			GPSRadius: models.DefaultGPSRadius,
			Status:    models.StoreStatusActive,
		}
		return tx.Create(&store).Error
	})
	if err != nil {
		// Two concurrent signups with the same email race past the lookup
		// above; the unique index decides the winner.
		if errors.Is(err, ErrEmailTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, string(user.Role), &store.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &SignupResult{
		User:         &user,
		Store:        &store,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies credentials and issues an access/refresh token pair.
// Unknown email and wrong password fail with the same error so neither
// factor is revealed.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status != models.UserStatusActive {
		return nil, ErrInactiveUser
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	storeID, err := s.resolveOwnerStoreID(ctx, user)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, string(user.Role), storeID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is not rotated; expiry is its only termination mechanism.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	storeID, err := s.resolveOwnerStoreID(ctx, user)
	if err != nil {
		return "", err
	}

	return s.jwt.GenerateAccessToken(user.ID, string(user.Role), storeID)
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// resolveOwnerStoreID picks the store claim for owners: the earliest-created
// store they own, nil when they own none or are not an owner.
func (s *Service) resolveOwnerStoreID(ctx context.Context, user *models.User) (*uuid.UUID, error) {
	if user.Role != models.RoleOwner {
		return nil, nil
	}

	var store models.Store
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", user.ID).
		Order("created_at ASC").
		First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store.ID, nil
}
