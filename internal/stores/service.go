package stores

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mina/shiftbase/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound = errors.New("store not found")
	// ErrAccessDenied is uniform for every non-member, whether or not an
	// employment row ever existed.
	ErrAccessDenied = errors.New("access to store denied")
)

type Service struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewService(db *gorm.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CheckStoreAccess allows the store's owner and its ACTIVE employees. It
// runs before any store read or mutation.
func (s *Service) CheckStoreAccess(ctx context.Context, storeID, userID uuid.UUID) error {
	var store models.Store
	if err := s.db.WithContext(ctx).First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	if store.OwnerID == userID {
		return nil
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("store_id = ? AND user_id = ? AND status = ?", storeID, userID, models.EmployeeStatusActive).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrAccessDenied
	}
	return nil
}

// ListForUser returns the stores the user owns plus the ones they actively
// work at, oldest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Store, error) {
	var result []models.Store
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Or("id IN (?)", s.db.Model(&models.Employee{}).
			Select("store_id").
			Where("user_id = ? AND status = ?", userID, models.EmployeeStatusActive)).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) GetStore(ctx context.Context, storeID, userID uuid.UUID) (*models.Store, error) {
	if err := s.CheckStoreAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	var store models.Store
	if err := s.db.WithContext(ctx).First(&store, "id = ?", storeID).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// UpdateStoreInput holds the mutable store fields; nil means leave as is.
type UpdateStoreInput struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
	GPSRadius *int
	Status    *models.StoreStatus
}

func (s *Service) UpdateStore(ctx context.Context, storeID, userID uuid.UUID, input UpdateStoreInput) (*models.Store, error) {
	if err := s.CheckStoreAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	var store models.Store
	if err := s.db.WithContext(ctx).First(&store, "id = ?", storeID).Error; err != nil {
		return nil, err
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Address != nil {
		store.Address = *input.Address
	}
	if input.Latitude != nil {
		store.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		store.Longitude = input.Longitude
	}
	if input.GPSRadius != nil {
		store.GPSRadius = *input.GPSRadius
	}
	if input.Status != nil {
		store.Status = *input.Status
	}

	if err := s.db.WithContext(ctx).Save(&store).Error; err != nil {
		return nil, err
	}

	s.logger.Info("store updated", "store_id", storeID, "user_id", userID)
	return &store, nil
}

// ListEmployees returns the store's full roster, any status, with the user
// record preloaded for display.
func (s *Service) ListEmployees(ctx context.Context, storeID, userID uuid.UUID) ([]models.Employee, error) {
	if err := s.CheckStoreAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	var employees []models.Employee
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ?", storeID).
		Order("hired_at ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}
