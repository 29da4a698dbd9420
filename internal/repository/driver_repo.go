package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepo(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) GetAllDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	err := r.db.WithContext(ctx).Order("name ASC").Find(&drivers).Error
	return drivers, err
}

func (r *DriverRepository) GetDriverByID(ctx context.Context, id uint) (*models.Driver, error) {
	return findByID[models.Driver](ctx, r.db, id, "driver not found")
}

func (r *DriverRepository) CreateDriver(ctx context.Context, driver *models.Driver) error {
	return writeError(r.db.WithContext(ctx).Create(driver).Error)
}

func (r *DriverRepository) UpdateDriver(ctx context.Context, driver *models.Driver) error {
	return writeError(r.db.WithContext(ctx).Save(driver).Error)
}

// LicenseExists checks whether another driver holds the license number
func (r *DriverRepository) LicenseExists(ctx context.Context, license string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.Driver{}, excludeID, "license_number = ?", license)
}
