package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepo(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) GetAllVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).Order("model ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) GetVehicleByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	return findByID[models.Vehicle](ctx, r.db, id, "vehicle not found")
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return writeError(r.db.WithContext(ctx).Create(vehicle).Error)
}

func (r *VehicleRepository) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return writeError(r.db.WithContext(ctx).Save(vehicle).Error)
}

// PlateExists checks whether another vehicle is registered with the plate
func (r *VehicleRepository) PlateExists(ctx context.Context, plate string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.Vehicle{}, excludeID, "plate = ?", plate)
}
