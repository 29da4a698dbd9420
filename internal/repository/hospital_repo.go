package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetAllHospitals retrieves all hospitals, newest first
func (r *HospitalRepository) GetAllHospitals(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.WithContext(ctx).Order("id DESC").Find(&hospitals).Error
	return hospitals, err
}

// GetHospitalByID retrieves a hospital by ID
func (r *HospitalRepository) GetHospitalByID(ctx context.Context, id uint) (*models.Hospital, error) {
	return findByID[models.Hospital](ctx, r.db, id, "hospital not found")
}

// CreateHospital creates a new hospital
func (r *HospitalRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	return writeError(r.db.WithContext(ctx).Create(hospital).Error)
}

// UpdateHospital updates an existing hospital
func (r *HospitalRepository) UpdateHospital(ctx context.Context, hospital *models.Hospital) error {
	return writeError(r.db.WithContext(ctx).Save(hospital).Error)
}

// NameExists checks whether the city already has a hospital with this name
func (r *HospitalRepository) NameExists(ctx context.Context, cityID uint, name string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.Hospital{}, excludeID, "city_id = ? AND name = ?", cityID, name)
}

func (r *HospitalRepository) CountHospitals(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Hospital{})
}

// LatestHospitalNames returns the names of the most recently registered hospitals
func (r *HospitalRepository) LatestHospitalNames(ctx context.Context, limit int) ([]string, error) {
	return latestNames(ctx, r.db, &models.Hospital{}, "name", limit)
}
