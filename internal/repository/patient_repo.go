package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).Order("name ASC").Find(&patients).Error
	return patients, err
}

func (r *PatientRepository) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	return findByID[models.Patient](ctx, r.db, id, "patient not found")
}

func (r *PatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	return writeError(r.db.WithContext(ctx).Create(patient).Error)
}

func (r *PatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return writeError(r.db.WithContext(ctx).Save(patient).Error)
}

// HygiaExists checks whether another patient is registered with the hygia number
func (r *PatientRepository) HygiaExists(ctx context.Context, hygia string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.Patient{}, excludeID, "hygia = ?", hygia)
}

func (r *PatientRepository) CountPatients(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Patient{})
}

func (r *PatientRepository) LatestPatientNames(ctx context.Context, limit int) ([]string, error) {
	return latestNames(ctx, r.db, &models.Patient{}, "name", limit)
}
