package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// GetAllAppointments retrieves all appointments, newest first
func (r *AppointmentRepository) GetAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).Order("id DESC").Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return findByID[models.Appointment](ctx, r.db, id, "appointment not found")
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return writeError(r.db.WithContext(ctx).Create(appointment).Error)
}

func (r *AppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return writeError(r.db.WithContext(ctx).Save(appointment).Error)
}

// PatientScheduled checks whether the patient already has a transport on the date
func (r *AppointmentRepository) PatientScheduled(ctx context.Context, patientID uint, removalDate string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.Appointment{}, excludeID,
		"patient_id = ? AND removal_date = ?", patientID, removalDate)
}

func (r *AppointmentRepository) CountAppointments(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Appointment{})
}

// LatestPatientNames returns the patient names of the newest appointments
func (r *AppointmentRepository) LatestPatientNames(ctx context.Context, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Joins("INNER JOIN patients ON patients.id = appointments.patient_id").
		Order("appointments.id DESC").
		Limit(limit).
		Pluck("patients.name", &names).Error
	return names, err
}
