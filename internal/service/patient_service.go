package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type PatientService struct {
	policy
	patientRepo *repository.PatientRepository
	cities      *CityService
}

func NewPatientService(patientRepo *repository.PatientRepository, cities *CityService, p policy) *PatientService {
	return &PatientService{policy: p, patientRepo: patientRepo, cities: cities}
}

// PatientRequest carries a patient. Hygia is the health-system identifier.
type PatientRequest struct {
	ID         uint    `json:"id"`
	CityID     uint    `json:"city_id" validate:"required"`
	Name       string  `json:"name" validate:"required,notblank"`
	BirthDate  string  `json:"birth_date" validate:"required,notblank"`
	Phone1     string  `json:"phone_1" validate:"required,notblank"`
	Phone2     *string `json:"phone_2"`
	Street     string  `json:"street" validate:"required,notblank"`
	Number     string  `json:"number" validate:"required,notblank"`
	Complement *string `json:"complement"`
	ZipCode    *string `json:"zip_code"`
	Hygia      string  `json:"hygia" validate:"required,notblank"`
}

func (s *PatientService) List(ctx context.Context, actor permission.Actor) ([]models.Patient, error) {
	if err := s.require(ctx, actor, permission.ViewPatients, "user is not allowed to view patients"); err != nil {
		return nil, err
	}
	patients, err := s.patientRepo.GetAllPatients(ctx)
	return patients, s.storageError(err, "list patients")
}

func (s *PatientService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.Patient, error) {
	if err := s.require(ctx, actor, permission.ViewPatients, "user is not allowed to view this patient"); err != nil {
		return nil, err
	}
	patient, err := s.patientRepo.GetPatientByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get patient")
	}
	return patient, nil
}

func (s *PatientService) Add(ctx context.Context, actor permission.Actor, req PatientRequest) (*models.Patient, error) {
	if err := s.require(ctx, actor, permission.CreatePatients, "user is not allowed to add patients"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkCity(ctx, actor.WithParent(permission.CreatePatients), req.CityID); err != nil {
		return nil, err
	}

	taken, err := s.patientRepo.HygiaExists(ctx, req.Hygia, 0)
	if err != nil {
		return nil, s.storageError(err, "check patient hygia")
	}
	if taken {
		return nil, apperror.Conflict("patient already registered with this hygia")
	}

	patient := &models.Patient{
		CityID:     req.CityID,
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		Phone1:     req.Phone1,
		Phone2:     stringOr(req.Phone2, ""),
		Street:     req.Street,
		Number:     req.Number,
		Complement: stringOr(req.Complement, ""),
		ZipCode:    stringOr(req.ZipCode, ""),
		Hygia:      req.Hygia,
	}
	if err := s.patientRepo.CreatePatient(ctx, patient); err != nil {
		return nil, s.storageError(err, "create patient")
	}

	s.audit(ctx, actor, "patient_create", fmt.Sprintf("Created patient: %s (ID: %d)", patient.Name, patient.ID))
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, actor permission.Actor, id uint, req PatientRequest) (*models.Patient, error) {
	if err := s.require(ctx, actor, permission.UpdatePatients, "user is not allowed to update patients"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.GetPatientByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get patient")
	}
	if err := s.checkCity(ctx, actor.WithParent(permission.UpdatePatients), req.CityID); err != nil {
		return nil, err
	}

	taken, err := s.patientRepo.HygiaExists(ctx, req.Hygia, id)
	if err != nil {
		return nil, s.storageError(err, "check patient hygia")
	}
	if taken {
		return nil, apperror.Conflict("another patient is registered with this hygia")
	}

	patient.CityID = req.CityID
	patient.Name = req.Name
	patient.BirthDate = req.BirthDate
	patient.Phone1 = req.Phone1
	patient.Phone2 = stringOr(req.Phone2, patient.Phone2)
	patient.Street = req.Street
	patient.Number = req.Number
	patient.Complement = stringOr(req.Complement, patient.Complement)
	patient.ZipCode = stringOr(req.ZipCode, patient.ZipCode)
	patient.Hygia = req.Hygia
	if err := s.patientRepo.UpdatePatient(ctx, patient); err != nil {
		return nil, s.storageError(err, "update patient")
	}

	s.audit(ctx, actor, "patient_update", fmt.Sprintf("Updated patient: %s (ID: %d)", patient.Name, patient.ID))
	return patient, nil
}

func (s *PatientService) checkCity(ctx context.Context, actor permission.Actor, cityID uint) error {
	_, err := s.cities.GetByID(ctx, actor, cityID)
	return reference(err, "city_id", "city", cityID)
}
