package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type HospitalService struct {
	policy
	hospitalRepo *repository.HospitalRepository
	cities       *CityService
}

func NewHospitalService(hospitalRepo *repository.HospitalRepository, cities *CityService, p policy) *HospitalService {
	return &HospitalService{policy: p, hospitalRepo: hospitalRepo, cities: cities}
}

// HospitalRequest carries a hospital. Optional fields left out of an
// update keep their stored value.
type HospitalRequest struct {
	ID         uint    `json:"id"`
	CityID     uint    `json:"city_id" validate:"required"`
	Name       string  `json:"name" validate:"required,notblank"`
	Street     string  `json:"street" validate:"required,notblank"`
	Number     string  `json:"number" validate:"required,notblank"`
	Complement *string `json:"complement"`
	ZipCode    *string `json:"zip_code"`
	Phone      *string `json:"phone"`
}

// List retrieves all hospitals
func (s *HospitalService) List(ctx context.Context, actor permission.Actor) ([]models.Hospital, error) {
	if err := s.require(ctx, actor, permission.ViewHospitals, "user is not allowed to view hospitals"); err != nil {
		return nil, err
	}
	hospitals, err := s.hospitalRepo.GetAllHospitals(ctx)
	return hospitals, s.storageError(err, "list hospitals")
}

// GetByID retrieves a hospital by ID
func (s *HospitalService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.Hospital, error) {
	if err := s.require(ctx, actor, permission.ViewHospitals, "user is not allowed to view this hospital"); err != nil {
		return nil, err
	}
	hospital, err := s.hospitalRepo.GetHospitalByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get hospital")
	}
	return hospital, nil
}

// Add creates a new hospital in an existing city
func (s *HospitalService) Add(ctx context.Context, actor permission.Actor, req HospitalRequest) (*models.Hospital, error) {
	if err := s.require(ctx, actor, permission.CreateHospitals, "user is not allowed to add hospitals"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkCity(ctx, actor.WithParent(permission.CreateHospitals), req.CityID); err != nil {
		return nil, err
	}

	taken, err := s.hospitalRepo.NameExists(ctx, req.CityID, req.Name, 0)
	if err != nil {
		return nil, s.storageError(err, "check hospital name")
	}
	if taken {
		return nil, apperror.Conflict("hospital already registered in this city")
	}

	hospital := &models.Hospital{
		CityID:     req.CityID,
		Name:       req.Name,
		Street:     req.Street,
		Number:     req.Number,
		Complement: stringOr(req.Complement, ""),
		ZipCode:    stringOr(req.ZipCode, ""),
		Phone:      stringOr(req.Phone, ""),
	}
	if err := s.hospitalRepo.CreateHospital(ctx, hospital); err != nil {
		return nil, s.storageError(err, "create hospital")
	}

	s.audit(ctx, actor, "hospital_create", fmt.Sprintf("Created hospital: %s (ID: %d)", hospital.Name, hospital.ID))
	return hospital, nil
}

// Update updates an existing hospital
func (s *HospitalService) Update(ctx context.Context, actor permission.Actor, id uint, req HospitalRequest) (*models.Hospital, error) {
	if err := s.require(ctx, actor, permission.UpdateHospitals, "user is not allowed to update hospitals"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Verify hospital exists
	hospital, err := s.hospitalRepo.GetHospitalByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get hospital")
	}
	if err := s.checkCity(ctx, actor.WithParent(permission.UpdateHospitals), req.CityID); err != nil {
		return nil, err
	}

	taken, err := s.hospitalRepo.NameExists(ctx, req.CityID, req.Name, id)
	if err != nil {
		return nil, s.storageError(err, "check hospital name")
	}
	if taken {
		return nil, apperror.Conflict("another hospital is registered with this name in the city")
	}

	hospital.CityID = req.CityID
	hospital.Name = req.Name
	hospital.Street = req.Street
	hospital.Number = req.Number
	hospital.Complement = stringOr(req.Complement, hospital.Complement)
	hospital.ZipCode = stringOr(req.ZipCode, hospital.ZipCode)
	hospital.Phone = stringOr(req.Phone, hospital.Phone)
	if err := s.hospitalRepo.UpdateHospital(ctx, hospital); err != nil {
		return nil, s.storageError(err, "update hospital")
	}

	s.audit(ctx, actor, "hospital_update", fmt.Sprintf("Updated hospital: %s (ID: %d)", hospital.Name, hospital.ID))
	return hospital, nil
}

func (s *HospitalService) checkCity(ctx context.Context, actor permission.Actor, cityID uint) error {
	_, err := s.cities.GetByID(ctx, actor, cityID)
	return reference(err, "city_id", "city", cityID)
}
