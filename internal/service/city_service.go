package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type CityService struct {
	policy
	cityRepo *repository.CityRepository
	states   *StateService
}

func NewCityService(cityRepo *repository.CityRepository, states *StateService, p policy) *CityService {
	return &CityService{policy: p, cityRepo: cityRepo, states: states}
}

type CityRequest struct {
	ID      uint   `json:"id"`
	StateID uint   `json:"state_id" validate:"required"`
	Name    string `json:"name" validate:"required,notblank"`
}

func (s *CityService) List(ctx context.Context, actor permission.Actor) ([]models.City, error) {
	if err := s.require(ctx, actor, permission.ViewCities, "user is not allowed to view cities"); err != nil {
		return nil, err
	}
	cities, err := s.cityRepo.GetAllCities(ctx)
	return cities, s.storageError(err, "list cities")
}

// GetByID is also used by hospitals and patients to validate their city
// under the caller's permission
func (s *CityService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.City, error) {
	if err := s.require(ctx, actor, permission.ViewCities, "user is not allowed to view this city"); err != nil {
		return nil, err
	}
	city, err := s.cityRepo.GetCityByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get city")
	}
	return city, nil
}

func (s *CityService) Add(ctx context.Context, actor permission.Actor, req CityRequest) (*models.City, error) {
	if err := s.require(ctx, actor, permission.CreateCities, "user is not allowed to add cities"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkState(ctx, actor.WithParent(permission.CreateCities), req.StateID); err != nil {
		return nil, err
	}

	taken, err := s.cityRepo.NameExists(ctx, req.StateID, req.Name, 0)
	if err != nil {
		return nil, s.storageError(err, "check city name")
	}
	if taken {
		return nil, apperror.Conflict("city already registered for this state")
	}

	city := &models.City{StateID: req.StateID, Name: req.Name}
	if err := s.cityRepo.CreateCity(ctx, city); err != nil {
		return nil, s.storageError(err, "create city")
	}

	s.audit(ctx, actor, "city_create", fmt.Sprintf("Created city: %s (ID: %d)", city.Name, city.ID))
	return city, nil
}

func (s *CityService) Update(ctx context.Context, actor permission.Actor, id uint, req CityRequest) (*models.City, error) {
	if err := s.require(ctx, actor, permission.UpdateCities, "user is not allowed to update cities"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	city, err := s.cityRepo.GetCityByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get city")
	}
	if err := s.checkState(ctx, actor.WithParent(permission.UpdateCities), req.StateID); err != nil {
		return nil, err
	}

	taken, err := s.cityRepo.NameExists(ctx, req.StateID, req.Name, id)
	if err != nil {
		return nil, s.storageError(err, "check city name")
	}
	if taken {
		return nil, apperror.Conflict("another city is registered with this name for the state")
	}

	city.StateID = req.StateID
	city.Name = req.Name
	if err := s.cityRepo.UpdateCity(ctx, city); err != nil {
		return nil, s.storageError(err, "update city")
	}

	s.audit(ctx, actor, "city_update", fmt.Sprintf("Updated city: %s (ID: %d)", city.Name, city.ID))
	return city, nil
}

func (s *CityService) checkState(ctx context.Context, actor permission.Actor, stateID uint) error {
	_, err := s.states.GetByID(ctx, actor, stateID)
	return reference(err, "state_id", "state", stateID)
}
