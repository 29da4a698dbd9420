package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type StateService struct {
	policy
	stateRepo *repository.StateRepository
	countries *CountryService
}

func NewStateService(stateRepo *repository.StateRepository, countries *CountryService, p policy) *StateService {
	return &StateService{policy: p, stateRepo: stateRepo, countries: countries}
}

type StateRequest struct {
	ID        uint   `json:"id"`
	CountryID uint   `json:"country_id" validate:"required"`
	Name      string `json:"name" validate:"required,notblank"`
	Acronym   string `json:"acronym" validate:"required,notblank"`
}

func (s *StateService) List(ctx context.Context, actor permission.Actor) ([]models.State, error) {
	if err := s.require(ctx, actor, permission.ViewStates, "user is not allowed to view states"); err != nil {
		return nil, err
	}
	states, err := s.stateRepo.GetAllStates(ctx)
	return states, s.storageError(err, "list states")
}

func (s *StateService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.State, error) {
	if err := s.require(ctx, actor, permission.ViewStates, "user is not allowed to view this state"); err != nil {
		return nil, err
	}
	state, err := s.stateRepo.GetStateByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get state")
	}
	return state, nil
}

func (s *StateService) Add(ctx context.Context, actor permission.Actor, req StateRequest) (*models.State, error) {
	if err := s.require(ctx, actor, permission.CreateStates, "user is not allowed to add states"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkCountry(ctx, actor.WithParent(permission.CreateStates), req.CountryID); err != nil {
		return nil, err
	}

	taken, err := s.stateRepo.NameExists(ctx, req.CountryID, req.Name, 0)
	if err != nil {
		return nil, s.storageError(err, "check state name")
	}
	if taken {
		return nil, apperror.Conflict("state already registered for this country")
	}

	state := &models.State{CountryID: req.CountryID, Name: req.Name, Acronym: req.Acronym}
	if err := s.stateRepo.CreateState(ctx, state); err != nil {
		return nil, s.storageError(err, "create state")
	}

	s.audit(ctx, actor, "state_create", fmt.Sprintf("Created state: %s (ID: %d)", state.Name, state.ID))
	return state, nil
}

func (s *StateService) Update(ctx context.Context, actor permission.Actor, id uint, req StateRequest) (*models.State, error) {
	if err := s.require(ctx, actor, permission.UpdateStates, "user is not allowed to update states"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	state, err := s.stateRepo.GetStateByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get state")
	}
	if err := s.checkCountry(ctx, actor.WithParent(permission.UpdateStates), req.CountryID); err != nil {
		return nil, err
	}

	taken, err := s.stateRepo.NameExists(ctx, req.CountryID, req.Name, id)
	if err != nil {
		return nil, s.storageError(err, "check state name")
	}
	if taken {
		return nil, apperror.Conflict("another state is registered with this name for the country")
	}

	state.CountryID = req.CountryID
	state.Name = req.Name
	state.Acronym = req.Acronym
	if err := s.stateRepo.UpdateState(ctx, state); err != nil {
		return nil, s.storageError(err, "update state")
	}

	s.audit(ctx, actor, "state_update", fmt.Sprintf("Updated state: %s (ID: %d)", state.Name, state.ID))
	return state, nil
}

func (s *StateService) checkCountry(ctx context.Context, actor permission.Actor, countryID uint) error {
	_, err := s.countries.GetByID(ctx, actor, countryID)
	return reference(err, "country_id", "country", countryID)
}
