package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type CountryService struct {
	policy
	countryRepo *repository.CountryRepository
}

func NewCountryService(countryRepo *repository.CountryRepository, p policy) *CountryService {
	return &CountryService{policy: p, countryRepo: countryRepo}
}

// CountryRequest is the payload for adding or updating a country
type CountryRequest struct {
	ID      uint   `json:"id"`
	Name    string `json:"name" validate:"required,notblank"`
	Acronym string `json:"acronym" validate:"required,notblank"`
}

func (s *CountryService) List(ctx context.Context, actor permission.Actor) ([]models.Country, error) {
	if err := s.require(ctx, actor, permission.ViewCountries, "user is not allowed to view countries"); err != nil {
		return nil, err
	}
	countries, err := s.countryRepo.GetAllCountries(ctx)
	return countries, s.storageError(err, "list countries")
}

// GetByID honours the actor's parent permission so other services can resolve references
func (s *CountryService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.Country, error) {
	if err := s.require(ctx, actor, permission.ViewCountries, "user is not allowed to view this country"); err != nil {
		return nil, err
	}
	country, err := s.countryRepo.GetCountryByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get country")
	}
	return country, nil
}

func (s *CountryService) Add(ctx context.Context, actor permission.Actor, req CountryRequest) (*models.Country, error) {
	if err := s.require(ctx, actor, permission.CreateCountries, "user is not allowed to add countries"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	taken, err := s.countryRepo.NameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, s.storageError(err, "check country name")
	}
	if taken {
		return nil, apperror.Conflict("country already registered with this name")
	}

	country := &models.Country{Name: req.Name, Acronym: req.Acronym}
	if err := s.countryRepo.CreateCountry(ctx, country); err != nil {
		return nil, s.storageError(err, "create country")
	}

	s.audit(ctx, actor, "country_create", fmt.Sprintf("Created country: %s (ID: %d)", country.Name, country.ID))
	return country, nil
}

func (s *CountryService) Update(ctx context.Context, actor permission.Actor, id uint, req CountryRequest) (*models.Country, error) {
	if err := s.require(ctx, actor, permission.UpdateCountries, "user is not allowed to update countries"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	country, err := s.countryRepo.GetCountryByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get country")
	}

	taken, err := s.countryRepo.NameExists(ctx, req.Name, id)
	if err != nil {
		return nil, s.storageError(err, "check country name")
	}
	if taken {
		return nil, apperror.Conflict("another country is registered with this name")
	}

	country.Name = req.Name
	country.Acronym = req.Acronym
	if err := s.countryRepo.UpdateCountry(ctx, country); err != nil {
		return nil, s.storageError(err, "update country")
	}

	s.audit(ctx, actor, "country_update", fmt.Sprintf("Updated country: %s (ID: %d)", country.Name, country.ID))
	return country, nil
}
