package handler

import (
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/service"

	"go.uber.org/zap"
)

type CountryHandler struct {
	resource[models.Country, service.CountryRequest]
}

func NewCountryHandler(countryService *service.CountryService, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{newResource[models.Country, service.CountryRequest]("country", countryService, logger)}
}

type StateHandler struct {
	resource[models.State, service.StateRequest]
}

func NewStateHandler(stateService *service.StateService, logger *zap.Logger) *StateHandler {
	return &StateHandler{newResource[models.State, service.StateRequest]("state", stateService, logger)}
}

type CityHandler struct {
	resource[models.City, service.CityRequest]
}

func NewCityHandler(cityService *service.CityService, logger *zap.Logger) *CityHandler {
	return &CityHandler{newResource[models.City, service.CityRequest]("city", cityService, logger)}
}
