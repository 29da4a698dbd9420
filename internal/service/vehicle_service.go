package service

import (
	"context"
	"fmt"
	"strings"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type VehicleService struct {
	policy
	vehicleRepo *repository.VehicleRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository, p policy) *VehicleService {
	return &VehicleService{policy: p, vehicleRepo: vehicleRepo}
}

type VehicleRequest struct {
	ID    uint    `json:"id"`
	Model string  `json:"model" validate:"required,notblank"`
	Plate string  `json:"plate" validate:"required,notblank"`
	Seats *int    `json:"seats"`
	Notes *string `json:"notes"`
}

func (s *VehicleService) List(ctx context.Context, actor permission.Actor) ([]models.Vehicle, error) {
	if err := s.require(ctx, actor, permission.ViewVehicles, "user is not allowed to view vehicles"); err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleRepo.GetAllVehicles(ctx)
	return vehicles, s.storageError(err, "list vehicles")
}

func (s *VehicleService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.Vehicle, error) {
	if err := s.require(ctx, actor, permission.ViewVehicles, "user is not allowed to view this vehicle"); err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get vehicle")
	}
	return vehicle, nil
}

// Add registers a vehicle; plates are stored upper case
func (s *VehicleService) Add(ctx context.Context, actor permission.Actor, req VehicleRequest) (*models.Vehicle, error) {
	if err := s.require(ctx, actor, permission.CreateVehicles, "user is not allowed to add vehicles"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	plate := normalizePlate(req.Plate)

	taken, err := s.vehicleRepo.PlateExists(ctx, plate, 0)
	if err != nil {
		return nil, s.storageError(err, "check vehicle plate")
	}
	if taken {
		return nil, apperror.Conflict("vehicle already registered with this plate")
	}

	vehicle := &models.Vehicle{
		Model: req.Model,
		Plate: plate,
		Seats: intOr(req.Seats, 0),
		Notes: stringOr(req.Notes, ""),
	}
	if err := s.vehicleRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, s.storageError(err, "create vehicle")
	}

	s.audit(ctx, actor, "vehicle_create", fmt.Sprintf("Created vehicle: %s (ID: %d)", vehicle.Plate, vehicle.ID))
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, actor permission.Actor, id uint, req VehicleRequest) (*models.Vehicle, error) {
	if err := s.require(ctx, actor, permission.UpdateVehicles, "user is not allowed to update vehicles"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get vehicle")
	}

	plate := normalizePlate(req.Plate)
	taken, err := s.vehicleRepo.PlateExists(ctx, plate, id)
	if err != nil {
		return nil, s.storageError(err, "check vehicle plate")
	}
	if taken {
		return nil, apperror.Conflict("another vehicle is registered with this plate")
	}

	vehicle.Model = req.Model
	vehicle.Plate = plate
	vehicle.Seats = intOr(req.Seats, vehicle.Seats)
	vehicle.Notes = stringOr(req.Notes, vehicle.Notes)
	if err := s.vehicleRepo.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, s.storageError(err, "update vehicle")
	}

	s.audit(ctx, actor, "vehicle_update", fmt.Sprintf("Updated vehicle: %s (ID: %d)", vehicle.Plate, vehicle.ID))
	return vehicle, nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}
