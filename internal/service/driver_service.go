package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type DriverService struct {
	policy
	driverRepo *repository.DriverRepository
}

func NewDriverService(driverRepo *repository.DriverRepository, p policy) *DriverService {
	return &DriverService{policy: p, driverRepo: driverRepo}
}

type DriverRequest struct {
	ID            uint   `json:"id"`
	Name          string `json:"name" validate:"required,notblank"`
	LicenseNumber string `json:"license_number" validate:"required,notblank"`
	Phone         string `json:"phone" validate:"required,notblank"`
}

func (s *DriverService) List(ctx context.Context, actor permission.Actor) ([]models.Driver, error) {
	if err := s.require(ctx, actor, permission.ViewDrivers, "user is not allowed to view drivers"); err != nil {
		return nil, err
	}
	drivers, err := s.driverRepo.GetAllDrivers(ctx)
	return drivers, s.storageError(err, "list drivers")
}

func (s *DriverService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.Driver, error) {
	if err := s.require(ctx, actor, permission.ViewDrivers, "user is not allowed to view this driver"); err != nil {
		return nil, err
	}
	driver, err := s.driverRepo.GetDriverByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get driver")
	}
	return driver, nil
}

func (s *DriverService) Add(ctx context.Context, actor permission.Actor, req DriverRequest) (*models.Driver, error) {
	if err := s.require(ctx, actor, permission.CreateDrivers, "user is not allowed to add drivers"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	taken, err := s.driverRepo.LicenseExists(ctx, req.LicenseNumber, 0)
	if err != nil {
		return nil, s.storageError(err, "check driver license")
	}
	if taken {
		return nil, apperror.Conflict("driver already registered with this license number")
	}

	driver := &models.Driver{Name: req.Name, LicenseNumber: req.LicenseNumber, Phone: req.Phone}
	if err := s.driverRepo.CreateDriver(ctx, driver); err != nil {
		return nil, s.storageError(err, "create driver")
	}

	s.audit(ctx, actor, "driver_create", fmt.Sprintf("Created driver: %s (ID: %d)", driver.Name, driver.ID))
	return driver, nil
}

func (s *DriverService) Update(ctx context.Context, actor permission.Actor, id uint, req DriverRequest) (*models.Driver, error) {
	if err := s.require(ctx, actor, permission.UpdateDrivers, "user is not allowed to update drivers"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	driver, err := s.driverRepo.GetDriverByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get driver")
	}

	taken, err := s.driverRepo.LicenseExists(ctx, req.LicenseNumber, id)
	if err != nil {
		return nil, s.storageError(err, "check driver license")
	}
	if taken {
		return nil, apperror.Conflict("another driver is registered with this license number")
	}

	driver.Name = req.Name
	driver.LicenseNumber = req.LicenseNumber
	driver.Phone = req.Phone
	if err := s.driverRepo.UpdateDriver(ctx, driver); err != nil {
		return nil, s.storageError(err, "update driver")
	}

	s.audit(ctx, actor, "driver_update", fmt.Sprintf("Updated driver: %s (ID: %d)", driver.Name, driver.ID))
	return driver, nil
}
