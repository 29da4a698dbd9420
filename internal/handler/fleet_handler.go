package handler

import (
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/service"

	"go.uber.org/zap"
)

type VehicleHandler struct {
	resource[models.Vehicle, service.VehicleRequest]
}

func NewVehicleHandler(vehicleService *service.VehicleService, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{newResource[models.Vehicle, service.VehicleRequest]("vehicle", vehicleService, logger)}
}

type DriverHandler struct {
	resource[models.Driver, service.DriverRequest]
}

func NewDriverHandler(driverService *service.DriverService, logger *zap.Logger) *DriverHandler {
	return &DriverHandler{newResource[models.Driver, service.DriverRequest]("driver", driverService, logger)}
}
