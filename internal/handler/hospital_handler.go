package handler

import (
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/service"

	"go.uber.org/zap"
)

type HospitalHandler struct {
	resource[models.Hospital, service.HospitalRequest]
}

func NewHospitalHandler(hospitalService *service.HospitalService, logger *zap.Logger) *HospitalHandler {
	return &HospitalHandler{
		resource: newResource[models.Hospital, service.HospitalRequest]("hospital", hospitalService, logger),
	}
}
