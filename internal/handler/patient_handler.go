package handler

import (
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/service"

	"go.uber.org/zap"
)

type PatientHandler struct {
	resource[models.Patient, service.PatientRequest]
}

func NewPatientHandler(patientService *service.PatientService, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{newResource[models.Patient, service.PatientRequest]("patient", patientService, logger)}
}

type AppointmentHandler struct {
	resource[models.Appointment, service.AppointmentRequest]
}

func NewAppointmentHandler(appointmentService *service.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{newResource[models.Appointment, service.AppointmentRequest]("appointment", appointmentService, logger)}
}
