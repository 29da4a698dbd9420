package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

type AppointmentService struct {
	policy
	appointmentRepo *repository.AppointmentRepository
	patients        *PatientService
	hospitals       *HospitalService
	vehicles        *VehicleService
	drivers         *DriverService
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	patients *PatientService,
	hospitals *HospitalService,
	vehicles *VehicleService,
	drivers *DriverService,
	p policy,
) *AppointmentService {
	return &AppointmentService{
		policy:          p,
		appointmentRepo: appointmentRepo,
		patients:        patients,
		hospitals:       hospitals,
		vehicles:        vehicles,
		drivers:         drivers,
	}
}

// AppointmentRequest schedules the transport of a patient. The scheduling
// user is taken from the caller, never from the payload.
type AppointmentRequest struct {
	ID                uint     `json:"id"`
	PatientID         uint     `json:"patient_id" validate:"required"`
	HospitalID        uint     `json:"hospital_id" validate:"required"`
	VehicleID         uint     `json:"vehicle_id" validate:"required"`
	DriverID          uint     `json:"driver_id" validate:"required"`
	RemovalDate       string   `json:"removal_date" validate:"required,notblank"`
	ExpectedDeparture string   `json:"expected_departure" validate:"required,notblank"`
	ReferralTypeID    *uint    `json:"referral_type_id"`
	DiseaseTypeID     *uint    `json:"disease_type_id"`
	RemovalTypeID     *uint    `json:"removal_type_id"`
	PatientGuardian   *string  `json:"patient_guardian"`
	PatientCondition  *string  `json:"patient_condition"`
	Notes             *string  `json:"notes"`
	IFDCost           *float64 `json:"ifd_cost"`
	StayCost          *float64 `json:"stay_cost"`
}

func (s *AppointmentService) List(ctx context.Context, actor permission.Actor) ([]models.Appointment, error) {
	if err := s.require(ctx, actor, permission.ViewAppointments, "user is not allowed to view appointments"); err != nil {
		return nil, err
	}
	appointments, err := s.appointmentRepo.GetAllAppointments(ctx)
	return appointments, s.storageError(err, "list appointments")
}

func (s *AppointmentService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.Appointment, error) {
	if err := s.require(ctx, actor, permission.ViewAppointments, "user is not allowed to view this appointment"); err != nil {
		return nil, err
	}
	appointment, err := s.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get appointment")
	}
	return appointment, nil
}

// Add schedules a transport; a patient can only be removed once per date
func (s *AppointmentService) Add(ctx context.Context, actor permission.Actor, req AppointmentRequest) (*models.Appointment, error) {
	if err := s.require(ctx, actor, permission.CreateAppointments, "user is not allowed to add appointments"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, actor.WithParent(permission.CreateAppointments), req); err != nil {
		return nil, err
	}

	taken, err := s.appointmentRepo.PatientScheduled(ctx, req.PatientID, req.RemovalDate, 0)
	if err != nil {
		return nil, s.storageError(err, "check appointment schedule")
	}
	if taken {
		return nil, apperror.Conflict("patient already has an appointment on this date")
	}

	appointment := &models.Appointment{
		PatientID:         req.PatientID,
		HospitalID:        req.HospitalID,
		VehicleID:         req.VehicleID,
		DriverID:          req.DriverID,
		UserID:            actor.UserID,
		RemovalDate:       req.RemovalDate,
		ExpectedDeparture: req.ExpectedDeparture,
	}
	applyAppointmentOptionals(appointment, req)
	if err := s.appointmentRepo.CreateAppointment(ctx, appointment); err != nil {
		return nil, s.storageError(err, "create appointment")
	}

	s.audit(ctx, actor, "appointment_create",
		fmt.Sprintf("Created appointment ID %d for patient %d on %s", appointment.ID, appointment.PatientID, appointment.RemovalDate))
	return appointment, nil
}

func (s *AppointmentService) Update(ctx context.Context, actor permission.Actor, id uint, req AppointmentRequest) (*models.Appointment, error) {
	if err := s.require(ctx, actor, permission.UpdateAppointments, "user is not allowed to update appointments"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	appointment, err := s.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get appointment")
	}
	if err := s.checkReferences(ctx, actor.WithParent(permission.UpdateAppointments), req); err != nil {
		return nil, err
	}

	taken, err := s.appointmentRepo.PatientScheduled(ctx, req.PatientID, req.RemovalDate, id)
	if err != nil {
		return nil, s.storageError(err, "check appointment schedule")
	}
	if taken {
		return nil, apperror.Conflict("patient already has another appointment on this date")
	}

	appointment.PatientID = req.PatientID
	appointment.HospitalID = req.HospitalID
	appointment.VehicleID = req.VehicleID
	appointment.DriverID = req.DriverID
	appointment.RemovalDate = req.RemovalDate
	appointment.ExpectedDeparture = req.ExpectedDeparture
	applyAppointmentOptionals(appointment, req)
	if err := s.appointmentRepo.UpdateAppointment(ctx, appointment); err != nil {
		return nil, s.storageError(err, "update appointment")
	}

	s.audit(ctx, actor, "appointment_update", fmt.Sprintf("Updated appointment ID %d", appointment.ID))
	return appointment, nil
}

// applyAppointmentOptionals copies the optional fields present in req
func applyAppointmentOptionals(a *models.Appointment, req AppointmentRequest) {
	a.ReferralTypeID = uintPtrOr(req.ReferralTypeID, a.ReferralTypeID)
	a.DiseaseTypeID = uintPtrOr(req.DiseaseTypeID, a.DiseaseTypeID)
	a.RemovalTypeID = uintPtrOr(req.RemovalTypeID, a.RemovalTypeID)
	a.PatientGuardian = stringOr(req.PatientGuardian, a.PatientGuardian)
	a.PatientCondition = stringOr(req.PatientCondition, a.PatientCondition)
	a.Notes = stringOr(req.Notes, a.Notes)
	a.IFDCost = floatOr(req.IFDCost, a.IFDCost)
	a.StayCost = floatOr(req.StayCost, a.StayCost)
}

func (s *AppointmentService) checkReferences(ctx context.Context, actor permission.Actor, req AppointmentRequest) error {
	if _, err := s.patients.GetByID(ctx, actor, req.PatientID); err != nil {
		return reference(err, "patient_id", "patient", req.PatientID)
	}
	if _, err := s.hospitals.GetByID(ctx, actor, req.HospitalID); err != nil {
		return reference(err, "hospital_id", "hospital", req.HospitalID)
	}
	if _, err := s.vehicles.GetByID(ctx, actor, req.VehicleID); err != nil {
		return reference(err, "vehicle_id", "vehicle", req.VehicleID)
	}
	if _, err := s.drivers.GetByID(ctx, actor, req.DriverID); err != nil {
		return reference(err, "driver_id", "driver", req.DriverID)
	}
	return nil
}
