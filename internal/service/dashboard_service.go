package service

import (
	"context"

	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

const (
	dashboardLatest = 4
	dashboardFiller = ".."
)

type DashboardService struct {
	policy
	hospitalRepo    *repository.HospitalRepository
	patientRepo     *repository.PatientRepository
	appointmentRepo *repository.AppointmentRepository
}

func NewDashboardService(
	hospitalRepo *repository.HospitalRepository,
	patientRepo *repository.PatientRepository,
	appointmentRepo *repository.AppointmentRepository,
	p policy,
) *DashboardService {
	return &DashboardService{
		policy:          p,
		hospitalRepo:    hospitalRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Dashboard summarizes the registered data. Latest lists always hold four
// entries, newest first, padded with "..".
type Dashboard struct {
	Hospitals          int64    `json:"hospitals"`
	Patients           int64    `json:"patients"`
	Appointments       int64    `json:"appointments"`
	LatestHospitals    []string `json:"latest_hospitals"`
	LatestPatients     []string `json:"latest_patients"`
	LatestAppointments []string `json:"latest_appointments"`
}

func (s *DashboardService) Get(ctx context.Context, actor permission.Actor) (*Dashboard, error) {
	if err := s.require(ctx, actor, permission.ViewDashboard, "user is not allowed to view the dashboard"); err != nil {
		return nil, err
	}

	var (
		d   Dashboard
		err error
	)
	if d.Hospitals, err = s.hospitalRepo.CountHospitals(ctx); err != nil {
		return nil, s.storageError(err, "count hospitals")
	}
	if d.Patients, err = s.patientRepo.CountPatients(ctx); err != nil {
		return nil, s.storageError(err, "count patients")
	}
	if d.Appointments, err = s.appointmentRepo.CountAppointments(ctx); err != nil {
		return nil, s.storageError(err, "count appointments")
	}

	hospitals, err := s.hospitalRepo.LatestHospitalNames(ctx, dashboardLatest)
	if err != nil {
		return nil, s.storageError(err, "list latest hospitals")
	}
	patients, err := s.patientRepo.LatestPatientNames(ctx, dashboardLatest)
	if err != nil {
		return nil, s.storageError(err, "list latest patients")
	}
	appointments, err := s.appointmentRepo.LatestPatientNames(ctx, dashboardLatest)
	if err != nil {
		return nil, s.storageError(err, "list latest appointments")
	}

	d.LatestHospitals = padLatest(hospitals, dashboardLatest)
	d.LatestPatients = padLatest(patients, dashboardLatest)
	d.LatestAppointments = padLatest(appointments, dashboardLatest)
	return &d, nil
}

// padLatest returns exactly n names, filling the tail with ".."
func padLatest(names []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(names) {
			out[i] = names[i]
		} else {
			out[i] = dashboardFiller
		}
	}
	return out
}
