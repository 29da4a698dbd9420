package service

import (
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"

	"go.uber.org/zap"
)

// Services holds every service, wired in dependency order
type Services struct {
	Checker      *permission.Checker
	Auth         *AuthService
	Countries    *CountryService
	States       *StateService
	Cities       *CityService
	Hospitals    *HospitalService
	Vehicles     *VehicleService
	Drivers      *DriverService
	Patients     *PatientService
	Appointments *AppointmentService
	Groups       *GroupService
	Users        *UserService
	Dashboard    *DashboardService
}

// New builds the services over repos. sessions backs token validation and
// may be repos.Sessions or a Redis store.
func New(repos *repository.Repositories, sessions SessionStore, logger *zap.Logger) *Services {
	checker := permission.NewChecker(repos.Permissions, logger)
	p := newPolicy(checker, repos.Audit, logger)

	s := &Services{Checker: checker}
	s.Auth = NewAuthService(repos.Users, sessions, repos.Audit, logger)
	s.Countries = NewCountryService(repos.Countries, p)
	s.States = NewStateService(repos.States, s.Countries, p)
	s.Cities = NewCityService(repos.Cities, s.States, p)
	s.Hospitals = NewHospitalService(repos.Hospitals, s.Cities, p)
	s.Vehicles = NewVehicleService(repos.Vehicles, p)
	s.Drivers = NewDriverService(repos.Drivers, p)
	s.Patients = NewPatientService(repos.Patients, s.Cities, p)
	s.Appointments = NewAppointmentService(repos.Appointments, s.Patients, s.Hospitals, s.Vehicles, s.Drivers, p)
	s.Groups = NewGroupService(repos.Groups, repos.Permissions, p)
	s.Users = NewUserService(repos.Users, s.Groups, p)
	s.Dashboard = NewDashboardService(repos.Hospitals, repos.Patients, repos.Appointments, p)
	return s
}
