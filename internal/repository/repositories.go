package repository

import "gorm.io/gorm"

// Repositories groups every GORM repository over one connection
type Repositories struct {
	Countries    *CountryRepository
	States       *StateRepository
	Cities       *CityRepository
	Hospitals    *HospitalRepository
	Vehicles     *VehicleRepository
	Drivers      *DriverRepository
	Patients     *PatientRepository
	Appointments *AppointmentRepository
	Groups       *GroupRepository
	Permissions  *PermissionRepository
	Users        *UserRepository
	Sessions     *SessionRepository
	Audit        *AuditRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Countries:    NewCountryRepo(db),
		States:       NewStateRepo(db),
		Cities:       NewCityRepo(db),
		Hospitals:    NewHospitalRepo(db),
		Vehicles:     NewVehicleRepo(db),
		Drivers:      NewDriverRepo(db),
		Patients:     NewPatientRepo(db),
		Appointments: NewAppointmentRepo(db),
		Groups:       NewGroupRepo(db),
		Permissions:  NewPermissionRepo(db),
		Users:        NewUserRepo(db),
		Sessions:     NewSessionRepo(db),
		Audit:        NewAuditRepo(db),
	}
}
