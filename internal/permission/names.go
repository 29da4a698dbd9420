package permission

// Permission names granted to groups
const (
	ViewCountries   = "can_view_countries"
	CreateCountries = "can_create_countries"
	UpdateCountries = "can_update_countries"

	ViewStates   = "can_view_states"
	CreateStates = "can_create_states"
	UpdateStates = "can_update_states"

	ViewCities   = "can_view_cities"
	CreateCities = "can_create_cities"
	UpdateCities = "can_update_cities"

	ViewHospitals   = "can_view_hospitals"
	CreateHospitals = "can_create_hospitals"
	UpdateHospitals = "can_update_hospitals"

	ViewVehicles   = "can_view_vehicles"
	CreateVehicles = "can_create_vehicles"
	UpdateVehicles = "can_update_vehicles"

	ViewDrivers   = "can_view_drivers"
	CreateDrivers = "can_create_drivers"
	UpdateDrivers = "can_update_drivers"

	ViewPatients   = "can_view_patients"
	CreatePatients = "can_create_patients"
	UpdatePatients = "can_update_patients"

	ViewAppointments   = "can_view_appointments"
	CreateAppointments = "can_create_appointments"
	UpdateAppointments = "can_update_appointments"

	ViewGroups   = "can_view_groups"
	CreateGroups = "can_create_groups"
	UpdateGroups = "can_update_groups"

	ViewUsers   = "can_view_users"
	CreateUsers = "can_create_users"
	UpdateUsers = "can_update_users"

	ViewDashboard    = "can_view_dashboard"
	ViewPermissions  = "can_view_permissions"
	GrantPermissions = "can_grant_permissions"
)

// All returns every permission known to the application, in a stable order
func All() []string {
	return []string{
		ViewCountries, CreateCountries, UpdateCountries,
		ViewStates, CreateStates, UpdateStates,
		ViewCities, CreateCities, UpdateCities,
		ViewHospitals, CreateHospitals, UpdateHospitals,
		ViewVehicles, CreateVehicles, UpdateVehicles,
		ViewDrivers, CreateDrivers, UpdateDrivers,
		ViewPatients, CreatePatients, UpdatePatients,
		ViewAppointments, CreateAppointments, UpdateAppointments,
		ViewGroups, CreateGroups, UpdateGroups,
		ViewUsers, CreateUsers, UpdateUsers,
		ViewDashboard, ViewPermissions, GrantPermissions,
	}
}
