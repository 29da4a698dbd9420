package models

import "time"

// Appointment schedules the transport of a patient to a hospital
// with a given vehicle and driver
type Appointment struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	PatientID         uint    `gorm:"not null;uniqueIndex:idx_appointments_patient_date" json:"patient_id"`
	HospitalID        uint    `gorm:"not null;index" json:"hospital_id"`
	VehicleID         uint    `gorm:"not null;index" json:"vehicle_id"`
	DriverID          uint    `gorm:"not null;index" json:"driver_id"`
	UserID            uint    `gorm:"not null;index" json:"user_id"`
	ReferralTypeID    *uint   `json:"referral_type_id"`
	DiseaseTypeID     *uint   `json:"disease_type_id"`
	RemovalTypeID     *uint   `json:"removal_type_id"`
	PatientGuardian   string  `gorm:"size:250" json:"patient_guardian"`
	PatientCondition  string  `gorm:"size:250" json:"patient_condition"`
	RemovalDate       string  `gorm:"size:20;not null;uniqueIndex:idx_appointments_patient_date" json:"removal_date"`
	ExpectedDeparture string  `gorm:"size:20;not null" json:"expected_departure"`
	Notes             string  `gorm:"size:500" json:"notes"`
	IFDCost           float64 `gorm:"column:ifd_cost;default:0" json:"ifd_cost"`
	StayCost          float64 `gorm:"default:0" json:"stay_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
