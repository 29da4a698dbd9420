package models

import "time"

// Vehicle is an ambulance or van used for patient transport
type Vehicle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Model     string    `gorm:"size:100;not null" json:"model"`
	Plate     string    `gorm:"size:10;not null;uniqueIndex" json:"plate"`
	Seats     int       `gorm:"default:0" json:"seats"`
	Notes     string    `gorm:"size:255" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// Driver represents the drivers table
type Driver struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:250;not null" json:"name"`
	LicenseNumber string    `gorm:"size:20;not null;uniqueIndex" json:"license_number"`
	Phone         string    `gorm:"size:20;not null" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}
