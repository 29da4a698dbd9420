package models

import "time"

// Hospital is a destination facility that patients are transported to
type Hospital struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CityID     uint      `gorm:"not null;index" json:"city_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Street     string    `gorm:"size:400;not null" json:"street"`
	Number     string    `gorm:"size:20;not null" json:"number"`
	Complement string    `gorm:"size:50" json:"complement"`
	ZipCode    string    `gorm:"size:10" json:"zip_code"`
	Phone      string    `gorm:"size:20" json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
