package models

import "time"

// Patient represents the patients table.
// Hygia is the health-system identifier and is unique per patient.
type Patient struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CityID     uint      `gorm:"not null;index" json:"city_id"`
	Name       string    `gorm:"size:250;not null" json:"name"`
	BirthDate  string    `gorm:"size:10;not null" json:"birth_date"`
	Phone1     string    `gorm:"column:phone_1;size:20;not null" json:"phone_1"`
	Phone2     string    `gorm:"column:phone_2;size:20" json:"phone_2"`
	Street     string    `gorm:"size:400;not null" json:"street"`
	Number     string    `gorm:"size:20;not null" json:"number"`
	Complement string    `gorm:"size:50" json:"complement"`
	ZipCode    string    `gorm:"size:10" json:"zip_code"`
	Hygia      string    `gorm:"size:20;not null;uniqueIndex" json:"hygia"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
