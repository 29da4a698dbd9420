package models

import "time"

// Country represents the countries table
type Country struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Acronym   string    `gorm:"size:3;not null" json:"acronym"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Country model
func (Country) TableName() string {
	return "countries"
}

// State represents a state/province belonging to a country
type State struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CountryID uint      `gorm:"not null;uniqueIndex:idx_states_country_name" json:"country_id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_states_country_name" json:"name"`
	Acronym   string    `gorm:"size:3;not null" json:"acronym"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (State) TableName() string {
	return "states"
}

// City represents a city belonging to a state
type City struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StateID   uint      `gorm:"not null;uniqueIndex:idx_cities_state_name" json:"state_id"`
	Name      string    `gorm:"size:150;not null;uniqueIndex:idx_cities_state_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (City) TableName() string {
	return "cities"
}
