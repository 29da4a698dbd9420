package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepo(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// GetAllCountries retrieves all countries ordered by name
func (r *CountryRepository) GetAllCountries(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).Order("name ASC").Find(&countries).Error
	return countries, err
}

// GetCountryByID retrieves a country by ID
func (r *CountryRepository) GetCountryByID(ctx context.Context, id uint) (*models.Country, error) {
	return findByID[models.Country](ctx, r.db, id, "country not found")
}

func (r *CountryRepository) CreateCountry(ctx context.Context, country *models.Country) error {
	return writeError(r.db.WithContext(ctx).Create(country).Error)
}

func (r *CountryRepository) UpdateCountry(ctx context.Context, country *models.Country) error {
	return writeError(r.db.WithContext(ctx).Save(country).Error)
}

// NameExists checks whether another country already uses the name
func (r *CountryRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.Country{}, excludeID, "name = ?", name)
}
