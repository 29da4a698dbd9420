package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepo(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) GetAllCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *CityRepository) GetCityByID(ctx context.Context, id uint) (*models.City, error) {
	return findByID[models.City](ctx, r.db, id, "city not found")
}

func (r *CityRepository) CreateCity(ctx context.Context, city *models.City) error {
	return writeError(r.db.WithContext(ctx).Create(city).Error)
}

func (r *CityRepository) UpdateCity(ctx context.Context, city *models.City) error {
	return writeError(r.db.WithContext(ctx).Save(city).Error)
}

// NameExists checks whether the state already has a city with this name
func (r *CityRepository) NameExists(ctx context.Context, stateID uint, name string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.City{}, excludeID, "state_id = ? AND name = ?", stateID, name)
}
