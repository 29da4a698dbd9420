package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepo(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) GetAllStates(ctx context.Context) ([]models.State, error) {
	var states []models.State
	err := r.db.WithContext(ctx).Order("name ASC").Find(&states).Error
	return states, err
}

func (r *StateRepository) GetStateByID(ctx context.Context, id uint) (*models.State, error) {
	return findByID[models.State](ctx, r.db, id, "state not found")
}

func (r *StateRepository) CreateState(ctx context.Context, state *models.State) error {
	return writeError(r.db.WithContext(ctx).Create(state).Error)
}

func (r *StateRepository) UpdateState(ctx context.Context, state *models.State) error {
	return writeError(r.db.WithContext(ctx).Save(state).Error)
}

// NameExists checks whether the country already has a state with this name
func (r *StateRepository) NameExists(ctx context.Context, countryID uint, name string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.State{}, excludeID, "country_id = ? AND name = ?", countryID, name)
}
