package repository

import (
	"context"
	"errors"
	"time"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("first_name ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return findByID[models.User](ctx, r.db, id, "user not found")
}

// FindUserByEmail finds a user by email
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return writeError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	return writeError(r.db.WithContext(ctx).Save(user).Error)
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.User{}, excludeID, "email = ?", email)
}

// SessionRepository keeps issued tokens in the sessions table
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession records a newly issued token
func (r *SessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	return writeError(r.db.WithContext(ctx).Create(session).Error)
}

// FindSession finds a session by its token id
func (r *SessionRepository) FindSession(ctx context.Context, tokenID string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("session not found")
		}
		return nil, err
	}
	return &session, nil
}

// RevokeSession marks a session as revoked
func (r *SessionRepository) RevokeSession(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).Model(&models.Session{}).
		Where("token_id = ?", tokenID).
		Update("revoked", true).Error
}

// DeleteExpiredSessions removes sessions whose token can no longer be used
func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
