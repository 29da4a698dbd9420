package repository

import (
	"context"
	"errors"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// UserHasPermission checks whether an active user's group holds the named permission
func (r *PermissionRepository) UserHasPermission(ctx context.Context, userID uint, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("INNER JOIN group_permissions ON group_permissions.group_id = users.group_id").
		Joins("INNER JOIN permissions ON permissions.id = group_permissions.permission_id").
		Where("users.id = ? AND users.active = ? AND permissions.name = ?", userID, true, name).
		Count(&count).Error
	return count > 0, err
}

func (r *PermissionRepository) GetAllPermissions(ctx context.Context) ([]models.Permission, error) {
	var permissions []models.Permission
	err := r.db.WithContext(ctx).Order("name ASC").Find(&permissions).Error
	return permissions, err
}

func (r *PermissionRepository) GetPermissionByName(ctx context.Context, name string) (*models.Permission, error) {
	var permission models.Permission
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&permission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("permission not found")
		}
		return nil, err
	}
	return &permission, nil
}

func (r *PermissionRepository) GetPermissionByID(ctx context.Context, id uint) (*models.Permission, error) {
	return findByID[models.Permission](ctx, r.db, id, "permission not found")
}
