package repository

import (
	"context"

	"patient-transport-backend/internal/models"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) GetAllGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, id uint) (*models.Group, error) {
	return findByID[models.Group](ctx, r.db, id, "group not found")
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	return writeError(r.db.WithContext(ctx).Create(group).Error)
}

func (r *GroupRepository) UpdateGroup(ctx context.Context, group *models.Group) error {
	return writeError(r.db.WithContext(ctx).Save(group).Error)
}

func (r *GroupRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	return exists(ctx, r.db, &models.Group{}, excludeID, "name = ?", name)
}

// GetGroupPermissions retrieves the grants of a group with the permission loaded
func (r *GroupRepository) GetGroupPermissions(ctx context.Context, groupID uint) ([]models.GroupPermission, error) {
	var grants []models.GroupPermission
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Preload("Permission").
		Order("permission_id ASC").
		Find(&grants).Error
	return grants, err
}

// GrantPermission assigns a permission to a group.
// Use FirstOrCreate to avoid duplicate entries.
func (r *GroupRepository) GrantPermission(ctx context.Context, groupID, permissionID uint) (*models.GroupPermission, error) {
	grant := &models.GroupPermission{GroupID: groupID, PermissionID: permissionID}
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND permission_id = ?", groupID, permissionID).
		FirstOrCreate(grant).Error
	return grant, err
}
