package service

import (
	"context"
	"fmt"
	"strings"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
)

// GroupService manages user groups and the permissions granted to them
type GroupService struct {
	policy
	groupRepo      *repository.GroupRepository
	permissionRepo *repository.PermissionRepository
}

func NewGroupService(groupRepo *repository.GroupRepository, permissionRepo *repository.PermissionRepository, p policy) *GroupService {
	return &GroupService{policy: p, groupRepo: groupRepo, permissionRepo: permissionRepo}
}

type GroupRequest struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" validate:"required,notblank"`
	Description *string `json:"description"`
}

// GrantRequest names the permission to grant, by id or by name
type GrantRequest struct {
	PermissionID uint   `json:"permission_id"`
	Name         string `json:"name"`
}

func (s *GroupService) List(ctx context.Context, actor permission.Actor) ([]models.Group, error) {
	if err := s.require(ctx, actor, permission.ViewGroups, "user is not allowed to view groups"); err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.GetAllGroups(ctx)
	return groups, s.storageError(err, "list groups")
}

func (s *GroupService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.Group, error) {
	if err := s.require(ctx, actor, permission.ViewGroups, "user is not allowed to view this group"); err != nil {
		return nil, err
	}
	group, err := s.groupRepo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get group")
	}
	return group, nil
}

func (s *GroupService) Add(ctx context.Context, actor permission.Actor, req GroupRequest) (*models.Group, error) {
	if err := s.require(ctx, actor, permission.CreateGroups, "user is not allowed to add groups"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	taken, err := s.groupRepo.NameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, s.storageError(err, "check group name")
	}
	if taken {
		return nil, apperror.Conflict("group already registered")
	}

	group := &models.Group{Name: req.Name, Description: stringOr(req.Description, "")}
	if err := s.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, s.storageError(err, "create group")
	}

	s.audit(ctx, actor, "group_create", fmt.Sprintf("Created group: %s (ID: %d)", group.Name, group.ID))
	return group, nil
}

func (s *GroupService) Update(ctx context.Context, actor permission.Actor, id uint, req GroupRequest) (*models.Group, error) {
	if err := s.require(ctx, actor, permission.UpdateGroups, "user is not allowed to update groups"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get group")
	}

	taken, err := s.groupRepo.NameExists(ctx, req.Name, id)
	if err != nil {
		return nil, s.storageError(err, "check group name")
	}
	if taken {
		return nil, apperror.Conflict("another group is registered with this name")
	}

	group.Name = req.Name
	group.Description = stringOr(req.Description, group.Description)
	if err := s.groupRepo.UpdateGroup(ctx, group); err != nil {
		return nil, s.storageError(err, "update group")
	}

	s.audit(ctx, actor, "group_update", fmt.Sprintf("Updated group: %s (ID: %d)", group.Name, group.ID))
	return group, nil
}

// ListPermissions returns every permission known to the application
func (s *GroupService) ListPermissions(ctx context.Context, actor permission.Actor) ([]models.Permission, error) {
	if err := s.require(ctx, actor, permission.ViewPermissions, "user is not allowed to view permissions"); err != nil {
		return nil, err
	}
	permissions, err := s.permissionRepo.GetAllPermissions(ctx)
	return permissions, s.storageError(err, "list permissions")
}

// ListGroupPermissions returns the permissions granted to a group
func (s *GroupService) ListGroupPermissions(ctx context.Context, actor permission.Actor, groupID uint) ([]models.Permission, error) {
	if err := s.require(ctx, actor, permission.ViewPermissions, "user is not allowed to view permissions"); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, actor.WithParent(permission.ViewPermissions), groupID); err != nil {
		return nil, err
	}

	grants, err := s.groupRepo.GetGroupPermissions(ctx, groupID)
	if err != nil {
		return nil, s.storageError(err, "list group permissions")
	}
	permissions := make([]models.Permission, 0, len(grants))
	for _, grant := range grants {
		permissions = append(permissions, grant.Permission)
	}
	return permissions, nil
}

// GrantPermission grants a permission to a group. Granting twice is a no-op.
func (s *GroupService) GrantPermission(ctx context.Context, actor permission.Actor, groupID uint, req GrantRequest) (*models.GroupPermission, error) {
	if err := s.require(ctx, actor, permission.GrantPermissions, "user is not allowed to grant permissions"); err != nil {
		return nil, err
	}
	if req.PermissionID == 0 && strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Required("permission_id")
	}

	group, err := s.GetByID(ctx, actor.WithParent(permission.GrantPermissions), groupID)
	if err != nil {
		return nil, err
	}

	var perm *models.Permission
	if req.PermissionID != 0 {
		perm, err = s.permissionRepo.GetPermissionByID(ctx, req.PermissionID)
	} else {
		perm, err = s.permissionRepo.GetPermissionByName(ctx, req.Name)
	}
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Validation("permission_id", "permission is not registered")
		}
		return nil, s.storageError(err, "get permission")
	}

	grant, err := s.groupRepo.GrantPermission(ctx, group.ID, perm.ID)
	if err != nil {
		return nil, s.storageError(err, "grant permission")
	}
	grant.Permission = *perm

	s.audit(ctx, actor, "permission_grant", fmt.Sprintf("Granted %s to group %s (ID: %d)", perm.Name, group.Name, group.ID))
	return grant, nil
}
