package service

import (
	"context"
	"fmt"
	"strings"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
	"patient-transport-backend/pkg/utils"
)

type UserService struct {
	policy
	userRepo *repository.UserRepository
	groups   *GroupService
}

func NewUserService(userRepo *repository.UserRepository, groups *GroupService, p policy) *UserService {
	return &UserService{policy: p, userRepo: userRepo, groups: groups}
}

// UserRequest carries a user account. Password is required when adding a
// user and optional when updating one.
type UserRequest struct {
	ID        uint    `json:"id"`
	GroupID   uint    `json:"group_id" validate:"required"`
	FirstName string  `json:"first_name" validate:"required,notblank"`
	LastName  *string `json:"last_name"`
	Email     string  `json:"email" validate:"required,notblank"`
	Password  *string `json:"password"`
	Active    *bool   `json:"active"`
}

func (s *UserService) List(ctx context.Context, actor permission.Actor) ([]models.User, error) {
	if err := s.require(ctx, actor, permission.ViewUsers, "user is not allowed to view users"); err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetAllUsers(ctx)
	return users, s.storageError(err, "list users")
}

func (s *UserService) GetByID(ctx context.Context, actor permission.Actor, id uint) (*models.User, error) {
	if err := s.require(ctx, actor, permission.ViewUsers, "user is not allowed to view this user"); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get user")
	}
	return user, nil
}

func (s *UserService) Add(ctx context.Context, actor permission.Actor, req UserRequest) (*models.User, error) {
	if err := s.require(ctx, actor, permission.CreateUsers, "user is not allowed to add users"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Password == nil || strings.TrimSpace(*req.Password) == "" {
		return nil, apperror.Required("password")
	}
	if err := s.checkGroup(ctx, actor.WithParent(permission.CreateUsers), req.GroupID); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	taken, err := s.userRepo.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, s.storageError(err, "check user email")
	}
	if taken {
		return nil, apperror.Conflict("user already registered with this email")
	}

	hash, err := utils.HashPassword(*req.Password)
	if err != nil {
		return nil, apperror.Internal(err, "failed to hash password")
	}

	user := &models.User{
		GroupID:      req.GroupID,
		FirstName:    req.FirstName,
		LastName:     stringOr(req.LastName, ""),
		Email:        email,
		PasswordHash: hash,
		Active:       true,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, s.storageError(err, "create user")
	}

	s.audit(ctx, actor, "user_create", fmt.Sprintf("Created user: %s (ID: %d)", user.Email, user.ID))
	return user, nil
}

func (s *UserService) Update(ctx context.Context, actor permission.Actor, id uint, req UserRequest) (*models.User, error) {
	if err := s.require(ctx, actor, permission.UpdateUsers, "user is not allowed to update users"); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get user")
	}
	if err := s.checkGroup(ctx, actor.WithParent(permission.UpdateUsers), req.GroupID); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	taken, err := s.userRepo.EmailExists(ctx, email, id)
	if err != nil {
		return nil, s.storageError(err, "check user email")
	}
	if taken {
		return nil, apperror.Conflict("another user is registered with this email")
	}

	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, apperror.Internal(err, "failed to hash password")
		}
		user.PasswordHash = hash
	}
	user.GroupID = req.GroupID
	user.FirstName = req.FirstName
	user.LastName = stringOr(req.LastName, user.LastName)
	user.Email = email
	if req.Active != nil {
		user.Active = *req.Active
	}
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, s.storageError(err, "update user")
	}

	s.audit(ctx, actor, "user_update", fmt.Sprintf("Updated user: %s (ID: %d)", user.Email, user.ID))
	return user, nil
}

func (s *UserService) checkGroup(ctx context.Context, actor permission.Actor, groupID uint) error {
	_, err := s.groups.GetByID(ctx, actor, groupID)
	return reference(err, "group_id", "group", groupID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
