// Package permission decides whether a user may perform an operation.
//
// A user holds a permission when the user is active and the user's group
// has been granted it. Nested operations may run under the permission of
// the operation that invoked them (the parent permission) so that, for
// example, registering a patient can look up the patient's city without
// the user also holding can_view_cities.
package permission

import (
	"context"

	"patient-transport-backend/internal/apperror"

	"go.uber.org/zap"
)

// GrantStore answers whether a user's group holds a named permission
type GrantStore interface {
	UserHasPermission(ctx context.Context, userID uint, name string) (bool, error)
}

// Actor is the authenticated user on whose behalf an operation runs
type Actor struct {
	UserID uint
	// Parent, when set, replaces the permission the callee would check
	Parent string
}

// NewActor returns an actor without parent permission
func NewActor(userID uint) Actor {
	return Actor{UserID: userID}
}

// WithParent returns a copy of the actor delegating to the given permission
func (a Actor) WithParent(name string) Actor {
	a.Parent = name
	return a
}

// Effective returns the permission that will actually be checked for name
func (a Actor) Effective(name string) string {
	if a.Parent != "" {
		return a.Parent
	}
	return name
}

type Checker struct {
	store  GrantStore
	logger *zap.Logger
}

func NewChecker(store GrantStore, logger *zap.Logger) *Checker {
	return &Checker{store: store, logger: logger}
}

// HasPermission reports whether userID holds the named permission
func (c *Checker) HasPermission(ctx context.Context, userID uint, name string) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	ok, err := c.store.UserHasPermission(ctx, userID, name)
	if err != nil {
		return false, apperror.Internal(err, "failed to check permission")
	}
	return ok, nil
}

// Require fails with a permission-denied error when the actor lacks the
// effective permission. denied is the message returned to the caller.
func (c *Checker) Require(ctx context.Context, actor Actor, name, denied string) error {
	effective := actor.Effective(name)
	ok, err := c.HasPermission(ctx, actor.UserID, effective)
	if err != nil {
		return err
	}
	if !ok {
		c.logger.Info("permission denied",
			zap.Uint("user_id", actor.UserID),
			zap.String("permission", effective),
		)
		return apperror.PermissionDenied(denied)
	}
	return nil
}
