package service

import (
	"context"
	"testing"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_GrantPermission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	group, err := f.svc.Groups.Add(ctx, f.admin, GroupRequest{Name: "Drivers desk"})
	require.NoError(t, err)
	_, err = f.svc.Groups.Add(ctx, f.admin, GroupRequest{Name: "Drivers desk"})
	assertKind(t, err, apperror.KindConflict)

	grant, err := f.svc.Groups.GrantPermission(ctx, f.admin, group.ID, GrantRequest{Name: permission.ViewDrivers})
	require.NoError(t, err)
	assert.Equal(t, permission.ViewDrivers, grant.Permission.Name)

	// granting twice is harmless
	_, err = f.svc.Groups.GrantPermission(ctx, f.admin, group.ID, GrantRequest{PermissionID: grant.PermissionID})
	require.NoError(t, err)

	perms, err := f.svc.Groups.ListGroupPermissions(ctx, f.admin, group.ID)
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, permission.ViewDrivers, perms[0].Name)

	all, err := f.svc.Groups.ListPermissions(ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, all, len(permission.All()))
}

func TestGroupService_GrantPermissionErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	group, err := f.svc.Groups.Add(ctx, f.admin, GroupRequest{Name: "Reception"})
	require.NoError(t, err)

	_, err = f.svc.Groups.GrantPermission(ctx, f.admin, group.ID, GrantRequest{})
	assert.Equal(t, "permission_id is required", err.Error())

	_, err = f.svc.Groups.GrantPermission(ctx, f.admin, group.ID, GrantRequest{Name: "can_fly"})
	assertKind(t, err, apperror.KindValidation)

	_, err = f.svc.Groups.GrantPermission(ctx, f.admin, 999, GrantRequest{Name: permission.ViewDrivers})
	assertKind(t, err, apperror.KindNotFound)

	viewer := f.actor(t, "viewer@transport.local", permission.ViewGroups, permission.ViewPermissions)
	_, err = f.svc.Groups.GrantPermission(ctx, viewer, group.ID, GrantRequest{Name: permission.ViewDrivers})
	assertKind(t, err, apperror.KindPermissionDenied)
}

func TestGroupService_GrantTakesEffect(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.actor(t, "late@transport.local")
	_, err := f.svc.Drivers.List(ctx, user)
	assertKind(t, err, apperror.KindPermissionDenied)

	stored, err := f.repos.Users.GetUserByID(ctx, user.UserID)
	require.NoError(t, err)
	_, err = f.svc.Groups.GrantPermission(ctx, f.admin, stored.GroupID, GrantRequest{Name: permission.ViewDrivers})
	require.NoError(t, err)

	_, err = f.svc.Drivers.List(ctx, user)
	require.NoError(t, err)
}

func TestUserService_Add(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	group, err := f.svc.Groups.Add(ctx, f.admin, GroupRequest{Name: "Operators"})
	require.NoError(t, err)

	req := UserRequest{GroupID: group.ID, FirstName: "Ana", Email: "  Ana@Transport.Local "}
	_, err = f.svc.Users.Add(ctx, f.admin, req)
	assert.Equal(t, "password is required", err.Error())

	req.Password = strPtr("s3cret")
	user, err := f.svc.Users.Add(ctx, f.admin, req)
	require.NoError(t, err)
	assert.Equal(t, "ana@transport.local", user.Email)
	assert.True(t, user.Active)
	assert.True(t, utils.ComparePassword(user.PasswordHash, "s3cret"))

	req.Email = "ANA@transport.local"
	_, err = f.svc.Users.Add(ctx, f.admin, req)
	assertKind(t, err, apperror.KindConflict)

	req.Email = "bob@transport.local"
	req.GroupID = 999
	_, err = f.svc.Users.Add(ctx, f.admin, req)
	assertKind(t, err, apperror.KindValidation)
	assert.Equal(t, "group_id", apperror.FieldOf(err))
}

func TestUserService_UpdateKeepsPasswordWhenOmitted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	group, err := f.svc.Groups.Add(ctx, f.admin, GroupRequest{Name: "Operators"})
	require.NoError(t, err)
	user, err := f.svc.Users.Add(ctx, f.admin, UserRequest{
		GroupID: group.ID, FirstName: "Ana", LastName: strPtr("Lima"), Email: "ana@transport.local", Password: strPtr("first"),
	})
	require.NoError(t, err)

	inactive := false
	updated, err := f.svc.Users.Update(ctx, f.admin, user.ID, UserRequest{
		GroupID: group.ID, FirstName: "Ana Paula", Email: "ana@transport.local", Active: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lima", updated.LastName)
	assert.False(t, updated.Active)
	assert.True(t, utils.ComparePassword(updated.PasswordHash, "first"))

	stored, err := f.repos.Users.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}
