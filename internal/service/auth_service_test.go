package service

import (
	"context"
	"testing"
	"time"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/testutil"
	"patient-transport-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_LoginValidateLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Auth.Login(ctx, "ADMIN@transport.local", testutil.AdminPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, f.admin.UserID, resp.User.ID)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := f.svc.Auth.Validate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, f.admin.UserID, claims.UserID)

	require.NoError(t, f.svc.Auth.Logout(ctx, resp.Token))

	_, err = f.svc.Auth.Validate(ctx, resp.Token)
	assertKind(t, err, apperror.KindUnauthorized)

	// a second session is unaffected by the first logout
	other, err := f.svc.Auth.Login(ctx, testutil.AdminEmail, testutil.AdminPassword)
	require.NoError(t, err)
	_, err = f.svc.Auth.Validate(ctx, other.Token)
	require.NoError(t, err)

	logs, err := f.repos.Audit.GetAuditLogsByAction(ctx, "user_login")
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestAuthService_LoginFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Auth.Login(ctx, testutil.AdminEmail, "wrong")
	assertKind(t, err, apperror.KindUnauthorized)

	_, err = f.svc.Auth.Login(ctx, "ghost@transport.local", "whatever")
	assertKind(t, err, apperror.KindUnauthorized)

	_, err = f.svc.Auth.Login(ctx, "", "whatever")
	assert.Equal(t, "email is required", err.Error())

	user := testutil.CreateUser(t, f.db, "gone@transport.local")
	require.NoError(t, f.db.Model(&models.User{}).Where("id = ?", user.ID).Update("active", false).Error)
	_, err = f.svc.Auth.Login(ctx, "gone@transport.local", testutil.UserPassword)
	assertKind(t, err, apperror.KindUnauthorized)
}

func TestAuthService_ValidateRejectsForeignTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Auth.Validate(ctx, "")
	assertKind(t, err, apperror.KindUnauthorized)

	_, err = f.svc.Auth.Validate(ctx, "not-a-token")
	assertKind(t, err, apperror.KindUnauthorized)

	// correctly signed but never issued through Login
	token, _, err := utils.GenerateAccessToken(f.admin.UserID, 1)
	require.NoError(t, err)
	_, err = f.svc.Auth.Validate(ctx, token)
	assertKind(t, err, apperror.KindUnauthorized)

	assert.Equal(t, "token is required", f.svc.Auth.Logout(ctx, "").Error())
	assertKind(t, f.svc.Auth.Logout(ctx, "garbage"), apperror.KindUnauthorized)
}

func TestAuthService_LogoutAcceptsExpiredToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	utils.InitJWT("test-secret", "patient-transport-test", -time.Minute)
	token, claims, err := utils.GenerateAccessToken(f.admin.UserID, 1)
	require.NoError(t, err)
	require.NoError(t, f.repos.Sessions.CreateSession(ctx, &models.Session{
		TokenID: claims.ID, UserID: f.admin.UserID, ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}))

	_, err = f.svc.Auth.Validate(ctx, token)
	assertKind(t, err, apperror.KindUnauthorized)
	require.NoError(t, f.svc.Auth.Logout(ctx, token))

	session, err := f.repos.Sessions.FindSession(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, session.Revoked)
}

func TestSessionSweeper_Sweep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, f.repos.Sessions.CreateSession(ctx, &models.Session{TokenID: "expired", UserID: f.admin.UserID, ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, f.repos.Sessions.CreateSession(ctx, &models.Session{TokenID: "live", UserID: f.admin.UserID, ExpiresAt: now.Add(time.Hour)}))

	sweeper := NewSessionSweeper(f.repos.Sessions, time.Hour, zap.NewNop())
	assert.Equal(t, int64(1), sweeper.Sweep(ctx))

	_, err := f.repos.Sessions.FindSession(ctx, "expired")
	assertKind(t, err, apperror.KindNotFound)
	_, err = f.repos.Sessions.FindSession(ctx, "live")
	require.NoError(t, err)
}

func TestSessionSweeper_StopsOnCancel(t *testing.T) {
	f := newFixture(t)
	sweeper := NewSessionSweeper(f.repos.Sessions, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
