// Package testutil provides a migrated and seeded in-memory database for tests.
package testutil

import (
	"testing"
	"time"

	"patient-transport-backend/internal/config"
	"patient-transport-backend/internal/database"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	AdminEmail    = "admin@transport.local"
	AdminPassword = "admin-secret"
	UserPassword  = "user-secret"
)

// Config returns a configuration backed by an in-memory SQLite database
func Config() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Database:     ":memory:",
			MaxIdleConns: 1,
			MaxOpenConns: 1,
		},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			Issuer:      "patient-transport-test",
			TokenExpiry: 2 * time.Hour,
		},
		Server:  config.ServerConfig{GinMode: "release"},
		Session: config.SessionConfig{Store: "database", SweepInterval: 2 * time.Hour},
		Seed:    config.SeedConfig{AdminEmail: AdminEmail, AdminPassword: AdminPassword},
	}
}

// NewDB opens a fresh database, migrates it and seeds the administrator
func NewDB(t *testing.T) (*gorm.DB, *models.User) {
	t.Helper()
	utils.BcryptCost = 4

	cfg := Config()
	db, err := database.Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, database.Migrate(db))
	admin, err := database.Seed(db, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	require.NoError(t, err)
	return db, admin
}

// CreateUser adds an active user in a new group holding exactly perms
func CreateUser(t *testing.T, db *gorm.DB, email string, perms ...string) *models.User {
	t.Helper()

	group := models.Group{Name: "group-" + email}
	require.NoError(t, db.Create(&group).Error)

	for _, name := range perms {
		var perm models.Permission
		require.NoError(t, db.Where("name = ?", name).First(&perm).Error, name)
		require.NoError(t, db.Create(&models.GroupPermission{GroupID: group.ID, PermissionID: perm.ID}).Error)
	}

	hash, err := utils.HashPassword(UserPassword)
	require.NoError(t, err)
	user := models.User{
		GroupID:      group.ID,
		FirstName:    "Test",
		Email:        email,
		PasswordHash: hash,
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
