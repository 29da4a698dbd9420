package database

import (
	"testing"

	"patient-transport-backend/internal/config"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Database:     ":memory:",
			MaxIdleConns: 1,
			MaxOpenConns: 1,
		},
		Server: config.ServerConfig{GinMode: "release"},
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Database.Driver = "oracle"

	_, err := Connect(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestMigrateAndSeed(t *testing.T) {
	utils.BcryptCost = 4
	db, err := Connect(memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	admin, err := Seed(db, "admin@test.local", "secret")
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)
	assert.True(t, utils.ComparePassword(admin.PasswordHash, "secret"))

	// running twice keeps a single admin and a single grant per permission
	again, err := Seed(db, "admin@test.local", "")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	var grants int64
	require.NoError(t, db.Model(&models.GroupPermission{}).Count(&grants).Error)
	assert.Equal(t, int64(len(permission.All())), grants)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestSeed_RequiresPasswordForNewAdmin(t *testing.T) {
	db, err := Connect(memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	_, err = Seed(db, "admin@test.local", "")
	assert.Error(t, err)
}
