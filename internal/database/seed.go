package database

import (
	"errors"
	"fmt"
	"strings"

	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/pkg/utils"

	"gorm.io/gorm"
)

// AdminGroupName is the group that receives every permission on seed
const AdminGroupName = "Administrators"

// Seed registers all permissions, grants them to the administrators group and
// creates the administrator account when it does not exist yet. It is safe to
// run repeatedly.
func Seed(db *gorm.DB, adminEmail, adminPassword string) (*models.User, error) {
	var admin models.User
	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))

	err := db.Transaction(func(tx *gorm.DB) error {
		group := models.Group{Name: AdminGroupName, Description: "Full access"}
		if err := tx.Where("name = ?", group.Name).FirstOrCreate(&group).Error; err != nil {
			return fmt.Errorf("failed to seed group: %w", err)
		}

		for _, name := range permission.All() {
			perm := models.Permission{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&perm).Error; err != nil {
				return fmt.Errorf("failed to seed permission %s: %w", name, err)
			}
			grant := models.GroupPermission{GroupID: group.ID, PermissionID: perm.ID}
			if err := tx.Where("group_id = ? AND permission_id = ?", group.ID, perm.ID).
				FirstOrCreate(&grant).Error; err != nil {
				return fmt.Errorf("failed to grant %s: %w", name, err)
			}
		}

		err := tx.Where("email = ?", adminEmail).First(&admin).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if adminPassword == "" {
			return errors.New("ADMIN_PASSWORD is required to create the administrator")
		}

		hash, err := utils.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		admin = models.User{
			GroupID:      group.ID,
			FirstName:    "Administrator",
			Email:        adminEmail,
			PasswordHash: hash,
			Active:       true,
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, err
	}

	return &admin, nil
}
