package models

import "time"

// Group is a set of users sharing the same permissions
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Group) TableName() string {
	return "user_groups"
}

// Permission is a named capability, e.g. can_view_patients
type Permission struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Permission) TableName() string {
	return "permissions"
}

// GroupPermission grants a permission to a group
type GroupPermission struct {
	GroupID      uint      `gorm:"primaryKey" json:"group_id"`
	PermissionID uint      `gorm:"primaryKey" json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`

	Permission Permission `gorm:"foreignKey:PermissionID" json:"permission"`
}

func (GroupPermission) TableName() string {
	return "group_permissions"
}
