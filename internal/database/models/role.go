package models

import (
	"github.com/google/uuid"
)

// System role names created for every organisation at onboarding
const (
	RoleOrgAdmin = "Org Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// Role groups module permissions and is assigned to employees
type Role struct {
	BaseModel
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_roles_org_display" validate:"required"`
	DisplayID      string    `json:"display_id" gorm:"not null;size:10;uniqueIndex:idx_roles_org_display"`
	Name           string    `json:"name" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	IsSystem       bool      `json:"is_system" gorm:"not null"`

	// Relationships
	Permissions []ModulePermission `json:"permissions,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// IsOrgAdmin reports whether the role is the immutable administrator role
func (r Role) IsOrgAdmin() bool {
	return r.IsSystem && r.Name == RoleOrgAdmin
}

// ModulePermission grants view and/or edit access on one module
type ModulePermission struct {
	BaseModel
	RoleID uuid.UUID `json:"role_id" gorm:"type:uuid;not null;uniqueIndex:idx_module_permissions_role_module"`
	Module Module    `json:"module" gorm:"type:varchar(50);not null;uniqueIndex:idx_module_permissions_role_module"`
	View   bool      `json:"view" gorm:"not null"`
	Edit   bool      `json:"edit" gorm:"not null"`
}

// TableName returns the table name for ModulePermission
func (ModulePermission) TableName() string {
	return "module_permissions"
}
