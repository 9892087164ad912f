package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRepository handles database operations for roles and their module permissions
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a role together with its permissions
func (r *RoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// GetByID retrieves a role with its permissions
func (r *RoleRepository) GetByID(orgID, id uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.Preload("Permissions").First(&role, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// NameExists checks for a case-insensitive name clash within the organisation
func (r *RoleRepository) NameExists(orgID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Role{}).
		Where("organisation_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", orgID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Count returns the number of roles in the organisation
func (r *RoleRepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Role{}).Where("organisation_id = ?", orgID).Count(&count).Error
	return count, err
}

// List retrieves roles with their permissions
func (r *RoleRepository) List(orgID uuid.UUID, search string, limit, offset int) ([]models.Role, int64, error) {
	var roles []models.Role
	var total int64

	query := r.db.Model(&models.Role{}).Where("organisation_id = ?", orgID)
	if search != "" {
		pattern := likePattern(search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(display_id) LIKE ?)", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Permissions").Order("display_id ASC").Limit(limit).Offset(offset).Find(&roles).Error
	if err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}

// Update saves the role and replaces its permissions
func (r *RoleRepository) Update(role *models.Role) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Permissions").Save(role).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", role.ID).Delete(&models.ModulePermission{}).Error; err != nil {
			return err
		}
		if len(role.Permissions) == 0 {
			return nil
		}
		for i := range role.Permissions {
			role.Permissions[i].ID = uuid.Nil
			role.Permissions[i].RoleID = role.ID
		}
		return tx.Create(&role.Permissions).Error
	})
}

// HasActiveEmployees reports whether any active employee holds the role
func (r *RoleRepository) HasActiveEmployees(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("role_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}

// GetPermission returns the module permission granted to an active employee through a published role
func (r *RoleRepository) GetPermission(employeeID uuid.UUID, module models.Module) (*models.ModulePermission, error) {
	var permission models.ModulePermission
	err := r.db.Model(&models.ModulePermission{}).
		Joins("JOIN roles ON roles.id = module_permissions.role_id").
		Joins("JOIN employees ON employees.role_id = roles.id").
		Where("employees.id = ? AND employees.is_active = ? AND roles.is_active = ? AND module_permissions.module = ?",
			employeeID, true, true, module).
		First(&permission).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}
