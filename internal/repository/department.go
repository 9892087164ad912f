package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// CreateBatch creates departments in a single transaction
func (r *DepartmentRepository) CreateBatch(departments []models.Department) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&departments).Error
	})
}

// GetByID retrieves a department of an organisation by ID
func (r *DepartmentRepository) GetByID(orgID, id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// NameExists checks for a case-insensitive name clash within the organisation
func (r *DepartmentRepository) NameExists(orgID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Department{}).
		Where("organisation_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", orgID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Count returns the number of departments in the organisation
func (r *DepartmentRepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Department{}).Where("organisation_id = ?", orgID).Count(&count).Error
	return count, err
}

// List retrieves departments with optional search and pagination
func (r *DepartmentRepository) List(orgID uuid.UUID, search string, limit, offset int) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	query := r.db.Model(&models.Department{}).Where("organisation_id = ?", orgID)
	if search != "" {
		pattern := likePattern(search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(display_id) LIKE ?)", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("display_id ASC").Limit(limit).Offset(offset).Find(&departments).Error
	if err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// Update updates a department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Unpublish saves the department and unpublishes all of its teams and designations
func (r *DepartmentRepository) Unpublish(department *models.Department) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		department.IsActive = false
		if err := tx.Save(department).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Team{}).
			Where("department_id = ? AND is_active = ?", department.ID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Designation{}).
			Where("department_id = ? AND is_active = ?", department.ID, true).
			Update("is_active", false).Error
	})
}

// HasActiveEmployees reports whether any active employee belongs to the department
func (r *DepartmentRepository) HasActiveEmployees(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("department_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}
