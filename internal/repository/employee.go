package repository

import (
	"time"

	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees, their managers and activation history
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

var employeeAssociations = []string{"Role", "Department", "Team", "Designation"}

// Create creates an employee with manager mappings and an open history row
func (r *EmployeeRepository) Create(employee *models.Employee, managers []models.EmployeeManagerMapping) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(employeeAssociations...).Create(employee).Error; err != nil {
			return err
		}
		if err := createManagerMappings(tx, employee.ID, managers); err != nil {
			return err
		}
		if !employee.IsActive {
			return nil
		}
		return tx.Create(&models.EmployeeHistory{
			EmployeeID:  employee.ID,
			ActivatedAt: employee.CreatedAt,
		}).Error
	})
}

// Update saves the employee and replaces the active manager mappings
func (r *EmployeeRepository) Update(employee *models.Employee, managers []models.EmployeeManagerMapping) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(employeeAssociations...).Save(employee).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.EmployeeManagerMapping{}).
			Where("employee_id = ? AND is_active = ?", employee.ID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return createManagerMappings(tx, employee.ID, managers)
	})
}

func createManagerMappings(tx *gorm.DB, employeeID uuid.UUID, managers []models.EmployeeManagerMapping) error {
	if len(managers) == 0 {
		return nil
	}
	for i := range managers {
		managers[i].EmployeeID = employeeID
		managers[i].IsActive = true
	}
	return tx.Create(&managers).Error
}

// SetStatus persists employee.IsActive and opens or closes the history row at the given instant
func (r *EmployeeRepository) SetStatus(employee *models.Employee, at time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Employee{}).
			Where("id = ?", employee.ID).
			Update("is_active", employee.IsActive).Error; err != nil {
			return err
		}
		if employee.IsActive {
			return tx.Create(&models.EmployeeHistory{EmployeeID: employee.ID, ActivatedAt: at}).Error
		}
		return tx.Model(&models.EmployeeHistory{}).
			Where("employee_id = ? AND deactivated_at IS NULL", employee.ID).
			Update("deactivated_at", at).Error
	})
}

// GetByID retrieves an employee of an organisation with role and hierarchy
func (r *EmployeeRepository) GetByID(orgID, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.preloaded(r.db).First(&employee, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by email across organisations
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// EmailExists checks whether the email is used by another employee
func (r *EmployeeRepository) EmailExists(email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// CodeExists checks whether the employee code is used by another employee of the organisation
func (r *EmployeeRepository) CodeExists(orgID uuid.UUID, code string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("organisation_id = ? AND LOWER(employee_code) = LOWER(?) AND id <> ?", orgID, code, excludeID).
		Count(&count).Error
	return count > 0, err
}

// List retrieves employees with filters and pagination
func (r *EmployeeRepository) List(orgID uuid.UUID, filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{}).Where("organisation_id = ?", orgID)
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"(LOWER(first_name || ' ' || last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(employee_code) LIKE ?)",
			pattern, pattern, pattern)
	}
	if filter.RoleID != nil {
		query = query.Where("role_id = ?", *filter.RoleID)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.DesignationID != nil {
		query = query.Where("designation_id = ?", *filter.DesignationID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.preloaded(query).Order("employee_code ASC").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActive retrieves all active employees of an organisation with their department
func (r *EmployeeRepository) ListActive(orgID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Preload("Department").
		Where("organisation_id = ? AND is_active = ?", orgID, true).
		Order("employee_code ASC").
		Find(&employees).Error
	return employees, err
}

// GetManagers retrieves the active manager mappings of an employee
func (r *EmployeeRepository) GetManagers(employeeID uuid.UUID) ([]models.EmployeeManagerMapping, error) {
	var mappings []models.EmployeeManagerMapping
	err := r.db.Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("type ASC").
		Find(&mappings).Error
	return mappings, err
}

// GetReportees retrieves active employees that report to the manager as first or second manager
func (r *EmployeeRepository) GetReportees(managerID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.preloaded(r.db).
		Where("is_active = ? AND id IN (?)", true,
			r.db.Model(&models.EmployeeManagerMapping{}).
				Select("employee_id").
				Where("manager_id = ? AND is_active = ?", managerID, true)).
		Order("employee_code ASC").
		Find(&employees).Error
	return employees, err
}

// CountActiveReportees counts active employees whose active manager is managerID
func (r *EmployeeRepository) CountActiveReportees(managerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmployeeManagerMapping{}).
		Joins("JOIN employees ON employees.id = employee_manager_mappings.employee_id").
		Where("employee_manager_mappings.manager_id = ? AND employee_manager_mappings.is_active = ? AND employees.is_active = ?",
			managerID, true, true).
		Count(&count).Error
	return count, err
}

func (r *EmployeeRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.Preload("Role").Preload("Department").Preload("Team").Preload("Designation")
}
