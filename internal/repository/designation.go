package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DesignationRepository handles database operations for designations
type DesignationRepository struct {
	db *gorm.DB
}

// NewDesignationRepository creates a new designation repository
func NewDesignationRepository(db *gorm.DB) *DesignationRepository {
	return &DesignationRepository{db: db}
}

// CreateBatch creates designations in a single transaction
func (r *DesignationRepository) CreateBatch(designations []models.Designation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Department", "Team").Create(&designations).Error
	})
}

// GetByID retrieves a designation with its department and team
func (r *DesignationRepository) GetByID(orgID, id uuid.UUID) (*models.Designation, error) {
	var designation models.Designation
	err := r.db.Preload("Department").Preload("Team").
		First(&designation, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &designation, nil
}

// NameExists checks for a case-insensitive name clash within the team
func (r *DesignationRepository) NameExists(teamID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Designation{}).
		Where("team_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", teamID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Count returns the number of designations in the organisation
func (r *DesignationRepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Designation{}).Where("organisation_id = ?", orgID).Count(&count).Error
	return count, err
}

// List retrieves designations of an organisation with pagination
func (r *DesignationRepository) List(orgID uuid.UUID, filter HierarchyFilter, limit, offset int) ([]models.Designation, int64, error) {
	var designations []models.Designation
	var total int64

	query := r.db.Model(&models.Designation{}).Where("organisation_id = ?", orgID)
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(display_id) LIKE ?)", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Department").Preload("Team").
		Order("display_id ASC").Limit(limit).Offset(offset).Find(&designations).Error
	if err != nil {
		return nil, 0, err
	}

	return designations, total, nil
}

// Update updates a designation
func (r *DesignationRepository) Update(designation *models.Designation) error {
	return r.db.Omit("Department", "Team").Save(designation).Error
}

// HasActiveEmployees reports whether any active employee holds the designation
func (r *DesignationRepository) HasActiveEmployees(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("designation_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}
