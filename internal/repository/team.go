package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateBatch creates teams in a single transaction
func (r *TeamRepository) CreateBatch(teams []models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Department").Create(&teams).Error
	})
}

// GetByID retrieves a team with its department
func (r *TeamRepository) GetByID(orgID, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Department").First(&team, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// NameExists checks for a case-insensitive name clash within the department
func (r *TeamRepository) NameExists(departmentID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).
		Where("department_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", departmentID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Count returns the number of teams in the organisation
func (r *TeamRepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("organisation_id = ?", orgID).Count(&count).Error
	return count, err
}

// List retrieves teams of an organisation with pagination
func (r *TeamRepository) List(orgID uuid.UUID, filter HierarchyFilter, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{}).Where("organisation_id = ?", orgID)
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(display_id) LIKE ?)", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Department").Order("display_id ASC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Omit("Department").Save(team).Error
}

// Unpublish saves the team and unpublishes its designations
func (r *TeamRepository) Unpublish(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		team.IsActive = false
		if err := tx.Omit("Department").Save(team).Error; err != nil {
			return err
		}
		return tx.Model(&models.Designation{}).
			Where("team_id = ? AND is_active = ?", team.ID, true).
			Update("is_active", false).Error
	})
}

// HasActiveEmployees reports whether any active employee belongs to the team
func (r *TeamRepository) HasActiveEmployees(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("team_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}
