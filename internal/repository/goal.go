package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalRepository handles database operations for goals
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// GetByID retrieves a goal of an organisation
func (r *GoalRepository) GetByID(orgID, id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Count returns the number of goals in the organisation
func (r *GoalRepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Goal{}).Where("organisation_id = ?", orgID).Count(&count).Error
	return count, err
}

// UpdateProgress changes the progress of a goal
func (r *GoalRepository) UpdateProgress(id uuid.UUID, progress models.GoalProgress) error {
	return r.db.Model(&models.Goal{}).Where("id = ?", id).Update("progress", progress).Error
}

// List retrieves goals matching the filter, nearest target date first
func (r *GoalRepository) List(orgID uuid.UUID, filter GoalFilter, limit, offset int) ([]models.Goal, int64, error) {
	var goals []models.Goal
	var total int64

	query := r.db.Model(&models.Goal{}).Where("organisation_id = ?", orgID)
	if filter.AssignedToIDs != nil {
		if len(filter.AssignedToIDs) == 0 {
			return goals, 0, nil
		}
		query = query.Where("assigned_to_id IN ?", filter.AssignedToIDs)
	}
	if filter.ReviewCycleID != nil {
		query = query.Where("review_cycle_id = ?", *filter.ReviewCycleID)
	}
	if filter.Progress != "" {
		query = query.Where("progress = ?", filter.Progress)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("target_date ASC, display_id ASC").Limit(limit).Offset(offset).Find(&goals).Error
	if err != nil {
		return nil, 0, err
	}

	return goals, total, nil
}
