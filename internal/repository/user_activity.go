package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserActivityRepository handles database operations for the activity log
type UserActivityRepository struct {
	db *gorm.DB
}

// NewUserActivityRepository creates a new user activity repository
func NewUserActivityRepository(db *gorm.DB) *UserActivityRepository {
	return &UserActivityRepository{db: db}
}

// Create appends an activity entry
func (r *UserActivityRepository) Create(activity *models.UserActivity) error {
	return r.db.Omit("Employee").Create(activity).Error
}

// List retrieves the activity log of an organisation, newest first
func (r *UserActivityRepository) List(orgID uuid.UUID, limit, offset int) ([]models.UserActivity, int64, error) {
	var activities []models.UserActivity
	var total int64

	query := r.db.Model(&models.UserActivity{}).Where("organisation_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Employee").Order("created_at DESC").Limit(limit).Offset(offset).Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}
