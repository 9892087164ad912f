package repository

import (
	"time"

	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewCycleRepository handles database operations for review cycles
type ReviewCycleRepository struct {
	db *gorm.DB
}

// NewReviewCycleRepository creates a new review cycle repository
func NewReviewCycleRepository(db *gorm.DB) *ReviewCycleRepository {
	return &ReviewCycleRepository{db: db}
}

// Create creates a new review cycle
func (r *ReviewCycleRepository) Create(cycle *models.ReviewCycle) error {
	return r.db.Create(cycle).Error
}

// Update updates a review cycle
func (r *ReviewCycleRepository) Update(cycle *models.ReviewCycle) error {
	return r.db.Save(cycle).Error
}

// GetByID retrieves a review cycle of an organisation
func (r *ReviewCycleRepository) GetByID(orgID, id uuid.UUID) (*models.ReviewCycle, error) {
	var cycle models.ReviewCycle
	err := r.db.First(&cycle, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// List retrieves review cycles, most recent first
func (r *ReviewCycleRepository) List(orgID uuid.UUID, limit, offset int) ([]models.ReviewCycle, int64, error) {
	var cycles []models.ReviewCycle
	var total int64

	query := r.db.Model(&models.ReviewCycle{}).Where("organisation_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("start_date DESC").Limit(limit).Offset(offset).Find(&cycles).Error
	if err != nil {
		return nil, 0, err
	}

	return cycles, total, nil
}

// GetPublishedCovering retrieves the published cycle whose [start, end] contains day
func (r *ReviewCycleRepository) GetPublishedCovering(orgID uuid.UUID, day time.Time) (*models.ReviewCycle, error) {
	var cycle models.ReviewCycle
	err := r.db.
		Where("organisation_id = ? AND publish = ? AND start_date <= ? AND end_date >= ?", orgID, true, day, day).
		Order("start_date DESC").
		First(&cycle).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// HasPublishedEndingOnOrAfter reports whether another published cycle has not ended by day
func (r *ReviewCycleRepository) HasPublishedEndingOnOrAfter(orgID uuid.UUID, day time.Time, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReviewCycle{}).
		Where("organisation_id = ? AND publish = ? AND end_date >= ? AND id <> ?", orgID, true, day, excludeID).
		Count(&count).Error
	return count > 0, err
}

// HasOverlap reports whether another cycle of the organisation intersects [start, end]
func (r *ReviewCycleRepository) HasOverlap(orgID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReviewCycle{}).
		Where("organisation_id = ? AND start_date <= ? AND end_date >= ? AND id <> ?", orgID, end, start, excludeID).
		Count(&count).Error
	return count > 0, err
}
