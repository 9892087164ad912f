package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository handles database operations for review details and their KPI reviews
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetDetails retrieves a review with its KPI entries. uuid.Nil as reviewFromID matches any reviewer
// and returns the most recently updated review.
func (r *ReviewRepository) GetDetails(cycleID, reviewToID uuid.UUID, reviewType models.ReviewType, reviewFromID uuid.UUID) (*models.ReviewDetails, error) {
	var details models.ReviewDetails
	query := r.db.Preload("Reviews").
		Where("review_cycle_id = ? AND review_to_id = ? AND review_type = ?", cycleID, reviewToID, reviewType)
	if reviewFromID != uuid.Nil {
		query = query.Where("review_from_id = ?", reviewFromID)
	}
	err := query.Order("updated_at DESC").First(&details).Error
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// Save upserts the review header, replaces its KPI entries and creates any goals, in one transaction
func (r *ReviewRepository) Save(details *models.ReviewDetails, goals []models.Goal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		reviews := details.Reviews
		if err := tx.Omit("Reviews").Save(details).Error; err != nil {
			return err
		}
		if err := tx.Where("review_details_id = ?", details.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if len(reviews) > 0 {
			for i := range reviews {
				reviews[i].ID = uuid.Nil
				reviews[i].ReviewDetailsID = details.ID
			}
			if err := tx.Create(&reviews).Error; err != nil {
				return err
			}
			details.Reviews = reviews
		}
		if len(goals) == 0 {
			return nil
		}
		for i := range goals {
			goals[i].ReviewDetailsID = &details.ID
		}
		return tx.Create(&goals).Error
	})
}

// ListByCycle retrieves review headers of a cycle, optionally limited to some reviewees
func (r *ReviewRepository) ListByCycle(cycleID uuid.UUID, reviewToIDs []uuid.UUID) ([]models.ReviewDetails, error) {
	var details []models.ReviewDetails
	query := r.db.Where("review_cycle_id = ?", cycleID)
	if reviewToIDs != nil {
		if len(reviewToIDs) == 0 {
			return details, nil
		}
		query = query.Where("review_to_id IN ?", reviewToIDs)
	}
	err := query.Order("updated_at DESC").Find(&details).Error
	return details, err
}
