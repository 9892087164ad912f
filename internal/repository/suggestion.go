package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuggestionRepository handles database operations for suggestions and their comments
type SuggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository
func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// Create creates a new suggestion
func (r *SuggestionRepository) Create(suggestion *models.Suggestion) error {
	return r.db.Omit("SuggestedBy").Create(suggestion).Error
}

// GetByID retrieves a suggestion with its author
func (r *SuggestionRepository) GetByID(orgID, id uuid.UUID) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := r.db.Preload("SuggestedBy").First(&suggestion, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// Count returns the number of suggestions in the organisation
func (r *SuggestionRepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Suggestion{}).Where("organisation_id = ?", orgID).Count(&count).Error
	return count, err
}

// Update updates a suggestion
func (r *SuggestionRepository) Update(suggestion *models.Suggestion) error {
	return r.db.Omit("SuggestedBy").Save(suggestion).Error
}

// ListBySuggester retrieves the suggestions written by an employee, newest first
func (r *SuggestionRepository) ListBySuggester(orgID, employeeID uuid.UUID, limit, offset int) ([]models.Suggestion, int64, error) {
	var suggestions []models.Suggestion
	var total int64

	query := r.db.Model(&models.Suggestion{}).Where("organisation_id = ? AND suggested_by_id = ?", orgID, employeeID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&suggestions).Error
	if err != nil {
		return nil, 0, err
	}

	return suggestions, total, nil
}

// ListReceived retrieves submitted suggestions of the organisation, newest first
func (r *SuggestionRepository) ListReceived(orgID uuid.UUID, progress models.SuggestionProgress, limit, offset int) ([]models.Suggestion, int64, error) {
	var suggestions []models.Suggestion
	var total int64

	query := r.db.Model(&models.Suggestion{}).Where("organisation_id = ? AND is_draft = ?", orgID, false)
	if progress != "" {
		query = query.Where("progress = ?", progress)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("SuggestedBy").Order("created_at DESC").Limit(limit).Offset(offset).Find(&suggestions).Error
	if err != nil {
		return nil, 0, err
	}

	return suggestions, total, nil
}

// AddProgress saves the new progress and appends the comment in one transaction
func (r *SuggestionRepository) AddProgress(suggestion *models.Suggestion, comment *models.SuggestionComment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Suggestion{}).
			Where("id = ?", suggestion.ID).
			Update("progress", suggestion.Progress).Error; err != nil {
			return err
		}
		comment.SuggestionID = suggestion.ID
		return tx.Omit("CommentedBy").Create(comment).Error
	})
}

// ListComments retrieves the comments of a suggestion, oldest first
func (r *SuggestionRepository) ListComments(suggestionID uuid.UUID) ([]models.SuggestionComment, error) {
	var comments []models.SuggestionComment
	err := r.db.Preload("CommentedBy").
		Where("suggestion_id = ?", suggestionID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
