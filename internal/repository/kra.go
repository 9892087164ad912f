package repository

import (
	"time"

	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KRARepository handles database operations for KRAs and their versioned weightages
type KRARepository struct {
	db *gorm.DB
}

// NewKRARepository creates a new KRA repository
func NewKRARepository(db *gorm.DB) *KRARepository {
	return &KRARepository{db: db}
}

// Create creates a KRA together with its first weightage row
func (r *KRARepository) Create(kra *models.KRA, weightage *models.KRAWeightage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(kra).Error; err != nil {
			return err
		}
		weightage.KRAID = kra.ID
		return tx.Create(weightage).Error
	})
}

// GetByID retrieves a KRA of an organisation
func (r *KRARepository) GetByID(orgID, id uuid.UUID) (*models.KRA, error) {
	var kra models.KRA
	err := r.db.First(&kra, "organisation_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &kra, nil
}

// List retrieves all KRAs of an organisation in display order
func (r *KRARepository) List(orgID uuid.UUID) ([]models.KRA, error) {
	var kras []models.KRA
	err := r.db.Where("organisation_id = ?", orgID).Order("sort_order ASC, display_id ASC").Find(&kras).Error
	return kras, err
}

// NameExists checks for a case-insensitive name clash within the organisation
func (r *KRARepository) NameExists(orgID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.KRA{}).
		Where("organisation_id = ? AND LOWER(name) = LOWER(?)", orgID, name).
		Count(&count).Error
	return count > 0, err
}

// Count returns the number of KRAs in the organisation
func (r *KRARepository) Count(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.KRA{}).Where("organisation_id = ?", orgID).Count(&count).Error
	return count, err
}

// CurrentWeightages retrieves the open weightage rows of the organisation
func (r *KRARepository) CurrentWeightages(orgID uuid.UUID) ([]models.KRAWeightage, error) {
	var weightages []models.KRAWeightage
	err := r.db.Where("organisation_id = ? AND valid_to IS NULL", orgID).Find(&weightages).Error
	return weightages, err
}

// ReplaceWeightages closes every open weightage on closeOn and inserts the next version
func (r *KRARepository) ReplaceWeightages(orgID uuid.UUID, closeOn time.Time, next []models.KRAWeightage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.KRAWeightage{}).
			Where("organisation_id = ? AND valid_to IS NULL", orgID).
			Update("valid_to", closeOn).Error; err != nil {
			return err
		}
		if len(next) == 0 {
			return nil
		}
		return tx.Create(&next).Error
	})
}

// WeightagesAt retrieves the weightages valid on day: ValidFrom <= day < ValidTo
func (r *KRARepository) WeightagesAt(orgID uuid.UUID, day time.Time) ([]models.KRAWeightage, error) {
	var weightages []models.KRAWeightage
	err := r.db.
		Where("organisation_id = ? AND valid_from <= ? AND (valid_to IS NULL OR valid_to > ?)", orgID, day, day).
		Find(&weightages).Error
	return weightages, err
}
