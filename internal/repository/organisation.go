package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationRepository handles database operations for organisations
type OrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new organisation repository
func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// Onboard creates an organisation with its system roles, default KRAs and administrator in one transaction
func (r *OrganisationRepository) Onboard(bundle *OnboardingBundle) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bundle.Organisation).Error; err != nil {
			return err
		}
		if len(bundle.Roles) > 0 {
			if err := tx.Create(&bundle.Roles).Error; err != nil {
				return err
			}
		}
		if len(bundle.KRAs) > 0 {
			if err := tx.Create(&bundle.KRAs).Error; err != nil {
				return err
			}
		}
		if len(bundle.Weightages) > 0 {
			if err := tx.Create(&bundle.Weightages).Error; err != nil {
				return err
			}
		}
		if bundle.Admin != nil {
			if err := tx.Omit("Role", "Department", "Team", "Designation").Create(bundle.Admin).Error; err != nil {
				return err
			}
		}
		if bundle.History != nil {
			if err := tx.Create(bundle.History).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves an organisation by ID
func (r *OrganisationRepository) GetByID(id uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByDomain retrieves an organisation by domain
func (r *OrganisationRepository) GetByDomain(domain string) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.First(&org, "LOWER(domain) = LOWER(?)", domain).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organisation
func (r *OrganisationRepository) Update(org *models.Organisation) error {
	return r.db.Save(org).Error
}
