package repository

import (
	"performance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlackIntegrationRepository handles database operations for Slack installations
type SlackIntegrationRepository struct {
	db *gorm.DB
}

// NewSlackIntegrationRepository creates a new Slack integration repository
func NewSlackIntegrationRepository(db *gorm.DB) *SlackIntegrationRepository {
	return &SlackIntegrationRepository{db: db}
}

// Upsert stores the installation, replacing any previous one of the organisation
func (r *SlackIntegrationRepository) Upsert(integration *models.SlackIntegration) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "organisation_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"workspace_id", "workspace_name", "access_token", "channel_id", "channel_name", "bot_user_id", "updated_at",
		}),
	}).Create(integration).Error
}

// GetByOrganisationID retrieves the installation of an organisation
func (r *SlackIntegrationRepository) GetByOrganisationID(orgID uuid.UUID) (*models.SlackIntegration, error) {
	var integration models.SlackIntegration
	err := r.db.First(&integration, "organisation_id = ?", orgID).Error
	if err != nil {
		return nil, err
	}
	return &integration, nil
}

// GetByWorkspaceID retrieves the installation for a Slack workspace
func (r *SlackIntegrationRepository) GetByWorkspaceID(workspaceID string) (*models.SlackIntegration, error) {
	var integration models.SlackIntegration
	err := r.db.First(&integration, "workspace_id = ?", workspaceID).Error
	if err != nil {
		return nil, err
	}
	return &integration, nil
}

// DeleteByOrganisationID removes the installation of an organisation
func (r *SlackIntegrationRepository) DeleteByOrganisationID(orgID uuid.UUID) error {
	return r.db.Where("organisation_id = ?", orgID).Delete(&models.SlackIntegration{}).Error
}

// DeleteByWorkspaceID removes every installation of a Slack workspace
func (r *SlackIntegrationRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Where("workspace_id = ?", workspaceID).Delete(&models.SlackIntegration{}).Error
}
