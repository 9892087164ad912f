package models

import (
	"github.com/google/uuid"
)

// SlackIntegration stores the bot installation of an organisation's Slack workspace
type SlackIntegration struct {
	BaseModel
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex"`
	WorkspaceID    string    `json:"workspace_id" gorm:"not null;size:50;index"`
	WorkspaceName  string    `json:"workspace_name" gorm:"size:100"`
	AccessToken    string    `json:"-" gorm:"not null;size:255"`
	ChannelID      string    `json:"channel_id" gorm:"size:50"`
	ChannelName    string    `json:"channel_name" gorm:"size:100"`
	BotUserID      string    `json:"bot_user_id" gorm:"size:50"`
}

// TableName returns the table name for SlackIntegration
func (SlackIntegration) TableName() string {
	return "slack_integrations"
}
