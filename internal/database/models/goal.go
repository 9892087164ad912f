package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal is an action item assigned to an employee during a review cycle
type Goal struct {
	BaseModel
	OrganisationID  uuid.UUID    `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_goals_org_display"`
	DisplayID       string       `json:"display_id" gorm:"not null;size:10;uniqueIndex:idx_goals_org_display"`
	ReviewCycleID   uuid.UUID    `json:"review_cycle_id" gorm:"type:uuid;not null;index"`
	ReviewDetailsID *uuid.UUID   `json:"review_details_id,omitempty" gorm:"type:uuid"`
	Description     string       `json:"description" gorm:"type:text;not null"`
	TargetDate      time.Time    `json:"target_date" gorm:"type:date;not null"`
	Progress        GoalProgress `json:"progress" gorm:"type:varchar(20);not null;default:'todo'"`
	AssignedToID    uuid.UUID    `json:"assigned_to_id" gorm:"type:uuid;not null;index"`
	CreatedByID     uuid.UUID    `json:"created_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Goal
func (Goal) TableName() string {
	return "goals"
}
