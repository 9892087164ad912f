package models

import (
	"github.com/google/uuid"
)

// Designation is a job title inside a team
type Designation struct {
	BaseModel
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_designations_org_display" validate:"required"`
	DepartmentID   uuid.UUID `json:"department_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID         uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	DisplayID      string    `json:"display_id" gorm:"not null;size:10;uniqueIndex:idx_designations_org_display"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"size:250" validate:"max=250"`
	IsActive       bool      `json:"is_active" gorm:"not null"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Team       *Team       `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Designation
func (Designation) TableName() string {
	return "designations"
}
