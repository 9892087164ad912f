package models

import (
	"github.com/google/uuid"
)

// Department is the top level of the organisation hierarchy
type Department struct {
	BaseModel
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_departments_org_display" validate:"required"`
	DisplayID      string    `json:"display_id" gorm:"not null;size:10;uniqueIndex:idx_departments_org_display"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"size:250" validate:"max=250"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
