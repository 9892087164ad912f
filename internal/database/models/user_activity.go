package models

import (
	"github.com/google/uuid"
)

// UserActivity is an audit trail entry
type UserActivity struct {
	BaseModel
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index"`
	Activity       string    `json:"activity" gorm:"not null;size:100"`
	Description    string    `json:"description" gorm:"size:500"`

	// Relationships
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for UserActivity
func (UserActivity) TableName() string {
	return "user_activities"
}
