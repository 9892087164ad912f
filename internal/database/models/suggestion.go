package models

import (
	"github.com/google/uuid"
)

// Suggestion is an employee suggestion addressed to the organisation
type Suggestion struct {
	BaseModel
	OrganisationID uuid.UUID          `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_suggestions_org_display"`
	DisplayID      string             `json:"display_id" gorm:"not null;size:10;uniqueIndex:idx_suggestions_org_display"`
	SuggestedByID  uuid.UUID          `json:"suggested_by_id" gorm:"type:uuid;not null;index"`
	Suggestion     string             `json:"suggestion" gorm:"type:text;not null"`
	IsAnonymous    bool               `json:"is_anonymous" gorm:"not null"`
	IsDraft        bool               `json:"is_draft" gorm:"not null"`
	Progress       SuggestionProgress `json:"progress" gorm:"type:varchar(20);not null;default:'pending'"`

	// Relationships
	SuggestedBy *Employee `json:"suggested_by,omitempty" gorm:"foreignKey:SuggestedByID"`
}

// TableName returns the table name for Suggestion
func (Suggestion) TableName() string {
	return "suggestions"
}

// SuggestionComment is a progress note left by a reviewer of the suggestion
type SuggestionComment struct {
	BaseModel
	SuggestionID  uuid.UUID          `json:"suggestion_id" gorm:"type:uuid;not null;index"`
	CommentedByID uuid.UUID          `json:"commented_by_id" gorm:"type:uuid;not null"`
	Comment       string             `json:"comment" gorm:"type:text;not null"`
	Progress      SuggestionProgress `json:"progress" gorm:"type:varchar(20);not null"`

	// Relationships
	CommentedBy *Employee `json:"commented_by,omitempty" gorm:"foreignKey:CommentedByID"`
}

// TableName returns the table name for SuggestionComment
func (SuggestionComment) TableName() string {
	return "suggestion_comments"
}
