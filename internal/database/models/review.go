package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReviewDetails is the header of one review written by ReviewFrom about ReviewTo
type ReviewDetails struct {
	BaseModel
	OrganisationID uuid.UUID       `json:"organisation_id" gorm:"type:uuid;not null;index"`
	ReviewCycleID  uuid.UUID       `json:"review_cycle_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_details_unique"`
	ReviewType     ReviewType      `json:"review_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_review_details_unique"`
	ReviewToID     uuid.UUID       `json:"review_to_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_details_unique"`
	ReviewFromID   uuid.UUID       `json:"review_from_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_details_unique"`
	Draft          bool            `json:"draft" gorm:"not null"`
	Published      bool            `json:"published" gorm:"not null"`
	AverageRating  decimal.Decimal `json:"average_rating" gorm:"type:numeric(4,2);not null;default:0"`
	SubmittedAt    *time.Time      `json:"submitted_at,omitempty"`

	// Relationships
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ReviewDetailsID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ReviewDetails
func (ReviewDetails) TableName() string {
	return "review_details"
}

// Review is the feedback and rating for one KPI
type Review struct {
	BaseModel
	ReviewDetailsID uuid.UUID `json:"review_details_id" gorm:"type:uuid;not null;index"`
	KPIID           uuid.UUID `json:"kpi_id" gorm:"type:uuid;not null"`
	Review          string    `json:"review" gorm:"type:text"`
	Rating          int       `json:"rating" gorm:"not null;default:0"`
}

// TableName returns the table name for Review
func (Review) TableName() string {
	return "reviews"
}
