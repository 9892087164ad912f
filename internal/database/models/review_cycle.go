package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewCycle is a performance review period with its phase windows.
// All dates are civil dates interpreted in the organisation's time zone.
type ReviewCycle struct {
	BaseModel
	OrganisationID         uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate              time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate                time.Time `json:"end_date" gorm:"type:date;not null"`
	Publish                bool      `json:"publish" gorm:"not null"`
	SelfReviewStartDate    time.Time `json:"self_review_start_date" gorm:"type:date;not null"`
	SelfReviewEndDate      time.Time `json:"self_review_end_date" gorm:"type:date;not null"`
	ManagerReviewStartDate time.Time `json:"manager_review_start_date" gorm:"type:date;not null"`
	ManagerReviewEndDate   time.Time `json:"manager_review_end_date" gorm:"type:date;not null"`
	CheckInStartDate       time.Time `json:"check_in_start_date" gorm:"type:date;not null"`
	CheckInEndDate         time.Time `json:"check_in_end_date" gorm:"type:date;not null"`
}

// TableName returns the table name for ReviewCycle
func (ReviewCycle) TableName() string {
	return "review_cycles"
}
