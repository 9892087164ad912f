package models

import (
	"time"

	"github.com/google/uuid"
)

// KRA is a key result area that groups KPIs
type KRA struct {
	BaseModel
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_kras_org_display"`
	DisplayID      string    `json:"display_id" gorm:"not null;size:10;uniqueIndex:idx_kras_org_display"`
	Name           string    `json:"name" gorm:"not null;size:100"`
	Description    string    `json:"description" gorm:"size:500"`
	SortOrder      int       `json:"sort_order" gorm:"not null"`
}

// TableName returns the table name for KRA
func (KRA) TableName() string {
	return "kras"
}

// KRAWeightage is one versioned weightage of a KRA. A row with a nil ValidTo is current.
type KRAWeightage struct {
	BaseModel
	KRAID          uuid.UUID  `json:"kra_id" gorm:"type:uuid;not null;uniqueIndex:idx_kra_weightages_version"`
	OrganisationID uuid.UUID  `json:"organisation_id" gorm:"type:uuid;not null;index"`
	Weightage      int        `json:"weightage" gorm:"not null"`
	Version        int        `json:"version" gorm:"not null;uniqueIndex:idx_kra_weightages_version"`
	ValidFrom      time.Time  `json:"valid_from" gorm:"type:date;not null"`
	ValidTo        *time.Time `json:"valid_to,omitempty" gorm:"type:date"`
}

// TableName returns the table name for KRAWeightage
func (KRAWeightage) TableName() string {
	return "kra_weightages"
}
