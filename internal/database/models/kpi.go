package models

import (
	"github.com/google/uuid"
)

// KPI is a versioned performance indicator under a KRA. Versions share the DisplayID.
type KPI struct {
	BaseModel
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;index"`
	DisplayID      string    `json:"display_id" gorm:"not null;size:10;index"`
	KRAID          uuid.UUID `json:"kra_id" gorm:"type:uuid;not null;index"`
	Title          string    `json:"title" gorm:"not null;size:150"`
	Description    string    `json:"description" gorm:"type:text"`
	Status         KPIStatus `json:"status" gorm:"type:varchar(20);not null"`
	Version        int       `json:"version" gorm:"not null"`
	IsLatest       bool      `json:"is_latest" gorm:"not null;index"`

	// Relationships
	KRA      *KRA         `json:"kra,omitempty" gorm:"foreignKey:KRAID"`
	Mappings []KPIMapping `json:"mappings,omitempty" gorm:"foreignKey:KPIID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for KPI
func (KPI) TableName() string {
	return "kpis"
}

// KPIMapping makes a KPI applicable to one designation
type KPIMapping struct {
	BaseModel
	KPIID         uuid.UUID `json:"kpi_id" gorm:"type:uuid;not null;index"`
	DepartmentID  uuid.UUID `json:"department_id" gorm:"type:uuid;not null"`
	TeamID        uuid.UUID `json:"team_id" gorm:"type:uuid;not null"`
	DesignationID uuid.UUID `json:"designation_id" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for KPIMapping
func (KPIMapping) TableName() string {
	return "kpi_mappings"
}
