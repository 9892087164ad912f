package models

// Organisation represents the root entity for multi-tenancy
type Organisation struct {
	BaseModel
	Name      string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Domain    string `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	ContactNo string `json:"contact_no" gorm:"size:20"`
	TimeZone  string `json:"time_zone" gorm:"not null;size:64;default:'UTC'"`
	IsActive  bool   `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for Organisation
func (Organisation) TableName() string {
	return "organisations"
}
