package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a member of an organisation. The hierarchy references are empty only for the
// administrator created at onboarding, before any department exists.
type Employee struct {
	BaseModel
	OrganisationID   uuid.UUID  `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_employees_org_code" validate:"required"`
	EmployeeCode     string     `json:"employee_code" gorm:"not null;size:20;uniqueIndex:idx_employees_org_code" validate:"required,max=20"`
	FirstName        string     `json:"first_name" gorm:"not null;size:50" validate:"required,max=50"`
	LastName         string     `json:"last_name" gorm:"not null;size:50" validate:"required,max=50"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	ContactNo        string     `json:"contact_no" gorm:"size:20"`
	Gender           Gender     `json:"gender" gorm:"type:varchar(10)"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	DateOfJoining    time.Time  `json:"date_of_joining" gorm:"type:date;not null"`
	ExperienceMonths int        `json:"experience_months" gorm:"not null"`
	IsConsultant     bool       `json:"is_consultant" gorm:"not null"`
	IsActive         bool       `json:"is_active" gorm:"not null"`
	RoleID           uuid.UUID  `json:"role_id" gorm:"type:uuid;not null;index"`
	DepartmentID     *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`
	TeamID           *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	DesignationID    *uuid.UUID `json:"designation_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Role        *Role        `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Department  *Department  `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Designation *Designation `json:"designation,omitempty" gorm:"foreignKey:DesignationID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// FullName joins first and last name
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeeManagerMapping links an employee to a first or second manager
type EmployeeManagerMapping struct {
	BaseModel
	EmployeeID uuid.UUID   `json:"employee_id" gorm:"type:uuid;not null;index"`
	ManagerID  uuid.UUID   `json:"manager_id" gorm:"type:uuid;not null;index"`
	Type       ManagerType `json:"type" gorm:"not null"`
	IsActive   bool        `json:"is_active" gorm:"not null;index"`
}

// TableName returns the table name for EmployeeManagerMapping
func (EmployeeManagerMapping) TableName() string {
	return "employee_manager_mappings"
}

// EmployeeHistory records the periods an employee was active
type EmployeeHistory struct {
	BaseModel
	EmployeeID    uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index"`
	ActivatedAt   time.Time  `json:"activated_at" gorm:"not null"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

// TableName returns the table name for EmployeeHistory
func (EmployeeHistory) TableName() string {
	return "employee_histories"
}
