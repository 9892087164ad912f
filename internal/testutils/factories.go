package testutils

import (
	"fmt"
	"time"

	"performance-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// OrganisationFactory provides methods to create test Organisation data
type OrganisationFactory struct{}

// Create creates a test Organisation with a unique domain
func (f *OrganisationFactory) Create() *models.Organisation {
	base := newBase()
	return &models.Organisation{
		BaseModel: base,
		Name:      "Acme Corp",
		Domain:    fmt.Sprintf("acme-%s.io", base.ID.String()[:8]),
		ContactNo: "+1 555 0100",
		TimeZone:  "UTC",
		IsActive:  true,
	}
}

// WithTimeZone sets a custom time zone for the organisation
func (f *OrganisationFactory) WithTimeZone(tz string) *models.Organisation {
	org := f.Create()
	org.TimeZone = tz
	return org
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// WithOrganisation creates a published department in the organisation
func (f *DepartmentFactory) WithOrganisation(orgID uuid.UUID, displayID, name string) *models.Department {
	return &models.Department{
		BaseModel:      newBase(),
		OrganisationID: orgID,
		DisplayID:      displayID,
		Name:           name,
		IsActive:       true,
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// WithDepartment creates a published team under the department
func (f *TeamFactory) WithDepartment(dept *models.Department, displayID, name string) *models.Team {
	return &models.Team{
		BaseModel:      newBase(),
		OrganisationID: dept.OrganisationID,
		DepartmentID:   dept.ID,
		DisplayID:      displayID,
		Name:           name,
		IsActive:       true,
	}
}

// DesignationFactory provides methods to create test Designation data
type DesignationFactory struct{}

// WithTeam creates a published designation inside the team
func (f *DesignationFactory) WithTeam(team *models.Team, displayID, name string) *models.Designation {
	return &models.Designation{
		BaseModel:      newBase(),
		OrganisationID: team.OrganisationID,
		DepartmentID:   team.DepartmentID,
		TeamID:         team.ID,
		DisplayID:      displayID,
		Name:           name,
		IsActive:       true,
	}
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// WithPermissions creates a custom role holding the given permissions
func (f *RoleFactory) WithPermissions(orgID uuid.UUID, name string, permissions ...models.ModulePermission) *models.Role {
	return &models.Role{
		BaseModel:      newBase(),
		OrganisationID: orgID,
		DisplayID:      "R" + newBase().ID.String()[:6],
		Name:           name,
		IsActive:       true,
		Permissions:    permissions,
	}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// WithRole creates an active employee with a unique code and email
func (f *EmployeeFactory) WithRole(orgID, roleID uuid.UUID) *models.Employee {
	base := newBase()
	suffix := base.ID.String()[:8]
	return &models.Employee{
		BaseModel:      base,
		OrganisationID: orgID,
		EmployeeCode:   "E" + suffix,
		FirstName:      "Ana",
		LastName:       "Silva",
		Email:          "ana." + suffix + "@acme.io",
		Gender:         models.GenderFemale,
		DateOfJoining:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
		RoleID:         roleID,
	}
}

// InDesignation places the employee in the designation and its parents
func (f *EmployeeFactory) InDesignation(e *models.Employee, d *models.Designation) *models.Employee {
	e.DepartmentID = &d.DepartmentID
	e.TeamID = &d.TeamID
	e.DesignationID = &d.ID
	return e
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organisation *OrganisationFactory
	Department   *DepartmentFactory
	Team         *TeamFactory
	Designation  *DesignationFactory
	Role         *RoleFactory
	Employee     *EmployeeFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organisation: &OrganisationFactory{},
		Department:   &DepartmentFactory{},
		Team:         &TeamFactory{},
		Designation:  &DesignationFactory{},
		Role:         &RoleFactory{},
		Employee:     &EmployeeFactory{},
	}
}
