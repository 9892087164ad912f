package repository

import (
	"time"

	"performance-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganisationRepositoryInterface defines the interface for organisation repository operations
type OrganisationRepositoryInterface interface {
	Onboard(bundle *OnboardingBundle) error
	GetByID(id uuid.UUID) (*models.Organisation, error)
	GetByDomain(domain string) (*models.Organisation, error)
	Update(org *models.Organisation) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	CreateBatch(departments []models.Department) error
	GetByID(orgID, id uuid.UUID) (*models.Department, error)
	NameExists(orgID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Count(orgID uuid.UUID) (int64, error)
	List(orgID uuid.UUID, search string, limit, offset int) ([]models.Department, int64, error)
	Update(department *models.Department) error
	Unpublish(department *models.Department) error
	HasActiveEmployees(id uuid.UUID) (bool, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateBatch(teams []models.Team) error
	GetByID(orgID, id uuid.UUID) (*models.Team, error)
	NameExists(departmentID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Count(orgID uuid.UUID) (int64, error)
	List(orgID uuid.UUID, filter HierarchyFilter, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Unpublish(team *models.Team) error
	HasActiveEmployees(id uuid.UUID) (bool, error)
}

// DesignationRepositoryInterface defines the interface for designation repository operations
type DesignationRepositoryInterface interface {
	CreateBatch(designations []models.Designation) error
	GetByID(orgID, id uuid.UUID) (*models.Designation, error)
	NameExists(teamID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Count(orgID uuid.UUID) (int64, error)
	List(orgID uuid.UUID, filter HierarchyFilter, limit, offset int) ([]models.Designation, int64, error)
	Update(designation *models.Designation) error
	HasActiveEmployees(id uuid.UUID) (bool, error)
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(orgID, id uuid.UUID) (*models.Role, error)
	NameExists(orgID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Count(orgID uuid.UUID) (int64, error)
	List(orgID uuid.UUID, search string, limit, offset int) ([]models.Role, int64, error)
	Update(role *models.Role) error
	HasActiveEmployees(id uuid.UUID) (bool, error)
	GetPermission(employeeID uuid.UUID, module models.Module) (*models.ModulePermission, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee, managers []models.EmployeeManagerMapping) error
	Update(employee *models.Employee, managers []models.EmployeeManagerMapping) error
	SetStatus(employee *models.Employee, at time.Time) error
	GetByID(orgID, id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	EmailExists(email string, excludeID uuid.UUID) (bool, error)
	CodeExists(orgID uuid.UUID, code string, excludeID uuid.UUID) (bool, error)
	List(orgID uuid.UUID, filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error)
	ListActive(orgID uuid.UUID) ([]models.Employee, error)
	GetManagers(employeeID uuid.UUID) ([]models.EmployeeManagerMapping, error)
	GetReportees(managerID uuid.UUID) ([]models.Employee, error)
	CountActiveReportees(managerID uuid.UUID) (int64, error)
}

// ReviewCycleRepositoryInterface defines the interface for review cycle repository operations
type ReviewCycleRepositoryInterface interface {
	Create(cycle *models.ReviewCycle) error
	Update(cycle *models.ReviewCycle) error
	GetByID(orgID, id uuid.UUID) (*models.ReviewCycle, error)
	List(orgID uuid.UUID, limit, offset int) ([]models.ReviewCycle, int64, error)
	GetPublishedCovering(orgID uuid.UUID, day time.Time) (*models.ReviewCycle, error)
	HasPublishedEndingOnOrAfter(orgID uuid.UUID, day time.Time, excludeID uuid.UUID) (bool, error)
	HasOverlap(orgID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error)
}

// KRARepositoryInterface defines the interface for KRA repository operations
type KRARepositoryInterface interface {
	Create(kra *models.KRA, weightage *models.KRAWeightage) error
	GetByID(orgID, id uuid.UUID) (*models.KRA, error)
	List(orgID uuid.UUID) ([]models.KRA, error)
	NameExists(orgID uuid.UUID, name string) (bool, error)
	Count(orgID uuid.UUID) (int64, error)
	CurrentWeightages(orgID uuid.UUID) ([]models.KRAWeightage, error)
	ReplaceWeightages(orgID uuid.UUID, closeOn time.Time, next []models.KRAWeightage) error
	WeightagesAt(orgID uuid.UUID, day time.Time) ([]models.KRAWeightage, error)
}

// KPIRepositoryInterface defines the interface for KPI repository operations
type KPIRepositoryInterface interface {
	Create(kpi *models.KPI) error
	CreateVersion(previous, next *models.KPI) error
	UpdateStatus(id uuid.UUID, status models.KPIStatus) error
	GetByID(orgID, id uuid.UUID) (*models.KPI, error)
	CountDisplayIDs(orgID uuid.UUID) (int64, error)
	List(orgID uuid.UUID, filter KPIFilter, limit, offset int) ([]models.KPI, int64, error)
	ListApplicable(orgID, designationID uuid.UUID) ([]models.KPI, error)
}

// ReviewRepositoryInterface defines the interface for review repository operations
type ReviewRepositoryInterface interface {
	GetDetails(cycleID, reviewToID uuid.UUID, reviewType models.ReviewType, reviewFromID uuid.UUID) (*models.ReviewDetails, error)
	Save(details *models.ReviewDetails, goals []models.Goal) error
	ListByCycle(cycleID uuid.UUID, reviewToIDs []uuid.UUID) ([]models.ReviewDetails, error)
}

// GoalRepositoryInterface defines the interface for goal repository operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(orgID, id uuid.UUID) (*models.Goal, error)
	Count(orgID uuid.UUID) (int64, error)
	UpdateProgress(id uuid.UUID, progress models.GoalProgress) error
	List(orgID uuid.UUID, filter GoalFilter, limit, offset int) ([]models.Goal, int64, error)
}

// SuggestionRepositoryInterface defines the interface for suggestion repository operations
type SuggestionRepositoryInterface interface {
	Create(suggestion *models.Suggestion) error
	GetByID(orgID, id uuid.UUID) (*models.Suggestion, error)
	Count(orgID uuid.UUID) (int64, error)
	Update(suggestion *models.Suggestion) error
	ListBySuggester(orgID, employeeID uuid.UUID, limit, offset int) ([]models.Suggestion, int64, error)
	ListReceived(orgID uuid.UUID, progress models.SuggestionProgress, limit, offset int) ([]models.Suggestion, int64, error)
	AddProgress(suggestion *models.Suggestion, comment *models.SuggestionComment) error
	ListComments(suggestionID uuid.UUID) ([]models.SuggestionComment, error)
}

// UserActivityRepositoryInterface defines the interface for user activity repository operations
type UserActivityRepositoryInterface interface {
	Create(activity *models.UserActivity) error
	List(orgID uuid.UUID, limit, offset int) ([]models.UserActivity, int64, error)
}

// SlackIntegrationRepositoryInterface defines the interface for Slack integration repository operations
type SlackIntegrationRepositoryInterface interface {
	Upsert(integration *models.SlackIntegration) error
	GetByOrganisationID(orgID uuid.UUID) (*models.SlackIntegration, error)
	GetByWorkspaceID(workspaceID string) (*models.SlackIntegration, error)
	DeleteByOrganisationID(orgID uuid.UUID) error
	DeleteByWorkspaceID(workspaceID string) error
}
