package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees and their reporting lines
type EmployeeService struct {
	repo            repository.EmployeeRepositoryInterface
	roleRepo        repository.RoleRepositoryInterface
	departmentRepo  repository.DepartmentRepositoryInterface
	teamRepo        repository.TeamRepositoryInterface
	designationRepo repository.DesignationRepositoryInterface
	directory       DirectorySearcher
	activity        ActivityRecorder
	validator       *validator.Validate
	now             func() time.Time
}

// NewEmployeeService creates a new employee service. directory may be nil when no LDAP server is configured.
func NewEmployeeService(
	repo repository.EmployeeRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	designationRepo repository.DesignationRepositoryInterface,
	directory DirectorySearcher,
	activity ActivityRecorder,
	validator *validator.Validate,
) *EmployeeService {
	return &EmployeeService{
		repo:            repo,
		roleRepo:        roleRepo,
		departmentRepo:  departmentRepo,
		teamRepo:        teamRepo,
		designationRepo: designationRepo,
		directory:       directory,
		activity:        activity,
		validator:       validator,
		now:             time.Now,
	}
}

// WithClock replaces the time source
func (s *EmployeeService) WithClock(now func() time.Time) *EmployeeService {
	s.now = now
	return s
}

// EmployeeRequest represents the request to create or update an employee.
// IsActive is only read on create; use SetStatus afterwards.
type EmployeeRequest struct {
	EmployeeCode     string        `json:"employee_code" validate:"required,max=20"`
	FirstName        string        `json:"first_name" validate:"required,max=50"`
	LastName         string        `json:"last_name" validate:"required,max=50"`
	Email            string        `json:"email" validate:"required,email,max=255"`
	ContactNo        string        `json:"contact_no" validate:"max=20"`
	Gender           models.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth      string        `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfJoining    string        `json:"date_of_joining" validate:"required,datetime=2006-01-02"`
	ExperienceMonths int           `json:"experience_months" validate:"min=0"`
	IsConsultant     bool          `json:"is_consultant"`
	IsActive         bool          `json:"is_active"`
	RoleID           uuid.UUID     `json:"role_id" validate:"required"`
	DepartmentID     uuid.UUID     `json:"department_id" validate:"required"`
	TeamID           uuid.UUID     `json:"team_id" validate:"required"`
	DesignationID    uuid.UUID     `json:"designation_id" validate:"required"`
	FirstManagerID   *uuid.UUID    `json:"first_manager_id,omitempty"`
	SecondManagerID  *uuid.UUID    `json:"second_manager_id,omitempty"`
}

// RefResponse is a compact reference to a related record
type RefResponse struct {
	ID        uuid.UUID `json:"id"`
	DisplayID string    `json:"display_id"`
	Name      string    `json:"name"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID               uuid.UUID     `json:"id"`
	EmployeeCode     string        `json:"employee_code"`
	FirstName        string        `json:"first_name"`
	LastName         string        `json:"last_name"`
	FullName         string        `json:"full_name"`
	Email            string        `json:"email"`
	ContactNo        string        `json:"contact_no"`
	Gender           models.Gender `json:"gender,omitempty"`
	DateOfBirth      string        `json:"date_of_birth,omitempty"`
	DateOfJoining    string        `json:"date_of_joining"`
	ExperienceMonths int           `json:"experience_months"`
	IsConsultant     bool          `json:"is_consultant"`
	IsActive         bool          `json:"is_active"`
	Role             *RefResponse  `json:"role,omitempty"`
	Department       *RefResponse  `json:"department,omitempty"`
	Team             *RefResponse  `json:"team,omitempty"`
	Designation      *RefResponse  `json:"designation,omitempty"`
	FirstManagerID   *uuid.UUID    `json:"first_manager_id,omitempty"`
	SecondManagerID  *uuid.UUID    `json:"second_manager_id,omitempty"`
}

// EmployeeListRequest carries listing filters and pagination
type EmployeeListRequest struct {
	repository.EmployeeFilter
	Page     int
	PageSize int
}

type employeeRefs struct {
	role        *models.Role
	department  *models.Department
	team        *models.Team
	designation *models.Designation
}

// Create creates an employee with manager mappings and an activation history row
func (s *EmployeeService) Create(actor Actor, req *EmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if err := s.checkUnique(actor.OrganisationID, req, uuid.Nil); err != nil {
		return nil, err
	}
	refs, err := s.resolveRefs(actor.OrganisationID, req)
	if err != nil {
		return nil, err
	}
	managers, err := s.resolveManagers(actor.OrganisationID, uuid.Nil, req)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{OrganisationID: actor.OrganisationID, IsActive: req.IsActive}
	if err := applyEmployeeRequest(employee, req, refs); err != nil {
		return nil, err
	}

	if err := s.repo.Create(employee, managers); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Employee Created",
		fmt.Sprintf("%s %s created", employee.EmployeeCode, employee.FullName()))
	return toEmployeeResponse(employee, managers), nil
}

// Update updates an employee and replaces their manager mappings
func (s *EmployeeService) Update(actor Actor, id uuid.UUID, req *EmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	employee, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(actor.OrganisationID, req, id); err != nil {
		return nil, err
	}
	refs, err := s.resolveRefs(actor.OrganisationID, req)
	if err != nil {
		return nil, err
	}
	managers, err := s.resolveManagers(actor.OrganisationID, id, req)
	if err != nil {
		return nil, err
	}

	if err := applyEmployeeRequest(employee, req, refs); err != nil {
		return nil, err
	}
	if err := s.repo.Update(employee, managers); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Employee Updated",
		fmt.Sprintf("%s %s updated", employee.EmployeeCode, employee.FullName()))
	return toEmployeeResponse(employee, managers), nil
}

// SetStatus activates or deactivates an employee
func (s *EmployeeService) SetStatus(actor Actor, id uuid.UUID, active bool) (*EmployeeResponse, error) {
	employee, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	if !active && id == actor.EmployeeID {
		return nil, apperrors.ErrSelfDeactivation
	}
	if employee.IsActive == active {
		return toEmployeeResponse(employee, nil), nil
	}

	if !active {
		reportees, err := s.repo.CountActiveReportees(id)
		if err != nil {
			return nil, fmt.Errorf("failed to count reportees: %w", err)
		}
		if reportees > 0 {
			return nil, apperrors.ErrEmployeeIsManager
		}
	}

	employee.IsActive = active
	if err := s.repo.SetStatus(employee, s.now()); err != nil {
		return nil, fmt.Errorf("failed to update employee status: %w", err)
	}

	activity := "Employee Activated"
	if !active {
		activity = "Employee Deactivated"
	}
	s.activity.Record(actor.OrganisationID, actor.EmployeeID, activity,
		fmt.Sprintf("%s %s", employee.EmployeeCode, employee.FullName()))
	return toEmployeeResponse(employee, nil), nil
}

// GetByID retrieves an employee with their managers
func (s *EmployeeService) GetByID(actor Actor, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	managers, err := s.repo.GetManagers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get managers: %w", err)
	}
	return toEmployeeResponse(employee, managers), nil
}

// List retrieves employees matching the filter
func (s *EmployeeService) List(actor Actor, req EmployeeListRequest) (*PagedResponse[EmployeeResponse], error) {
	page, pageSize, offset := normalizePagination(req.Page, req.PageSize)

	employees, total, err := s.repo.List(actor.OrganisationID, req.EmployeeFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	items := make([]EmployeeResponse, len(employees))
	for i := range employees {
		items[i] = *toEmployeeResponse(&employees[i], nil)
	}
	return &PagedResponse[EmployeeResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetReportees retrieves the active employees reporting to the actor
func (s *EmployeeService) GetReportees(actor Actor) ([]EmployeeResponse, error) {
	employees, err := s.repo.GetReportees(actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reportees: %w", err)
	}
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = *toEmployeeResponse(&employees[i], nil)
	}
	return out, nil
}

// SearchDirectory looks people up in the corporate directory
func (s *EmployeeService) SearchDirectory(query string) ([]DirectoryEntry, error) {
	if s.directory == nil {
		return nil, apperrors.ErrLDAPNotConfigured
	}
	entries, err := s.directory.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search directory: %w", err)
	}
	return entries, nil
}

func (s *EmployeeService) get(orgID, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) checkUnique(orgID uuid.UUID, req *EmployeeRequest, excludeID uuid.UUID) error {
	exists, err := s.repo.EmailExists(req.Email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return apperrors.ErrEmployeeExists
	}
	exists, err = s.repo.CodeExists(orgID, req.EmployeeCode, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return apperrors.ErrEmployeeExists
	}
	return nil
}

// resolveRefs loads the role and hierarchy and checks they are published and consistent
func (s *EmployeeService) resolveRefs(orgID uuid.UUID, req *EmployeeRequest) (*employeeRefs, error) {
	refs := &employeeRefs{}
	var err error

	if refs.role, err = s.roleRepo.GetByID(orgID, req.RoleID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrRoleNotFound, "failed to verify role")
	}
	if refs.department, err = s.departmentRepo.GetByID(orgID, req.DepartmentID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrDepartmentNotFound, "failed to verify department")
	}
	if refs.team, err = s.teamRepo.GetByID(orgID, req.TeamID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrTeamNotFound, "failed to verify team")
	}
	if refs.designation, err = s.designationRepo.GetByID(orgID, req.DesignationID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrDesignationNotFound, "failed to verify designation")
	}

	if !refs.role.IsActive || !refs.department.IsActive || !refs.team.IsActive || !refs.designation.IsActive {
		return nil, apperrors.ErrInactiveReference
	}
	if refs.team.DepartmentID != refs.department.ID {
		return nil, apperrors.NewValidationError("team_id", "team does not belong to the department")
	}
	if refs.designation.TeamID != refs.team.ID {
		return nil, apperrors.NewValidationError("designation_id", "designation does not belong to the team")
	}
	return refs, nil
}

func (s *EmployeeService) resolveManagers(orgID, selfID uuid.UUID, req *EmployeeRequest) ([]models.EmployeeManagerMapping, error) {
	if req.FirstManagerID == nil {
		if req.SecondManagerID != nil {
			return nil, apperrors.NewValidationError("first_manager_id", "is required when a second manager is set")
		}
		return nil, nil
	}
	if req.SecondManagerID != nil && *req.SecondManagerID == *req.FirstManagerID {
		return nil, apperrors.ErrSameManagers
	}

	candidates := []struct {
		id  *uuid.UUID
		typ models.ManagerType
	}{
		{req.FirstManagerID, models.ManagerTypeFirst},
		{req.SecondManagerID, models.ManagerTypeSecond},
	}

	var out []models.EmployeeManagerMapping
	for _, c := range candidates {
		if c.id == nil {
			continue
		}
		if selfID != uuid.Nil && *c.id == selfID {
			return nil, apperrors.ErrSelfManager
		}
		manager, err := s.repo.GetByID(orgID, *c.id)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrManagerNotFound, "failed to verify manager")
		}
		if !manager.IsActive {
			return nil, apperrors.ErrManagerNotFound
		}
		out = append(out, models.EmployeeManagerMapping{ManagerID: manager.ID, Type: c.typ, IsActive: true})
	}
	return out, nil
}

func applyEmployeeRequest(e *models.Employee, req *EmployeeRequest, refs *employeeRefs) error {
	joined, err := ParseDate("date_of_joining", req.DateOfJoining)
	if err != nil {
		return err
	}
	var birth *time.Time
	if req.DateOfBirth != "" {
		b, err := ParseDate("date_of_birth", req.DateOfBirth)
		if err != nil {
			return err
		}
		birth = &b
	}

	e.EmployeeCode = strings.TrimSpace(req.EmployeeCode)
	e.FirstName = strings.TrimSpace(req.FirstName)
	e.LastName = strings.TrimSpace(req.LastName)
	e.Email = strings.ToLower(strings.TrimSpace(req.Email))
	e.ContactNo = req.ContactNo
	e.Gender = req.Gender
	e.DateOfBirth = birth
	e.DateOfJoining = joined
	e.ExperienceMonths = req.ExperienceMonths
	e.IsConsultant = req.IsConsultant
	e.RoleID = refs.role.ID
	e.DepartmentID = &refs.department.ID
	e.TeamID = &refs.team.ID
	e.DesignationID = &refs.designation.ID
	e.Role = refs.role
	e.Department = refs.department
	e.Team = refs.team
	e.Designation = refs.designation
	return nil
}

func notFoundOr(err, notFound error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toEmployeeResponse(e *models.Employee, managers []models.EmployeeManagerMapping) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		FullName:         e.FullName(),
		Email:            e.Email,
		ContactNo:        e.ContactNo,
		Gender:           e.Gender,
		DateOfJoining:    formatDate(e.DateOfJoining),
		ExperienceMonths: e.ExperienceMonths,
		IsConsultant:     e.IsConsultant,
		IsActive:         e.IsActive,
	}
	if e.DateOfBirth != nil {
		resp.DateOfBirth = formatDate(*e.DateOfBirth)
	}
	if e.Role != nil {
		resp.Role = &RefResponse{ID: e.Role.ID, DisplayID: e.Role.DisplayID, Name: e.Role.Name}
	}
	if e.Department != nil {
		resp.Department = &RefResponse{ID: e.Department.ID, DisplayID: e.Department.DisplayID, Name: e.Department.Name}
	}
	if e.Team != nil {
		resp.Team = &RefResponse{ID: e.Team.ID, DisplayID: e.Team.DisplayID, Name: e.Team.Name}
	}
	if e.Designation != nil {
		resp.Designation = &RefResponse{ID: e.Designation.ID, DisplayID: e.Designation.DisplayID, Name: e.Designation.Name}
	}
	for _, m := range managers {
		id := m.ManagerID
		switch m.Type {
		case models.ManagerTypeFirst:
			resp.FirstManagerID = &id
		case models.ManagerTypeSecond:
			resp.SecondManagerID = &id
		}
	}
	return resp
}
