package service

import (
	"errors"
	"fmt"
	"strings"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo           repository.TeamRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	activity       ActivityRecorder
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, departmentRepo repository.DepartmentRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		departmentRepo: departmentRepo,
		activity:       activity,
		validator:      validator,
	}
}

// CreateTeamRequest describes one team to create
type CreateTeamRequest struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	Description  string    `json:"description" validate:"max=250"`
	IsActive     bool      `json:"is_active"`
}

// CreateTeamsRequest creates several teams atomically
type CreateTeamsRequest struct {
	Teams []CreateTeamRequest `json:"teams" validate:"required,min=1,dive"`
}

// UpdateTeamRequest represents the request to update a team. A team stays in its department.
type UpdateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=250"`
	IsActive    bool   `json:"is_active"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID             uuid.UUID `json:"id"`
	DisplayID      string    `json:"display_id"`
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// Create creates a batch of teams
func (s *TeamService) Create(actor Actor, req *CreateTeamsRequest) ([]TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	for i := range req.Teams {
		name, err := trimmedText("name", req.Teams[i].Name)
		if err != nil {
			return nil, err
		}
		req.Teams[i].Name = name
	}

	departments := make(map[uuid.UUID]*models.Department)
	seen := make(map[string]bool, len(req.Teams))
	for _, t := range req.Teams {
		department, ok := departments[t.DepartmentID]
		if !ok {
			d, err := s.getDepartment(actor.OrganisationID, t.DepartmentID)
			if err != nil {
				return nil, err
			}
			department = d
			departments[t.DepartmentID] = d
		}
		if t.IsActive && !department.IsActive {
			return nil, apperrors.ErrParentDepartmentInactive
		}

		key := t.DepartmentID.String() + "/" + strings.ToLower(t.Name)
		if seen[key] {
			return nil, apperrors.ErrTeamExists
		}
		seen[key] = true

		exists, err := s.repo.NameExists(t.DepartmentID, t.Name, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrTeamExists
		}
	}

	count, err := s.repo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}

	teams := make([]models.Team, len(req.Teams))
	for i, t := range req.Teams {
		teams[i] = models.Team{
			OrganisationID: actor.OrganisationID,
			DepartmentID:   t.DepartmentID,
			DisplayID:      formatDisplayID("TM", count+int64(i)+1),
			Name:           t.Name,
			Description:    t.Description,
			IsActive:       t.IsActive,
		}
	}

	if err := s.repo.CreateBatch(teams); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create teams: %w", err)
	}

	out := make([]TeamResponse, len(teams))
	for i := range teams {
		teams[i].Department = departments[teams[i].DepartmentID]
		out[i] = *s.toResponse(&teams[i])
		s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Team Created",
			fmt.Sprintf("%s %s created", teams[i].DisplayID, teams[i].Name))
	}
	return out, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(actor Actor, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(team), nil
}

// List retrieves teams, optionally of one department
func (s *TeamService) List(actor Actor, departmentID *uuid.UUID, search string, page, pageSize int) (*PagedResponse[TeamResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	filter := repository.HierarchyFilter{DepartmentID: departmentID, Search: search}
	teams, total, err := s.repo.List(actor.OrganisationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	items := make([]TeamResponse, len(teams))
	for i := range teams {
		items[i] = *s.toResponse(&teams[i])
	}
	return &PagedResponse[TeamResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a team. Publishing requires a published department; unpublishing
// cascades to designations and is refused while active employees are in the team.
func (s *TeamService) Update(actor Actor, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	name, err := trimmedText("name", req.Name)
	if err != nil {
		return nil, err
	}
	req.Name = name

	team, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.NameExists(team.DepartmentID, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamExists
	}

	if req.IsActive && (team.Department == nil || !team.Department.IsActive) {
		return nil, apperrors.ErrParentDepartmentInactive
	}

	unpublishing := team.IsActive && !req.IsActive
	team.Name = req.Name
	team.Description = req.Description

	if unpublishing {
		hasEmployees, err := s.repo.HasActiveEmployees(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check team employees: %w", err)
		}
		if hasEmployees {
			return nil, apperrors.ErrTeamHasEmployees
		}
		if err := s.repo.Unpublish(team); err != nil {
			return nil, fmt.Errorf("failed to unpublish team: %w", err)
		}
	} else {
		team.IsActive = req.IsActive
		if err := s.repo.Update(team); err != nil {
			return nil, fmt.Errorf("failed to update team: %w", err)
		}
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Team Updated",
		fmt.Sprintf("%s %s updated", team.DisplayID, team.Name))
	return s.toResponse(team), nil
}

func (s *TeamService) get(orgID, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) getDepartment(orgID, id uuid.UUID) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to verify department: %w", err)
	}
	return department, nil
}

func (s *TeamService) toResponse(t *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:           t.ID,
		DisplayID:    t.DisplayID,
		DepartmentID: t.DepartmentID,
		Name:         t.Name,
		Description:  t.Description,
		IsActive:     t.IsActive,
		CreatedAt:    formatTimestamp(t.CreatedAt),
		UpdatedAt:    formatTimestamp(t.UpdatedAt),
	}
	if t.Department != nil {
		resp.DepartmentName = t.Department.Name
	}
	return resp
}
