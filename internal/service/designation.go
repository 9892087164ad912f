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

// DesignationService handles business logic for designations
type DesignationService struct {
	repo      repository.DesignationRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
}

// NewDesignationService creates a new designation service
func NewDesignationService(repo repository.DesignationRepositoryInterface, teamRepo repository.TeamRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *DesignationService {
	return &DesignationService{
		repo:      repo,
		teamRepo:  teamRepo,
		activity:  activity,
		validator: validator,
	}
}

// CreateDesignationRequest describes one designation to create
type CreateDesignationRequest struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	TeamID       uuid.UUID `json:"team_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	Description  string    `json:"description" validate:"max=250"`
	IsActive     bool      `json:"is_active"`
}

// CreateDesignationsRequest creates several designations atomically
type CreateDesignationsRequest struct {
	Designations []CreateDesignationRequest `json:"designations" validate:"required,min=1,dive"`
}

// UpdateDesignationRequest represents the request to update a designation
type UpdateDesignationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=250"`
	IsActive    bool   `json:"is_active"`
}

// DesignationResponse represents the response for designation operations
type DesignationResponse struct {
	ID             uuid.UUID `json:"id"`
	DisplayID      string    `json:"display_id"`
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	TeamID         uuid.UUID `json:"team_id"`
	TeamName       string    `json:"team_name,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// Create creates a batch of designations
func (s *DesignationService) Create(actor Actor, req *CreateDesignationsRequest) ([]DesignationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	for i := range req.Designations {
		name, err := trimmedText("name", req.Designations[i].Name)
		if err != nil {
			return nil, err
		}
		req.Designations[i].Name = name
	}

	teams := make(map[uuid.UUID]*models.Team)
	seen := make(map[string]bool, len(req.Designations))
	for _, d := range req.Designations {
		team, ok := teams[d.TeamID]
		if !ok {
			t, err := s.getTeam(actor.OrganisationID, d.TeamID)
			if err != nil {
				return nil, err
			}
			team = t
			teams[d.TeamID] = t
		}
		if team.DepartmentID != d.DepartmentID {
			return nil, apperrors.NewValidationError("team_id", "team does not belong to the department")
		}
		if d.IsActive && !team.IsActive {
			return nil, apperrors.ErrParentTeamInactive
		}

		key := d.TeamID.String() + "/" + strings.ToLower(d.Name)
		if seen[key] {
			return nil, apperrors.ErrDesignationExists
		}
		seen[key] = true

		exists, err := s.repo.NameExists(d.TeamID, d.Name, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check designation name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrDesignationExists
		}
	}

	count, err := s.repo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count designations: %w", err)
	}

	designations := make([]models.Designation, len(req.Designations))
	for i, d := range req.Designations {
		team := teams[d.TeamID]
		designations[i] = models.Designation{
			OrganisationID: actor.OrganisationID,
			DepartmentID:   team.DepartmentID,
			TeamID:         team.ID,
			DisplayID:      formatDisplayID("DG", count+int64(i)+1),
			Name:           d.Name,
			Description:    d.Description,
			IsActive:       d.IsActive,
		}
	}

	if err := s.repo.CreateBatch(designations); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrDesignationExists
		}
		return nil, fmt.Errorf("failed to create designations: %w", err)
	}

	out := make([]DesignationResponse, len(designations))
	for i := range designations {
		team := teams[designations[i].TeamID]
		designations[i].Team = team
		designations[i].Department = team.Department
		out[i] = *s.toResponse(&designations[i])
		s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Designation Created",
			fmt.Sprintf("%s %s created", designations[i].DisplayID, designations[i].Name))
	}
	return out, nil
}

// GetByID retrieves a designation by ID
func (s *DesignationService) GetByID(actor Actor, id uuid.UUID) (*DesignationResponse, error) {
	designation, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(designation), nil
}

// List retrieves designations, optionally narrowed to a department or team
func (s *DesignationService) List(actor Actor, filter repository.HierarchyFilter, page, pageSize int) (*PagedResponse[DesignationResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	designations, total, err := s.repo.List(actor.OrganisationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}

	items := make([]DesignationResponse, len(designations))
	for i := range designations {
		items[i] = *s.toResponse(&designations[i])
	}
	return &PagedResponse[DesignationResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a designation
func (s *DesignationService) Update(actor Actor, id uuid.UUID, req *UpdateDesignationRequest) (*DesignationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	name, err := trimmedText("name", req.Name)
	if err != nil {
		return nil, err
	}
	req.Name = name

	designation, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.NameExists(designation.TeamID, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check designation name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDesignationExists
	}

	if req.IsActive && (designation.Team == nil || !designation.Team.IsActive) {
		return nil, apperrors.ErrParentTeamInactive
	}

	if designation.IsActive && !req.IsActive {
		hasEmployees, err := s.repo.HasActiveEmployees(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check designation employees: %w", err)
		}
		if hasEmployees {
			return nil, apperrors.ErrDesignationHasEmployees
		}
	}

	designation.Name = req.Name
	designation.Description = req.Description
	designation.IsActive = req.IsActive
	if err := s.repo.Update(designation); err != nil {
		return nil, fmt.Errorf("failed to update designation: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Designation Updated",
		fmt.Sprintf("%s %s updated", designation.DisplayID, designation.Name))
	return s.toResponse(designation), nil
}

func (s *DesignationService) get(orgID, id uuid.UUID) (*models.Designation, error) {
	designation, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDesignationNotFound
		}
		return nil, fmt.Errorf("failed to get designation: %w", err)
	}
	return designation, nil
}

func (s *DesignationService) getTeam(orgID, id uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	return team, nil
}

func (s *DesignationService) toResponse(d *models.Designation) *DesignationResponse {
	resp := &DesignationResponse{
		ID:           d.ID,
		DisplayID:    d.DisplayID,
		DepartmentID: d.DepartmentID,
		TeamID:       d.TeamID,
		Name:         d.Name,
		Description:  d.Description,
		IsActive:     d.IsActive,
		CreatedAt:    formatTimestamp(d.CreatedAt),
		UpdatedAt:    formatTimestamp(d.UpdatedAt),
	}
	if d.Department != nil {
		resp.DepartmentName = d.Department.Name
	}
	if d.Team != nil {
		resp.TeamName = d.Team.Name
	}
	return resp
}
