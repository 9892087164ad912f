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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      repository.DepartmentRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		activity:  activity,
		validator: validator,
	}
}

// CreateDepartmentRequest describes one department to create
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=250"`
	IsActive    bool   `json:"is_active"`
}

// CreateDepartmentsRequest creates several departments atomically
type CreateDepartmentsRequest struct {
	Departments []CreateDepartmentRequest `json:"departments" validate:"required,min=1,dive"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=250"`
	IsActive    bool   `json:"is_active"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayID   string    `json:"display_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates a batch of departments with sequential display IDs
func (s *DepartmentService) Create(actor Actor, req *CreateDepartmentsRequest) ([]DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	for i := range req.Departments {
		name, err := trimmedText("name", req.Departments[i].Name)
		if err != nil {
			return nil, err
		}
		req.Departments[i].Name = name
	}

	seen := make(map[string]bool, len(req.Departments))
	for _, d := range req.Departments {
		key := strings.ToLower(d.Name)
		if seen[key] {
			return nil, apperrors.ErrDepartmentExists
		}
		seen[key] = true

		exists, err := s.repo.NameExists(actor.OrganisationID, d.Name, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check department name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrDepartmentExists
		}
	}

	count, err := s.repo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}

	departments := make([]models.Department, len(req.Departments))
	for i, d := range req.Departments {
		departments[i] = models.Department{
			OrganisationID: actor.OrganisationID,
			DisplayID:      formatDisplayID("DEP", count+int64(i)+1),
			Name:           d.Name,
			Description:    d.Description,
			IsActive:       d.IsActive,
		}
	}

	if err := s.repo.CreateBatch(departments); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create departments: %w", err)
	}

	out := make([]DepartmentResponse, len(departments))
	for i := range departments {
		out[i] = *s.toResponse(&departments[i])
		s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Department Created",
			fmt.Sprintf("%s %s created", departments[i].DisplayID, departments[i].Name))
	}
	return out, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(actor Actor, id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(department), nil
}

// List retrieves departments with search and pagination
func (s *DepartmentService) List(actor Actor, search string, page, pageSize int) (*PagedResponse[DepartmentResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	departments, total, err := s.repo.List(actor.OrganisationID, search, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	items := make([]DepartmentResponse, len(departments))
	for i := range departments {
		items[i] = *s.toResponse(&departments[i])
	}
	return &PagedResponse[DepartmentResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a department. Unpublishing also unpublishes its teams and designations
// and is refused while active employees belong to the department.
func (s *DepartmentService) Update(actor Actor, id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	name, err := trimmedText("name", req.Name)
	if err != nil {
		return nil, err
	}
	req.Name = name

	department, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.NameExists(actor.OrganisationID, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentExists
	}

	unpublishing := department.IsActive && !req.IsActive
	department.Name = req.Name
	department.Description = req.Description

	if unpublishing {
		hasEmployees, err := s.repo.HasActiveEmployees(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check department employees: %w", err)
		}
		if hasEmployees {
			return nil, apperrors.ErrDepartmentHasEmployees
		}
		if err := s.repo.Unpublish(department); err != nil {
			return nil, fmt.Errorf("failed to unpublish department: %w", err)
		}
	} else {
		department.IsActive = req.IsActive
		if err := s.repo.Update(department); err != nil {
			return nil, fmt.Errorf("failed to update department: %w", err)
		}
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Department Updated",
		fmt.Sprintf("%s %s updated", department.DisplayID, department.Name))
	return s.toResponse(department), nil
}

func (s *DepartmentService) get(orgID, id uuid.UUID) (*models.Department, error) {
	department, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return department, nil
}

func (s *DepartmentService) toResponse(d *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          d.ID,
		DisplayID:   d.DisplayID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   formatTimestamp(d.CreatedAt),
		UpdatedAt:   formatTimestamp(d.UpdatedAt),
	}
}
