package service

import (
	"errors"
	"fmt"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService handles business logic for roles and permission checks
type RoleService struct {
	repo      repository.RoleRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(repo repository.RoleRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *RoleService {
	return &RoleService{
		repo:      repo,
		activity:  activity,
		validator: validator,
	}
}

// PermissionInput grants access to one module
type PermissionInput struct {
	Module models.Module `json:"module" validate:"required"`
	View   bool          `json:"view"`
	Edit   bool          `json:"edit"`
}

// RoleRequest represents the request to create or update a role
type RoleRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=50"`
	IsActive    bool              `json:"is_active"`
	Permissions []PermissionInput `json:"permissions" validate:"dive"`
}

// RoleResponse represents the response for role operations
type RoleResponse struct {
	ID          uuid.UUID         `json:"id"`
	DisplayID   string            `json:"display_id"`
	Name        string            `json:"name"`
	IsActive    bool              `json:"is_active"`
	IsSystem    bool              `json:"is_system"`
	Permissions []PermissionInput `json:"permissions"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// Create creates a custom role
func (s *RoleService) Create(actor Actor, req *RoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	permissions, err := buildPermissions(req.Permissions)
	if err != nil {
		return nil, err
	}

	name, err := trimmedText("name", req.Name)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.NameExists(actor.OrganisationID, name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRoleExists
	}

	count, err := s.repo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count roles: %w", err)
	}

	role := &models.Role{
		OrganisationID: actor.OrganisationID,
		DisplayID:      formatDisplayID("R", count+1),
		Name:           name,
		IsActive:       req.IsActive,
		Permissions:    permissions,
	}
	if err := s.repo.Create(role); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrRoleExists
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Role Created",
		fmt.Sprintf("%s %s created", role.DisplayID, role.Name))
	return toRoleResponse(role), nil
}

// GetByID retrieves a role with its permissions
func (s *RoleService) GetByID(actor Actor, id uuid.UUID) (*RoleResponse, error) {
	role, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List retrieves roles with search and pagination
func (s *RoleService) List(actor Actor, search string, page, pageSize int) (*PagedResponse[RoleResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	roles, total, err := s.repo.List(actor.OrganisationID, search, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	items := make([]RoleResponse, len(roles))
	for i := range roles {
		items[i] = *toRoleResponse(&roles[i])
	}
	return &PagedResponse[RoleResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the name, status and permissions of a role. The Org Admin role is immutable.
func (s *RoleService) Update(actor Actor, id uuid.UUID, req *RoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	permissions, err := buildPermissions(req.Permissions)
	if err != nil {
		return nil, err
	}

	role, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	if role.IsOrgAdmin() {
		return nil, apperrors.ErrSystemRoleImmutable
	}

	name, err := trimmedText("name", req.Name)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.NameExists(actor.OrganisationID, name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRoleExists
	}

	if role.IsActive && !req.IsActive {
		hasEmployees, err := s.repo.HasActiveEmployees(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check role employees: %w", err)
		}
		if hasEmployees {
			return nil, apperrors.ErrRoleHasEmployees
		}
	}

	if !role.IsSystem {
		role.Name = name
	}
	role.IsActive = req.IsActive
	role.Permissions = permissions
	if err := s.repo.Update(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Role Updated",
		fmt.Sprintf("%s %s updated", role.DisplayID, role.Name))
	return toRoleResponse(role), nil
}

// HasPermission reports whether the employee's role grants view (or edit) on module.
// Edit implies view.
func (s *RoleService) HasPermission(employeeID uuid.UUID, module models.Module, edit bool) (bool, error) {
	return hasModulePermission(s.repo, employeeID, module, edit)
}

func hasModulePermission(repo repository.RoleRepositoryInterface, employeeID uuid.UUID, module models.Module, edit bool) (bool, error) {
	permission, err := repo.GetPermission(employeeID, module)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get permission: %w", err)
	}
	if edit {
		return permission.Edit, nil
	}
	return permission.View || permission.Edit, nil
}

func (s *RoleService) get(orgID, id uuid.UUID) (*models.Role, error) {
	role, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

func buildPermissions(inputs []PermissionInput) ([]models.ModulePermission, error) {
	seen := make(map[models.Module]bool, len(inputs))
	out := make([]models.ModulePermission, 0, len(inputs))
	for _, in := range inputs {
		if !in.Module.IsValid() {
			return nil, apperrors.NewValidationError("module", fmt.Sprintf("unknown module %q", in.Module))
		}
		if seen[in.Module] {
			return nil, apperrors.NewValidationError("module", fmt.Sprintf("module %q listed more than once", in.Module))
		}
		if in.Edit && !in.View {
			return nil, apperrors.NewValidationError("permissions", fmt.Sprintf("edit on %q requires view", in.Module))
		}
		seen[in.Module] = true
		if !in.View {
			continue
		}
		out = append(out, models.ModulePermission{Module: in.Module, View: in.View, Edit: in.Edit})
	}
	return out, nil
}

// DefaultPermissions returns the permissions granted to a system role at onboarding
func DefaultPermissions(roleName string) []models.ModulePermission {
	grant := func(edit bool, modules ...models.Module) []models.ModulePermission {
		out := make([]models.ModulePermission, len(modules))
		for i, m := range modules {
			out[i] = models.ModulePermission{Module: m, View: true, Edit: edit}
		}
		return out
	}

	switch roleName {
	case models.RoleOrgAdmin:
		return grant(true, models.AllModules()...)
	case models.RoleManager:
		perms := grant(true, models.ModuleTeamReviews, models.ModuleGoals)
		return append(perms, grant(false, models.ModuleReviewCycles, models.ModuleKRAs, models.ModuleKPIs, models.ModuleEmployees)...)
	case models.RoleEmployee:
		return grant(false, models.ModuleReviewCycles, models.ModuleKRAs, models.ModuleKPIs)
	}
	return nil
}

func toRoleResponse(r *models.Role) *RoleResponse {
	perms := make([]PermissionInput, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = PermissionInput{Module: p.Module, View: p.View, Edit: p.Edit}
	}
	return &RoleResponse{
		ID:          r.ID,
		DisplayID:   r.DisplayID,
		Name:        r.Name,
		IsActive:    r.IsActive,
		IsSystem:    r.IsSystem,
		Permissions: perms,
		CreatedAt:   formatTimestamp(r.CreatedAt),
		UpdatedAt:   formatTimestamp(r.UpdatedAt),
	}
}
