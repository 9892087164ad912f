package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KPIService manages versioned KPIs and where they apply
type KPIService struct {
	repo            repository.KPIRepositoryInterface
	kraRepo         repository.KRARepositoryInterface
	departmentRepo  repository.DepartmentRepositoryInterface
	teamRepo        repository.TeamRepositoryInterface
	designationRepo repository.DesignationRepositoryInterface
	employeeRepo    repository.EmployeeRepositoryInterface
	activity        ActivityRecorder
	validator       *validator.Validate
}

// NewKPIService creates a new KPI service
func NewKPIService(
	repo repository.KPIRepositoryInterface,
	kraRepo repository.KRARepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	designationRepo repository.DesignationRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	activity ActivityRecorder,
	validator *validator.Validate,
) *KPIService {
	return &KPIService{
		repo:            repo,
		kraRepo:         kraRepo,
		departmentRepo:  departmentRepo,
		teamRepo:        teamRepo,
		designationRepo: designationRepo,
		employeeRepo:    employeeRepo,
		activity:        activity,
		validator:       validator,
	}
}

// KPIMappingInput applies a KPI to designations of one team
type KPIMappingInput struct {
	DepartmentID   uuid.UUID   `json:"department_id" validate:"required"`
	TeamID         uuid.UUID   `json:"team_id" validate:"required"`
	DesignationIDs []uuid.UUID `json:"designation_ids" validate:"required,min=1"`
}

// KPIRequest represents the request to create or update a KPI
type KPIRequest struct {
	KRAID       uuid.UUID         `json:"kra_id" validate:"required"`
	Title       string            `json:"title" validate:"required,min=1,max=150"`
	Description string            `json:"description" validate:"max=2000"`
	Status      models.KPIStatus  `json:"status" validate:"required,oneof=published unpublished"`
	Mappings    []KPIMappingInput `json:"mappings" validate:"required,min=1,dive"`
}

// KPIListRequest carries listing filters and pagination
type KPIListRequest struct {
	repository.KPIFilter
	Page     int
	PageSize int
}

// KPIResponse represents the response for KPI operations
type KPIResponse struct {
	ID          uuid.UUID         `json:"id"`
	DisplayID   string            `json:"display_id"`
	KRAID       uuid.UUID         `json:"kra_id"`
	KRAName     string            `json:"kra_name,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.KPIStatus  `json:"status"`
	Version     int               `json:"version"`
	IsLatest    bool              `json:"is_latest"`
	Mappings    []KPIMappingInput `json:"mappings"`
	CreatedAt   string            `json:"created_at"`
}

// Create creates version 1 of a KPI
func (s *KPIService) Create(actor Actor, req *KPIRequest) (*KPIResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	kra, err := s.getKRA(actor.OrganisationID, req.KRAID)
	if err != nil {
		return nil, err
	}
	mappings, err := s.resolveMappings(actor.OrganisationID, req.Mappings)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountDisplayIDs(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count KPIs: %w", err)
	}

	kpi := &models.KPI{
		OrganisationID: actor.OrganisationID,
		DisplayID:      formatDisplayID("K", count+1),
		KRAID:          kra.ID,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Status:         req.Status,
		Version:        1,
		IsLatest:       true,
		Mappings:       mappings,
	}
	if err := s.repo.Create(kpi); err != nil {
		return nil, fmt.Errorf("failed to create KPI: %w", err)
	}
	kpi.KRA = kra

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "KPI Created",
		fmt.Sprintf("%s %s created", kpi.DisplayID, kpi.Title))
	return toKPIResponse(kpi), nil
}

// Update changes a KPI. A status-only change is applied in place; anything else
// writes a new version under the same display ID.
func (s *KPIService) Update(actor Actor, id uuid.UUID, req *KPIRequest) (*KPIResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	current, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	if !current.IsLatest {
		return nil, apperrors.NewValidationError("id", "only the latest version of a KPI can be edited")
	}
	kra, err := s.getKRA(actor.OrganisationID, req.KRAID)
	if err != nil {
		return nil, err
	}
	mappings, err := s.resolveMappings(actor.OrganisationID, req.Mappings)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	contentChanged := current.KRAID != req.KRAID ||
		current.Title != title ||
		current.Description != req.Description ||
		!sameDesignations(current.Mappings, mappings)

	if !contentChanged {
		if current.Status != req.Status {
			if err := s.repo.UpdateStatus(current.ID, req.Status); err != nil {
				return nil, fmt.Errorf("failed to update KPI status: %w", err)
			}
			current.Status = req.Status
			s.activity.Record(actor.OrganisationID, actor.EmployeeID, "KPI Status Updated",
				fmt.Sprintf("%s marked %s", current.DisplayID, current.Status))
		}
		return toKPIResponse(current), nil
	}

	next := &models.KPI{
		OrganisationID: actor.OrganisationID,
		DisplayID:      current.DisplayID,
		KRAID:          kra.ID,
		Title:          title,
		Description:    req.Description,
		Status:         req.Status,
		Version:        current.Version + 1,
		IsLatest:       true,
		Mappings:       mappings,
	}
	if err := s.repo.CreateVersion(current, next); err != nil {
		return nil, fmt.Errorf("failed to create KPI version: %w", err)
	}
	next.KRA = kra

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "KPI Updated",
		fmt.Sprintf("%s updated to version %d", next.DisplayID, next.Version))
	return toKPIResponse(next), nil
}

// GetByID retrieves one KPI version
func (s *KPIService) GetByID(actor Actor, id uuid.UUID) (*KPIResponse, error) {
	kpi, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	return toKPIResponse(kpi), nil
}

// List retrieves the latest version of KPIs matching the filter
func (s *KPIService) List(actor Actor, req KPIListRequest) (*PagedResponse[KPIResponse], error) {
	page, pageSize, offset := normalizePagination(req.Page, req.PageSize)

	kpis, total, err := s.repo.List(actor.OrganisationID, req.KPIFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list KPIs: %w", err)
	}

	items := make([]KPIResponse, len(kpis))
	for i := range kpis {
		items[i] = *toKPIResponse(&kpis[i])
	}
	return &PagedResponse[KPIResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListForEmployee returns the published KPIs that apply to the employee's designation
func (s *KPIService) ListForEmployee(actor Actor, employeeID uuid.UUID) ([]KPIResponse, error) {
	employee, err := s.employeeRepo.GetByID(actor.OrganisationID, employeeID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrEmployeeNotFound, "failed to get employee")
	}
	if employee.DesignationID == nil {
		return []KPIResponse{}, nil
	}

	kpis, err := s.repo.ListApplicable(actor.OrganisationID, *employee.DesignationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicable KPIs: %w", err)
	}
	out := make([]KPIResponse, len(kpis))
	for i := range kpis {
		out[i] = *toKPIResponse(&kpis[i])
	}
	return out, nil
}

// resolveMappings checks each department/team/designation chain belongs together
func (s *KPIService) resolveMappings(orgID uuid.UUID, inputs []KPIMappingInput) ([]models.KPIMapping, error) {
	seen := make(map[uuid.UUID]bool)
	var out []models.KPIMapping
	for _, in := range inputs {
		if _, err := s.departmentRepo.GetByID(orgID, in.DepartmentID); err != nil {
			return nil, notFoundOr(err, apperrors.ErrDepartmentNotFound, "failed to verify department")
		}
		team, err := s.teamRepo.GetByID(orgID, in.TeamID)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrTeamNotFound, "failed to verify team")
		}
		if team.DepartmentID != in.DepartmentID {
			return nil, apperrors.NewValidationError("mappings", "team does not belong to the department")
		}
		for _, designationID := range in.DesignationIDs {
			designation, err := s.designationRepo.GetByID(orgID, designationID)
			if err != nil {
				return nil, notFoundOr(err, apperrors.ErrDesignationNotFound, "failed to verify designation")
			}
			if designation.TeamID != in.TeamID {
				return nil, apperrors.NewValidationError("mappings", "designation does not belong to the team")
			}
			if seen[designationID] {
				continue
			}
			seen[designationID] = true
			out = append(out, models.KPIMapping{
				DepartmentID:  in.DepartmentID,
				TeamID:        in.TeamID,
				DesignationID: designationID,
			})
		}
	}
	return out, nil
}

func sameDesignations(a, b []models.KPIMapping) bool {
	if len(a) != len(b) {
		return false
	}
	ids := func(m []models.KPIMapping) []string {
		out := make([]string, len(m))
		for i, x := range m {
			out[i] = x.DesignationID.String()
		}
		sort.Strings(out)
		return out
	}
	left, right := ids(a), ids(b)
	for i := range left {
		if left[i] != right[i] {
			return false
		}
	}
	return true
}

func (s *KPIService) get(orgID, id uuid.UUID) (*models.KPI, error) {
	kpi, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKPINotFound
		}
		return nil, fmt.Errorf("failed to get KPI: %w", err)
	}
	return kpi, nil
}

func (s *KPIService) getKRA(orgID, id uuid.UUID) (*models.KRA, error) {
	kra, err := s.kraRepo.GetByID(orgID, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrKRANotFound, "failed to verify KRA")
	}
	return kra, nil
}

// toKPIResponse groups the flat mappings back into department/team entries
func toKPIResponse(k *models.KPI) *KPIResponse {
	resp := &KPIResponse{
		ID:          k.ID,
		DisplayID:   k.DisplayID,
		KRAID:       k.KRAID,
		Title:       k.Title,
		Description: k.Description,
		Status:      k.Status,
		Version:     k.Version,
		IsLatest:    k.IsLatest,
		Mappings:    []KPIMappingInput{},
		CreatedAt:   formatTimestamp(k.CreatedAt),
	}
	if k.KRA != nil {
		resp.KRAName = k.KRA.Name
	}

	index := make(map[uuid.UUID]int)
	for _, m := range k.Mappings {
		i, ok := index[m.TeamID]
		if !ok {
			i = len(resp.Mappings)
			index[m.TeamID] = i
			resp.Mappings = append(resp.Mappings, KPIMappingInput{DepartmentID: m.DepartmentID, TeamID: m.TeamID})
		}
		resp.Mappings[i].DesignationIDs = append(resp.Mappings[i].DesignationIDs, m.DesignationID)
	}
	return resp
}
