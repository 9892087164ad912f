package service

import (
	"errors"
	"fmt"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalService handles goals assigned by managers
type GoalService struct {
	repo         repository.GoalRepositoryInterface
	cycleRepo    repository.ReviewCycleRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	notifier     Notifier
	activity     ActivityRecorder
	validator    *validator.Validate
}

// NewGoalService creates a new goal service
func NewGoalService(repo repository.GoalRepositoryInterface, cycleRepo repository.ReviewCycleRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, notifier Notifier, activity ActivityRecorder, validator *validator.Validate) *GoalService {
	return &GoalService{
		repo:         repo,
		cycleRepo:    cycleRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		activity:     activity,
		validator:    validator,
	}
}

// CreateGoalRequest represents the request to assign a goal
type CreateGoalRequest struct {
	ReviewCycleID uuid.UUID `json:"review_cycle_id" validate:"required"`
	AssignedToID  uuid.UUID `json:"assigned_to_id" validate:"required"`
	Description   string    `json:"description" validate:"required,min=1,max=1000"`
	TargetDate    string    `json:"target_date" validate:"required,datetime=2006-01-02"`
}

// UpdateGoalProgressRequest represents the request to move a goal along
type UpdateGoalProgressRequest struct {
	Progress models.GoalProgress `json:"progress" validate:"required,oneof=todo in_progress completed deferred"`
}

// GoalListRequest selects whose goals to list. With neither EmployeeID nor Reportees the actor's own goals are returned.
type GoalListRequest struct {
	EmployeeID    *uuid.UUID
	Reportees     bool
	ReviewCycleID *uuid.UUID
	Progress      models.GoalProgress
	Page          int
	PageSize      int
}

// GoalResponse represents the response for goal operations
type GoalResponse struct {
	ID            uuid.UUID           `json:"id"`
	DisplayID     string              `json:"display_id"`
	ReviewCycleID uuid.UUID           `json:"review_cycle_id"`
	Description   string              `json:"description"`
	TargetDate    string              `json:"target_date"`
	Progress      models.GoalProgress `json:"progress"`
	AssignedToID  uuid.UUID           `json:"assigned_to_id"`
	CreatedByID   uuid.UUID           `json:"created_by_id"`
	CreatedAt     string              `json:"created_at"`
}

// Create assigns a goal to one of the actor's reportees
func (s *GoalService) Create(actor Actor, req *CreateGoalRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	description, err := trimmedText("description", req.Description)
	if err != nil {
		return nil, err
	}
	req.Description = description
	target, err := ParseDate("target_date", req.TargetDate)
	if err != nil {
		return nil, err
	}

	assignee, err := s.employeeRepo.GetByID(actor.OrganisationID, req.AssignedToID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrEmployeeNotFound, "failed to get employee")
	}
	if !assignee.IsActive {
		return nil, apperrors.ErrEmployeeNotFound
	}
	if err := s.requireManager(actor.EmployeeID, assignee.ID); err != nil {
		return nil, err
	}
	if _, err := s.cycleRepo.GetByID(actor.OrganisationID, req.ReviewCycleID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrReviewCycleNotFound, "failed to get review cycle")
	}

	count, err := s.repo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	goal := &models.Goal{
		OrganisationID: actor.OrganisationID,
		DisplayID:      formatDisplayID("G", count+1),
		ReviewCycleID:  req.ReviewCycleID,
		Description:    req.Description,
		TargetDate:     target,
		Progress:       models.GoalProgressToDo,
		AssignedToID:   assignee.ID,
		CreatedByID:    actor.EmployeeID,
	}
	if err := s.repo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Goal Assigned",
		fmt.Sprintf("%s assigned to %s", goal.DisplayID, assignee.EmployeeCode))
	if s.notifier != nil {
		text := fmt.Sprintf("New goal %s assigned to you: %s (due %s)", goal.DisplayID, goal.Description, formatDate(goal.TargetDate))
		if err := s.notifier.NotifyEmployee(actor.OrganisationID, assignee.Email, text); err != nil {
			logger.New().WithField("goal_id", goal.ID).WithError(err).Warn("Failed to notify assignee on Slack")
		}
	}
	return toGoalResponse(goal), nil
}

// UpdateProgress changes a goal's progress. Only the assignee or the creator may do so.
func (s *GoalService) UpdateProgress(actor Actor, id uuid.UUID, req *UpdateGoalProgressRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	goal, err := s.repo.GetByID(actor.OrganisationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if goal.AssignedToID != actor.EmployeeID && goal.CreatedByID != actor.EmployeeID {
		return nil, apperrors.ErrNotGoalParticipant
	}

	if err := s.repo.UpdateProgress(goal.ID, req.Progress); err != nil {
		return nil, fmt.Errorf("failed to update goal progress: %w", err)
	}
	goal.Progress = req.Progress

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Goal Progress Updated",
		fmt.Sprintf("%s moved to %s", goal.DisplayID, goal.Progress))
	return toGoalResponse(goal), nil
}

// List returns the actor's goals, the goals of one reportee, or the goals of all reportees
func (s *GoalService) List(actor Actor, req GoalListRequest) (*PagedResponse[GoalResponse], error) {
	page, pageSize, offset := normalizePagination(req.Page, req.PageSize)
	if req.Progress != "" && !req.Progress.IsValid() {
		return nil, apperrors.NewValidationError("progress", "must be one of todo in_progress completed deferred")
	}

	var assignees []uuid.UUID
	switch {
	case req.EmployeeID != nil && *req.EmployeeID != actor.EmployeeID:
		if err := s.requireManager(actor.EmployeeID, *req.EmployeeID); err != nil {
			return nil, err
		}
		assignees = []uuid.UUID{*req.EmployeeID}
	case req.Reportees:
		reportees, err := s.employeeRepo.GetReportees(actor.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get reportees: %w", err)
		}
		assignees = make([]uuid.UUID, len(reportees))
		for i, e := range reportees {
			assignees[i] = e.ID
		}
	default:
		assignees = []uuid.UUID{actor.EmployeeID}
	}

	filter := repository.GoalFilter{AssignedToIDs: assignees, ReviewCycleID: req.ReviewCycleID, Progress: req.Progress}
	goals, total, err := s.repo.List(actor.OrganisationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	items := make([]GoalResponse, len(goals))
	for i := range goals {
		items[i] = *toGoalResponse(&goals[i])
	}
	return &PagedResponse[GoalResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// OpenGoals returns the employee's goals that are neither completed nor deferred
func (s *GoalService) OpenGoals(orgID, employeeID uuid.UUID) ([]GoalResponse, error) {
	goals, _, err := s.repo.List(orgID, repository.GoalFilter{AssignedToIDs: []uuid.UUID{employeeID}}, 100, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		if goals[i].Progress == models.GoalProgressCompleted || goals[i].Progress == models.GoalProgressDeferred {
			continue
		}
		out = append(out, *toGoalResponse(&goals[i]))
	}
	return out, nil
}

func (s *GoalService) requireManager(managerID, employeeID uuid.UUID) error {
	mappings, err := s.employeeRepo.GetManagers(employeeID)
	if err != nil {
		return fmt.Errorf("failed to get managers: %w", err)
	}
	for _, m := range mappings {
		if m.ManagerID == managerID && m.IsActive {
			return nil
		}
	}
	return apperrors.ErrNotReporteeManager
}

func toGoalResponse(g *models.Goal) *GoalResponse {
	return &GoalResponse{
		ID:            g.ID,
		DisplayID:     g.DisplayID,
		ReviewCycleID: g.ReviewCycleID,
		Description:   g.Description,
		TargetDate:    formatDate(g.TargetDate),
		Progress:      g.Progress,
		AssignedToID:  g.AssignedToID,
		CreatedByID:   g.CreatedByID,
		CreatedAt:     formatTimestamp(g.CreatedAt),
	}
}
