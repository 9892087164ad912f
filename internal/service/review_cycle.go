package service

import (
	"errors"
	"fmt"
	"time"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewCycleService handles review cycles and their phase windows
type ReviewCycleService struct {
	repo      repository.ReviewCycleRepositoryInterface
	orgRepo   repository.OrganisationRepositoryInterface
	notifier  Notifier
	activity  ActivityRecorder
	validator *validator.Validate
	now       func() time.Time
}

// NewReviewCycleService creates a new review cycle service
func NewReviewCycleService(repo repository.ReviewCycleRepositoryInterface, orgRepo repository.OrganisationRepositoryInterface, notifier Notifier, activity ActivityRecorder, validator *validator.Validate) *ReviewCycleService {
	return &ReviewCycleService{
		repo:      repo,
		orgRepo:   orgRepo,
		notifier:  notifier,
		activity:  activity,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the time source
func (s *ReviewCycleService) WithClock(now func() time.Time) *ReviewCycleService {
	s.now = now
	return s
}

// ReviewCycleRequest represents the request to create or update a review cycle. Dates are YYYY-MM-DD.
type ReviewCycleRequest struct {
	StartDate              string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate                string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Publish                bool   `json:"publish"`
	SelfReviewStartDate    string `json:"self_review_start_date" validate:"required,datetime=2006-01-02"`
	SelfReviewEndDate      string `json:"self_review_end_date" validate:"required,datetime=2006-01-02"`
	ManagerReviewStartDate string `json:"manager_review_start_date" validate:"required,datetime=2006-01-02"`
	ManagerReviewEndDate   string `json:"manager_review_end_date" validate:"required,datetime=2006-01-02"`
	CheckInStartDate       string `json:"check_in_start_date" validate:"required,datetime=2006-01-02"`
	CheckInEndDate         string `json:"check_in_end_date" validate:"required,datetime=2006-01-02"`
}

// ReviewCycleResponse represents the response for review cycle operations
type ReviewCycleResponse struct {
	ID                     uuid.UUID `json:"id"`
	StartDate              string    `json:"start_date"`
	EndDate                string    `json:"end_date"`
	Publish                bool      `json:"publish"`
	SelfReviewStartDate    string    `json:"self_review_start_date"`
	SelfReviewEndDate      string    `json:"self_review_end_date"`
	ManagerReviewStartDate string    `json:"manager_review_start_date"`
	ManagerReviewEndDate   string    `json:"manager_review_end_date"`
	CheckInStartDate       string    `json:"check_in_start_date"`
	CheckInEndDate         string    `json:"check_in_end_date"`
	CreatedAt              string    `json:"created_at"`
	UpdatedAt              string    `json:"updated_at"`
}

// ActiveReviewCycleResponse is the cycle in progress with the phases open today
type ActiveReviewCycleResponse struct {
	ReviewCycleResponse
	PhaseFlags
	Today string `json:"today"`
}

// timeline parses the request dates
func (r *ReviewCycleRequest) timeline() (Timeline, error) {
	var t Timeline
	fields := []struct {
		name  string
		value string
		dst   *time.Time
	}{
		{"start_date", r.StartDate, &t.Start},
		{"end_date", r.EndDate, &t.End},
		{"self_review_start_date", r.SelfReviewStartDate, &t.SelfReviewStart},
		{"self_review_end_date", r.SelfReviewEndDate, &t.SelfReviewEnd},
		{"manager_review_start_date", r.ManagerReviewStartDate, &t.ManagerReviewStart},
		{"manager_review_end_date", r.ManagerReviewEndDate, &t.ManagerReviewEnd},
		{"check_in_start_date", r.CheckInStartDate, &t.CheckInStart},
		{"check_in_end_date", r.CheckInEndDate, &t.CheckInEnd},
	}
	for _, f := range fields {
		d, err := ParseDate(f.name, f.value)
		if err != nil {
			return Timeline{}, err
		}
		*f.dst = d
	}
	return t, t.Validate()
}

// Create creates a review cycle
func (s *ReviewCycleService) Create(actor Actor, req *ReviewCycleRequest) (*ReviewCycleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	timeline, err := req.timeline()
	if err != nil {
		return nil, err
	}

	if err := s.checkConflicts(actor.OrganisationID, uuid.Nil, timeline, req.Publish); err != nil {
		return nil, err
	}

	cycle := &models.ReviewCycle{OrganisationID: actor.OrganisationID, Publish: req.Publish}
	timeline.Apply(cycle)
	if err := s.repo.Create(cycle); err != nil {
		return nil, fmt.Errorf("failed to create review cycle: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Review Cycle Created",
		fmt.Sprintf("Review cycle %s to %s created", formatDate(cycle.StartDate), formatDate(cycle.EndDate)))
	if cycle.Publish {
		s.announce(cycle)
	}
	return toReviewCycleResponse(cycle), nil
}

// Update updates a review cycle. The start date is frozen once the cycle has started.
func (s *ReviewCycleService) Update(actor Actor, id uuid.UUID, req *ReviewCycleRequest) (*ReviewCycleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	timeline, err := req.timeline()
	if err != nil {
		return nil, err
	}

	cycle, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	today, err := organisationToday(s.orgRepo, actor.OrganisationID, s.now())
	if err != nil {
		return nil, err
	}
	if TimelineOf(cycle).Started(today) && !timeline.Start.Equal(cycle.StartDate) {
		return nil, apperrors.ErrReviewCycleStarted
	}

	if err := s.checkConflicts(actor.OrganisationID, id, timeline, req.Publish); err != nil {
		return nil, err
	}

	publishing := req.Publish && !cycle.Publish
	timeline.Apply(cycle)
	cycle.Publish = req.Publish
	if err := s.repo.Update(cycle); err != nil {
		return nil, fmt.Errorf("failed to update review cycle: %w", err)
	}

	s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Review Cycle Updated",
		fmt.Sprintf("Review cycle %s to %s updated", formatDate(cycle.StartDate), formatDate(cycle.EndDate)))
	if publishing {
		s.announce(cycle)
	}
	return toReviewCycleResponse(cycle), nil
}

func (s *ReviewCycleService) checkConflicts(orgID, excludeID uuid.UUID, timeline Timeline, publish bool) error {
	overlap, err := s.repo.HasOverlap(orgID, timeline.Start, timeline.End, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check review cycle overlap: %w", err)
	}
	if overlap {
		return apperrors.ErrReviewCycleOverlap
	}
	if !publish {
		return nil
	}

	today, err := organisationToday(s.orgRepo, orgID, s.now())
	if err != nil {
		return err
	}
	active, err := s.repo.HasPublishedEndingOnOrAfter(orgID, today, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check active review cycle: %w", err)
	}
	if active {
		return apperrors.ErrActiveReviewCycleExists
	}
	return nil
}

func (s *ReviewCycleService) announce(cycle *models.ReviewCycle) {
	if s.notifier == nil {
		return
	}
	text := fmt.Sprintf("Review cycle %s to %s is published. Self review opens on %s and closes on %s.",
		formatDate(cycle.StartDate), formatDate(cycle.EndDate),
		formatDate(cycle.SelfReviewStartDate), formatDate(cycle.SelfReviewEndDate))
	if err := s.notifier.NotifyChannel(cycle.OrganisationID, text); err != nil {
		logger.New().WithField("organisation_id", cycle.OrganisationID).WithError(err).
			Warn("Failed to announce review cycle on Slack")
	}
}

// GetByID retrieves a review cycle by ID
func (s *ReviewCycleService) GetByID(actor Actor, id uuid.UUID) (*ReviewCycleResponse, error) {
	cycle, err := s.get(actor.OrganisationID, id)
	if err != nil {
		return nil, err
	}
	return toReviewCycleResponse(cycle), nil
}

// List retrieves review cycles, newest first
func (s *ReviewCycleService) List(actor Actor, page, pageSize int) (*PagedResponse[ReviewCycleResponse], error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	cycles, total, err := s.repo.List(actor.OrganisationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list review cycles: %w", err)
	}

	items := make([]ReviewCycleResponse, len(cycles))
	for i := range cycles {
		items[i] = *toReviewCycleResponse(&cycles[i])
	}
	return &PagedResponse[ReviewCycleResponse]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetActive returns the published cycle covering today in the organisation's time zone
func (s *ReviewCycleService) GetActive(actor Actor) (*ActiveReviewCycleResponse, error) {
	today, err := organisationToday(s.orgRepo, actor.OrganisationID, s.now())
	if err != nil {
		return nil, err
	}

	cycle, err := s.repo.GetPublishedCovering(actor.OrganisationID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActiveReviewCycleMissing
		}
		return nil, fmt.Errorf("failed to get active review cycle: %w", err)
	}

	return &ActiveReviewCycleResponse{
		ReviewCycleResponse: *toReviewCycleResponse(cycle),
		PhaseFlags:          TimelineOf(cycle).Flags(today),
		Today:               formatDate(today),
	}, nil
}

func (s *ReviewCycleService) get(orgID, id uuid.UUID) (*models.ReviewCycle, error) {
	cycle, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReviewCycleNotFound
		}
		return nil, fmt.Errorf("failed to get review cycle: %w", err)
	}
	return cycle, nil
}

func toReviewCycleResponse(c *models.ReviewCycle) *ReviewCycleResponse {
	return &ReviewCycleResponse{
		ID:                     c.ID,
		StartDate:              formatDate(c.StartDate),
		EndDate:                formatDate(c.EndDate),
		Publish:                c.Publish,
		SelfReviewStartDate:    formatDate(c.SelfReviewStartDate),
		SelfReviewEndDate:      formatDate(c.SelfReviewEndDate),
		ManagerReviewStartDate: formatDate(c.ManagerReviewStartDate),
		ManagerReviewEndDate:   formatDate(c.ManagerReviewEndDate),
		CheckInStartDate:       formatDate(c.CheckInStartDate),
		CheckInEndDate:         formatDate(c.CheckInEndDate),
		CreatedAt:              formatTimestamp(c.CreatedAt),
		UpdatedAt:              formatTimestamp(c.UpdatedAt),
	}
}
