package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReviewStatus summarises how far a review has progressed
type ReviewStatus string

const (
	ReviewStatusPending    ReviewStatus = "pending"
	ReviewStatusInProgress ReviewStatus = "in_progress"
	ReviewStatusCompleted  ReviewStatus = "completed"
)

// ReviewService handles self reviews, manager reviews and check-ins
type ReviewService struct {
	repo         repository.ReviewRepositoryInterface
	cycleRepo    repository.ReviewCycleRepositoryInterface
	orgRepo      repository.OrganisationRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	kpiRepo      repository.KPIRepositoryInterface
	kraRepo      repository.KRARepositoryInterface
	goalRepo     repository.GoalRepositoryInterface
	roleRepo     repository.RoleRepositoryInterface
	notifier     Notifier
	activity     ActivityRecorder
	validator    *validator.Validate
	now          func() time.Time
}

// ReviewRepositories bundles the repositories the review service reads
type ReviewRepositories struct {
	Reviews   repository.ReviewRepositoryInterface
	Cycles    repository.ReviewCycleRepositoryInterface
	Orgs      repository.OrganisationRepositoryInterface
	Employees repository.EmployeeRepositoryInterface
	KPIs      repository.KPIRepositoryInterface
	KRAs      repository.KRARepositoryInterface
	Goals     repository.GoalRepositoryInterface
	Roles     repository.RoleRepositoryInterface
}

// NewReviewService creates a new review service
func NewReviewService(repos ReviewRepositories, notifier Notifier, activity ActivityRecorder, validator *validator.Validate) *ReviewService {
	return &ReviewService{
		repo:         repos.Reviews,
		cycleRepo:    repos.Cycles,
		orgRepo:      repos.Orgs,
		employeeRepo: repos.Employees,
		kpiRepo:      repos.KPIs,
		kraRepo:      repos.KRAs,
		goalRepo:     repos.Goals,
		roleRepo:     repos.Roles,
		notifier:     notifier,
		activity:     activity,
		validator:    validator,
		now:          time.Now,
	}
}

// WithClock replaces the time source
func (s *ReviewService) WithClock(now func() time.Time) *ReviewService {
	s.now = now
	return s
}

// KPIReviewInput is the feedback for one KPI. Rating 0 means not rated yet and is only allowed in drafts.
type KPIReviewInput struct {
	KPIID  uuid.UUID `json:"kpi_id" validate:"required"`
	Review string    `json:"review" validate:"max=5000"`
	Rating int       `json:"rating" validate:"min=0,max=5"`
}

// SubmitReviewRequest represents a review submission. ReviewToID is ignored for self reviews.
type SubmitReviewRequest struct {
	ReviewCycleID uuid.UUID        `json:"review_cycle_id" validate:"required"`
	ReviewToID    uuid.UUID        `json:"review_to_id"`
	Draft         bool             `json:"draft"`
	Reviews       []KPIReviewInput `json:"reviews" validate:"dive"`
}

// CheckInGoalInput is a goal agreed during a check-in
type CheckInGoalInput struct {
	Description string `json:"description" validate:"required,min=1,max=1000"`
	TargetDate  string `json:"target_date" validate:"required,datetime=2006-01-02"`
}

// SubmitCheckInRequest represents a check-in submission by the first manager
type SubmitCheckInRequest struct {
	SubmitReviewRequest
	Goals []CheckInGoalInput `json:"goals" validate:"dive"`
}

// KPIReviewResponse is the stored feedback for one KPI
type KPIReviewResponse struct {
	KPIID  uuid.UUID `json:"kpi_id"`
	Review string    `json:"review"`
	Rating int       `json:"rating"`
}

// ReviewResponse represents a review with its KPI entries
type ReviewResponse struct {
	ID            uuid.UUID           `json:"id"`
	ReviewCycleID uuid.UUID           `json:"review_cycle_id"`
	ReviewType    models.ReviewType   `json:"review_type"`
	ReviewToID    uuid.UUID           `json:"review_to_id"`
	ReviewFromID  uuid.UUID           `json:"review_from_id"`
	Draft         bool                `json:"draft"`
	Published     bool                `json:"published"`
	AverageRating decimal.Decimal     `json:"average_rating"`
	SubmittedAt   *string             `json:"submitted_at,omitempty"`
	Reviews       []KPIReviewResponse `json:"reviews"`
	GoalsCreated  int                 `json:"goals_created,omitempty"`
}

// TeamReviewStatus is the progress of one reportee in a cycle
type TeamReviewStatus struct {
	EmployeeID          uuid.UUID    `json:"employee_id"`
	EmployeeCode        string       `json:"employee_code"`
	EmployeeName        string       `json:"employee_name"`
	SelfReview          ReviewStatus `json:"self_review"`
	FirstManagerReview  ReviewStatus `json:"first_manager_review"`
	SecondManagerReview ReviewStatus `json:"second_manager_review"`
	CheckIn             ReviewStatus `json:"check_in"`
}

// SubmitSelfReview saves the actor's own review
func (s *ReviewService) SubmitSelfReview(actor Actor, req *SubmitReviewRequest) (*ReviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	req.ReviewToID = actor.EmployeeID
	return s.submit(actor, req, models.ReviewTypeSelf, nil)
}

// SubmitManagerReview saves a first or second manager review, depending on how the actor manages the reviewee
func (s *ReviewService) SubmitManagerReview(actor Actor, req *SubmitReviewRequest) (*ReviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.ReviewToID == uuid.Nil {
		return nil, apperrors.NewValidationError("review_to_id", "is required")
	}
	managerType, err := s.managerType(actor.EmployeeID, req.ReviewToID)
	if err != nil {
		return nil, err
	}
	reviewType := models.ReviewTypeFirstManager
	if managerType == models.ManagerTypeSecond {
		reviewType = models.ReviewTypeSecondManager
	}
	return s.submit(actor, req, reviewType, nil)
}

// SubmitCheckIn saves the first manager's check-in and creates the agreed goals once published
func (s *ReviewService) SubmitCheckIn(actor Actor, req *SubmitCheckInRequest) (*ReviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.ReviewToID == uuid.Nil {
		return nil, apperrors.NewValidationError("review_to_id", "is required")
	}
	for i := range req.Goals {
		description, err := trimmedText("goals.description", req.Goals[i].Description)
		if err != nil {
			return nil, err
		}
		req.Goals[i].Description = description
	}
	managerType, err := s.managerType(actor.EmployeeID, req.ReviewToID)
	if err != nil {
		return nil, err
	}
	if managerType != models.ManagerTypeFirst {
		return nil, apperrors.ErrNotReporteeManager
	}
	return s.submit(actor, &req.SubmitReviewRequest, models.ReviewTypeCheckIn, req.Goals)
}

func (s *ReviewService) submit(actor Actor, req *SubmitReviewRequest, reviewType models.ReviewType, goalInputs []CheckInGoalInput) (*ReviewResponse, error) {
	cycle, err := s.cycleRepo.GetByID(actor.OrganisationID, req.ReviewCycleID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrReviewCycleNotFound, "failed to get review cycle")
	}
	if !cycle.Publish {
		return nil, apperrors.ErrReviewCycleNotPublished
	}
	today, err := organisationToday(s.orgRepo, actor.OrganisationID, s.now())
	if err != nil {
		return nil, err
	}
	if !TimelineOf(cycle).PhaseActive(reviewType, today) {
		return nil, apperrors.ErrReviewTimelineClosed
	}

	reviewee, err := s.employeeRepo.GetByID(actor.OrganisationID, req.ReviewToID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrEmployeeNotFound, "failed to get employee")
	}
	if !reviewee.IsActive {
		return nil, apperrors.ErrEmployeeNotFound
	}

	details, err := s.repo.GetDetails(cycle.ID, reviewee.ID, reviewType, actor.EmployeeID)
	switch {
	case err == nil:
		if details.Published {
			return nil, apperrors.ErrReviewAlreadySubmitted
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		details = &models.ReviewDetails{
			OrganisationID: actor.OrganisationID,
			ReviewCycleID:  cycle.ID,
			ReviewType:     reviewType,
			ReviewToID:     reviewee.ID,
			ReviewFromID:   actor.EmployeeID,
		}
	default:
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	kpiToKRA, err := s.applicableKPIs(actor.OrganisationID, reviewee)
	if err != nil {
		return nil, err
	}
	reviews, ratings, err := buildReviews(req, kpiToKRA)
	if err != nil {
		return nil, err
	}

	weightages, err := weightagesAt(s.kraRepo, actor.OrganisationID, cycle.StartDate)
	if err != nil {
		return nil, err
	}

	var goals []models.Goal
	if !req.Draft && len(goalInputs) > 0 {
		goals, err = s.buildGoals(actor, cycle.ID, reviewee.ID, goalInputs)
		if err != nil {
			return nil, err
		}
	}

	details.Draft = req.Draft
	details.Published = !req.Draft
	details.AverageRating = WeightedAverage(ratings, weightages)
	details.Reviews = reviews
	if details.Published {
		submitted := s.now()
		details.SubmittedAt = &submitted
	}

	if err := s.repo.Save(details, goals); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	if details.Published {
		s.activity.Record(actor.OrganisationID, actor.EmployeeID, "Review Submitted",
			fmt.Sprintf("%s review submitted for %s", reviewType, reviewee.EmployeeCode))
		if len(goals) > 0 {
			s.notify(actor.OrganisationID, reviewee.Email,
				fmt.Sprintf("%d new goal(s) were assigned to you during your check-in.", len(goals)))
		}
	}

	resp := toReviewResponse(details)
	resp.GoalsCreated = len(goals)
	return resp, nil
}

// applicableKPIs maps each KPI that applies to the reviewee onto its KRA
func (s *ReviewService) applicableKPIs(orgID uuid.UUID, reviewee *models.Employee) (map[uuid.UUID]uuid.UUID, error) {
	out := make(map[uuid.UUID]uuid.UUID)
	if reviewee.DesignationID == nil {
		return out, nil
	}
	kpis, err := s.kpiRepo.ListApplicable(orgID, *reviewee.DesignationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicable KPIs: %w", err)
	}
	for _, k := range kpis {
		out[k.ID] = k.KRAID
	}
	return out, nil
}

// buildReviews checks the submitted KPI entries and collects ratings for the average.
// Published reviews must rate and comment on every applicable KPI.
func buildReviews(req *SubmitReviewRequest, kpiToKRA map[uuid.UUID]uuid.UUID) ([]models.Review, []KPIRating, error) {
	seen := make(map[uuid.UUID]bool, len(req.Reviews))
	reviews := make([]models.Review, 0, len(req.Reviews))
	ratings := make([]KPIRating, 0, len(req.Reviews))

	for _, in := range req.Reviews {
		kraID, ok := kpiToKRA[in.KPIID]
		if !ok {
			return nil, nil, apperrors.ErrKPINotApplicable
		}
		if seen[in.KPIID] {
			return nil, nil, apperrors.NewValidationError("reviews", fmt.Sprintf("KPI %s reviewed more than once", in.KPIID))
		}
		seen[in.KPIID] = true

		text := strings.TrimSpace(in.Review)
		if !req.Draft && (in.Rating < 1 || text == "") {
			return nil, nil, apperrors.NewValidationError("reviews", "every KPI needs a rating between 1 and 5 and feedback")
		}
		reviews = append(reviews, models.Review{KPIID: in.KPIID, Review: text, Rating: in.Rating})
		ratings = append(ratings, KPIRating{KRAID: kraID, Rating: in.Rating})
	}

	if !req.Draft && len(seen) != len(kpiToKRA) {
		return nil, nil, apperrors.NewValidationError("reviews", "every applicable KPI must be reviewed")
	}
	return reviews, ratings, nil
}

func (s *ReviewService) buildGoals(actor Actor, cycleID, assigneeID uuid.UUID, inputs []CheckInGoalInput) ([]models.Goal, error) {
	count, err := s.goalRepo.Count(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}
	goals := make([]models.Goal, len(inputs))
	for i, in := range inputs {
		target, err := ParseDate("target_date", in.TargetDate)
		if err != nil {
			return nil, err
		}
		goals[i] = models.Goal{
			OrganisationID: actor.OrganisationID,
			DisplayID:      formatDisplayID("G", count+int64(i)+1),
			ReviewCycleID:  cycleID,
			Description:    in.Description,
			TargetDate:     target,
			Progress:       models.GoalProgressToDo,
			AssignedToID:   assigneeID,
			CreatedByID:    actor.EmployeeID,
		}
	}
	return goals, nil
}

// managerType returns how managerID manages employeeID, or ErrNotReporteeManager
func (s *ReviewService) managerType(managerID, employeeID uuid.UUID) (models.ManagerType, error) {
	mappings, err := s.employeeRepo.GetManagers(employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to get managers: %w", err)
	}
	for _, m := range mappings {
		if m.ManagerID == managerID && m.IsActive {
			return m.Type, nil
		}
	}
	return 0, apperrors.ErrNotReporteeManager
}

// Get retrieves a review. Reviewees see their own self review and check-in;
// their managers and holders of the team_reviews permission see every review.
func (s *ReviewService) Get(actor Actor, cycleID, reviewToID uuid.UUID, reviewType models.ReviewType) (*ReviewResponse, error) {
	if !reviewType.IsValid() {
		return nil, apperrors.NewValidationError("review_type", "must be one of self first_manager second_manager check_in")
	}
	if _, err := s.cycleRepo.GetByID(actor.OrganisationID, cycleID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrReviewCycleNotFound, "failed to get review cycle")
	}
	if err := s.authorizeView(actor, reviewToID, reviewType); err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(cycleID, reviewToID, reviewType, uuid.Nil)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrReviewNotFound, "failed to get review")
	}
	return toReviewResponse(details), nil
}

func (s *ReviewService) authorizeView(actor Actor, reviewToID uuid.UUID, reviewType models.ReviewType) error {
	if reviewToID == actor.EmployeeID {
		if reviewType == models.ReviewTypeSelf || reviewType == models.ReviewTypeCheckIn {
			return nil
		}
	} else {
		_, err := s.managerType(actor.EmployeeID, reviewToID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrNotReporteeManager) {
			return err
		}
	}

	allowed, err := hasModulePermission(s.roleRepo, actor.EmployeeID, models.ModuleTeamReviews, false)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrReviewAccessDenied
	}
	return nil
}

// TeamStatus lists the actor's reportees with the progress of each review in the cycle
func (s *ReviewService) TeamStatus(actor Actor, cycleID uuid.UUID) ([]TeamReviewStatus, error) {
	if _, err := s.cycleRepo.GetByID(actor.OrganisationID, cycleID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrReviewCycleNotFound, "failed to get review cycle")
	}

	reportees, err := s.employeeRepo.GetReportees(actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reportees: %w", err)
	}
	ids := make([]uuid.UUID, len(reportees))
	for i, e := range reportees {
		ids[i] = e.ID
	}

	details, err := s.repo.ListByCycle(cycleID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	statuses := indexReviewStatuses(details)

	out := make([]TeamReviewStatus, len(reportees))
	for i, e := range reportees {
		st := statuses[e.ID]
		out[i] = TeamReviewStatus{
			EmployeeID:          e.ID,
			EmployeeCode:        e.EmployeeCode,
			EmployeeName:        e.FullName(),
			SelfReview:          st.of(models.ReviewTypeSelf),
			FirstManagerReview:  st.of(models.ReviewTypeFirstManager),
			SecondManagerReview: st.of(models.ReviewTypeSecondManager),
			CheckIn:             st.of(models.ReviewTypeCheckIn),
		}
	}
	return out, nil
}

// revieweeStatus holds the furthest progress per review type of one reviewee
type revieweeStatus map[models.ReviewType]ReviewStatus

func (r revieweeStatus) of(t models.ReviewType) ReviewStatus {
	if st, ok := r[t]; ok {
		return st
	}
	return ReviewStatusPending
}

func indexReviewStatuses(details []models.ReviewDetails) map[uuid.UUID]revieweeStatus {
	out := make(map[uuid.UUID]revieweeStatus)
	for _, d := range details {
		st, ok := out[d.ReviewToID]
		if !ok {
			st = revieweeStatus{}
			out[d.ReviewToID] = st
		}
		status := ReviewStatusInProgress
		if d.Published {
			status = ReviewStatusCompleted
		}
		if st[d.ReviewType] != ReviewStatusCompleted {
			st[d.ReviewType] = status
		}
	}
	return out
}

func (s *ReviewService) notify(orgID uuid.UUID, email, text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyEmployee(orgID, email, text); err != nil {
		logger.New().WithField("organisation_id", orgID).WithError(err).Warn("Failed to send Slack message")
	}
}

func toReviewResponse(d *models.ReviewDetails) *ReviewResponse {
	resp := &ReviewResponse{
		ID:            d.ID,
		ReviewCycleID: d.ReviewCycleID,
		ReviewType:    d.ReviewType,
		ReviewToID:    d.ReviewToID,
		ReviewFromID:  d.ReviewFromID,
		Draft:         d.Draft,
		Published:     d.Published,
		AverageRating: d.AverageRating,
		Reviews:       make([]KPIReviewResponse, len(d.Reviews)),
	}
	if d.SubmittedAt != nil {
		ts := formatTimestamp(*d.SubmittedAt)
		resp.SubmittedAt = &ts
	}
	for i, r := range d.Reviews {
		resp.Reviews[i] = KPIReviewResponse{KPIID: r.KPIID, Review: r.Review, Rating: r.Rating}
	}
	return resp
}
