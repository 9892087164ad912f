package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"performance-backend/internal/cache"
	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/logger"
	"performance-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// AnalyticsService computes dashboard figures, cached for a short TTL
type AnalyticsService struct {
	reviewRepo   repository.ReviewRepositoryInterface
	cycleRepo    repository.ReviewCycleRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	orgRepo      repository.OrganisationRepositoryInterface
	cache        cache.Cache
	ttl          time.Duration
	now          func() time.Time
}

// NewAnalyticsService creates a new analytics service. Pass cache.NoopCache{} to disable caching.
func NewAnalyticsService(
	reviewRepo repository.ReviewRepositoryInterface,
	cycleRepo repository.ReviewCycleRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	orgRepo repository.OrganisationRepositoryInterface,
	c cache.Cache,
	ttl time.Duration,
) *AnalyticsService {
	return &AnalyticsService{
		reviewRepo:   reviewRepo,
		cycleRepo:    cycleRepo,
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
		cache:        c,
		ttl:          ttl,
		now:          time.Now,
	}
}

// WithClock replaces the time source
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

// RatingsDistributionResponse counts reviewees per rating band
type RatingsDistributionResponse struct {
	ReviewCycleID       uuid.UUID `json:"review_cycle_id"`
	Unsatisfactory      int       `json:"unsatisfactory"`
	NeedsImprovement    int       `json:"needs_improvement"`
	MeetsExpectations   int       `json:"meets_expectations"`
	ExceedsExpectations int       `json:"exceeds_expectations"`
	Outstanding         int       `json:"outstanding"`
	Total               int       `json:"total"`
}

// PhaseStatusCount counts employees by review progress in one phase
type PhaseStatusCount struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}

// ReviewStatusResponse is the progress of every phase over active employees
type ReviewStatusResponse struct {
	ReviewCycleID uuid.UUID        `json:"review_cycle_id"`
	SelfReview    PhaseStatusCount `json:"self_review"`
	ManagerReview PhaseStatusCount `json:"manager_review"`
	CheckIn       PhaseStatusCount `json:"check_in"`
}

// EmployeesDataResponse breaks the active workforce down
type EmployeesDataResponse struct {
	Total        int            `json:"total"`
	Consultants  int            `json:"consultants"`
	ByGender     map[string]int `json:"by_gender"`
	ByDepartment map[string]int `json:"by_department"`
	ByExperience map[string]int `json:"by_experience"`
}

// RatingsDistribution buckets each reviewee's published check-in average, falling back to the first manager review
func (s *AnalyticsService) RatingsDistribution(ctx context.Context, actor Actor, cycleID uuid.UUID) (*RatingsDistributionResponse, error) {
	key := fmt.Sprintf("analytics:%s:ratings:%s", actor.OrganisationID, cycleID)
	var cached RatingsDistributionResponse
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	if err := s.checkCycle(actor.OrganisationID, cycleID); err != nil {
		return nil, err
	}
	details, err := s.reviewRepo.ListByCycle(cycleID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	resp := &RatingsDistributionResponse{ReviewCycleID: cycleID}
	for _, avg := range finalRatings(details) {
		bucket, ok := BucketFor(avg)
		if !ok {
			continue
		}
		resp.Total++
		switch bucket {
		case BucketUnsatisfactory:
			resp.Unsatisfactory++
		case BucketNeedsImprovement:
			resp.NeedsImprovement++
		case BucketMeetsExpectations:
			resp.MeetsExpectations++
		case BucketExceedsExpectations:
			resp.ExceedsExpectations++
		case BucketOutstanding:
			resp.Outstanding++
		}
	}

	s.toCache(ctx, key, resp)
	return resp, nil
}

// ReviewStatus counts completed, in progress and pending reviews per phase over active employees
func (s *AnalyticsService) ReviewStatus(ctx context.Context, actor Actor, cycleID uuid.UUID) (*ReviewStatusResponse, error) {
	key := fmt.Sprintf("analytics:%s:status:%s", actor.OrganisationID, cycleID)
	var cached ReviewStatusResponse
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	if err := s.checkCycle(actor.OrganisationID, cycleID); err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListActive(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	details, err := s.reviewRepo.ListByCycle(cycleID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	statuses := indexReviewStatuses(details)

	resp := &ReviewStatusResponse{ReviewCycleID: cycleID}
	for _, e := range employees {
		st := statuses[e.ID]
		resp.SelfReview.add(st.of(models.ReviewTypeSelf))
		resp.ManagerReview.add(st.of(models.ReviewTypeFirstManager))
		resp.CheckIn.add(st.of(models.ReviewTypeCheckIn))
	}

	s.toCache(ctx, key, resp)
	return resp, nil
}

func (p *PhaseStatusCount) add(status ReviewStatus) {
	switch status {
	case ReviewStatusCompleted:
		p.Completed++
	case ReviewStatusInProgress:
		p.InProgress++
	default:
		p.Pending++
	}
}

// EmployeesData summarises active employees by gender, department and total experience
func (s *AnalyticsService) EmployeesData(ctx context.Context, actor Actor) (*EmployeesDataResponse, error) {
	key := fmt.Sprintf("analytics:%s:employees", actor.OrganisationID)
	var cached EmployeesDataResponse
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	today, err := organisationToday(s.orgRepo, actor.OrganisationID, s.now())
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListActive(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := &EmployeesDataResponse{
		ByGender:     map[string]int{},
		ByDepartment: map[string]int{},
		ByExperience: map[string]int{"<1y": 0, "1-3y": 0, "3-5y": 0, "5y+": 0},
	}
	for _, e := range employees {
		resp.Total++
		if e.IsConsultant {
			resp.Consultants++
		}

		gender := string(e.Gender)
		if gender == "" {
			gender = "unspecified"
		}
		resp.ByGender[gender]++

		department := "Unassigned"
		if e.Department != nil {
			department = e.Department.Name
		}
		resp.ByDepartment[department]++

		resp.ByExperience[ExperienceBand(e.ExperienceMonths+monthsBetween(e.DateOfJoining, today))]++
	}

	s.toCache(ctx, key, resp)
	return resp, nil
}

// ExperienceBand maps total months of experience onto a dashboard band
func ExperienceBand(months int) string {
	switch {
	case months < 12:
		return "<1y"
	case months < 36:
		return "1-3y"
	case months < 60:
		return "3-5y"
	default:
		return "5y+"
	}
}

func monthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// Export builds an XLSX workbook with the ratings and review status of every active employee
func (s *AnalyticsService) Export(actor Actor, cycleID uuid.UUID) ([]byte, error) {
	if err := s.checkCycle(actor.OrganisationID, cycleID); err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListActive(actor.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	details, err := s.reviewRepo.ListByCycle(cycleID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	averages := publishedAverages(details)
	final := finalRatings(details)
	statuses := indexReviewStatuses(details)

	f := excelize.NewFile()
	defer f.Close()

	const ratingsSheet, statusSheet = "Ratings", "Review Status"
	if err := f.SetSheetName("Sheet1", ratingsSheet); err != nil {
		return nil, fmt.Errorf("failed to create ratings sheet: %w", err)
	}
	if _, err := f.NewSheet(statusSheet); err != nil {
		return nil, fmt.Errorf("failed to create status sheet: %w", err)
	}

	header, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	writeRow := func(sheet string, row int, values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	ratingHeaders := []interface{}{"Employee Code", "Name", "Department", "Self", "First Manager", "Second Manager", "Check-in", "Rating Band"}
	statusHeaders := []interface{}{"Employee Code", "Name", "Department", "Self Review", "First Manager Review", "Second Manager Review", "Check-in"}
	if err := writeRow(ratingsSheet, 1, ratingHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := writeRow(statusSheet, 1, statusHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	_ = f.SetCellStyle(ratingsSheet, "A1", "H1", header)
	_ = f.SetCellStyle(statusSheet, "A1", "G1", header)

	for i, e := range employees {
		row := i + 2
		department := ""
		if e.Department != nil {
			department = e.Department.Name
		}
		avg := averages[e.ID]
		band := ""
		if b, ok := BucketFor(final[e.ID]); ok {
			band = string(b)
		}
		ratingRow := []interface{}{
			e.EmployeeCode, e.FullName(), department,
			cellRating(avg[models.ReviewTypeSelf]),
			cellRating(avg[models.ReviewTypeFirstManager]),
			cellRating(avg[models.ReviewTypeSecondManager]),
			cellRating(avg[models.ReviewTypeCheckIn]),
			band,
		}
		if err := writeRow(ratingsSheet, row, ratingRow); err != nil {
			return nil, fmt.Errorf("failed to write ratings row: %w", err)
		}

		st := statuses[e.ID]
		statusRow := []interface{}{
			e.EmployeeCode, e.FullName(), department,
			string(st.of(models.ReviewTypeSelf)),
			string(st.of(models.ReviewTypeFirstManager)),
			string(st.of(models.ReviewTypeSecondManager)),
			string(st.of(models.ReviewTypeCheckIn)),
		}
		if err := writeRow(statusSheet, row, statusRow); err != nil {
			return nil, fmt.Errorf("failed to write status row: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellRating(avg *decimal.Decimal) interface{} {
	if avg == nil {
		return ""
	}
	f, _ := avg.Float64()
	return f
}

// publishedAverages indexes published averages by reviewee and review type
func publishedAverages(details []models.ReviewDetails) map[uuid.UUID]map[models.ReviewType]*decimal.Decimal {
	out := make(map[uuid.UUID]map[models.ReviewType]*decimal.Decimal)
	for i := range details {
		d := details[i]
		if !d.Published {
			continue
		}
		byType, ok := out[d.ReviewToID]
		if !ok {
			byType = make(map[models.ReviewType]*decimal.Decimal)
			out[d.ReviewToID] = byType
		}
		if _, seen := byType[d.ReviewType]; !seen {
			avg := d.AverageRating
			byType[d.ReviewType] = &avg
		}
	}
	return out
}

// finalRatings picks the check-in average per reviewee, or the first manager average when no check-in is published
func finalRatings(details []models.ReviewDetails) map[uuid.UUID]decimal.Decimal {
	out := make(map[uuid.UUID]decimal.Decimal)
	for id, byType := range publishedAverages(details) {
		if avg, ok := byType[models.ReviewTypeCheckIn]; ok {
			out[id] = *avg
		} else if avg, ok := byType[models.ReviewTypeFirstManager]; ok {
			out[id] = *avg
		}
	}
	return out
}

func (s *AnalyticsService) checkCycle(orgID, cycleID uuid.UUID) error {
	if _, err := s.cycleRepo.GetByID(orgID, cycleID); err != nil {
		return notFoundOr(err, apperrors.ErrReviewCycleNotFound, "failed to get review cycle")
	}
	return nil
}

func (s *AnalyticsService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logger.WithContext(ctx).WithField("key", key).WithError(err).Warn("Analytics cache read failed")
		return false
	}
	return found
}

func (s *AnalyticsService) toCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		logger.WithContext(ctx).WithField("key", key).WithError(err).Warn("Analytics cache write failed")
	}
}
