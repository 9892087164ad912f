package service

import (
	"errors"
	"fmt"
	"time"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoadLocation returns the named IANA zone, or UTC when the name is empty or unknown
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DateIn returns the calendar date of now in loc, as midnight UTC.
// Civil dates are stored and compared in this form.
func DateIn(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD civil date
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date formatted as YYYY-MM-DD")
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Timeline holds the dates that gate a review cycle
type Timeline struct {
	Start              time.Time
	End                time.Time
	SelfReviewStart    time.Time
	SelfReviewEnd      time.Time
	ManagerReviewStart time.Time
	ManagerReviewEnd   time.Time
	CheckInStart       time.Time
	CheckInEnd         time.Time
}

// TimelineOf extracts the timeline of a review cycle
func TimelineOf(cycle *models.ReviewCycle) Timeline {
	return Timeline{
		Start:              cycle.StartDate,
		End:                cycle.EndDate,
		SelfReviewStart:    cycle.SelfReviewStartDate,
		SelfReviewEnd:      cycle.SelfReviewEndDate,
		ManagerReviewStart: cycle.ManagerReviewStartDate,
		ManagerReviewEnd:   cycle.ManagerReviewEndDate,
		CheckInStart:       cycle.CheckInStartDate,
		CheckInEnd:         cycle.CheckInEndDate,
	}
}

// Apply copies the timeline onto a review cycle
func (t Timeline) Apply(cycle *models.ReviewCycle) {
	cycle.StartDate = t.Start
	cycle.EndDate = t.End
	cycle.SelfReviewStartDate = t.SelfReviewStart
	cycle.SelfReviewEndDate = t.SelfReviewEnd
	cycle.ManagerReviewStartDate = t.ManagerReviewStart
	cycle.ManagerReviewEndDate = t.ManagerReviewEnd
	cycle.CheckInStartDate = t.CheckInStart
	cycle.CheckInEndDate = t.CheckInEnd
}

// Validate checks the ordering of the cycle and its phases
func (t Timeline) Validate() error {
	if t.Start.After(t.End) {
		return apperrors.NewValidationError("end_date", "must be on or after start_date")
	}

	phases := []struct {
		name       string
		start, end time.Time
	}{
		{"self_review", t.SelfReviewStart, t.SelfReviewEnd},
		{"manager_review", t.ManagerReviewStart, t.ManagerReviewEnd},
		{"check_in", t.CheckInStart, t.CheckInEnd},
	}
	for _, p := range phases {
		if p.start.After(p.end) {
			return apperrors.NewValidationError(p.name+"_end_date", "must be on or after "+p.name+"_start_date")
		}
		if p.start.Before(t.Start) || p.end.After(t.End) {
			return apperrors.NewValidationError(p.name+"_start_date", "phase must lie within the review cycle")
		}
	}

	if t.ManagerReviewStart.Before(t.SelfReviewStart) {
		return apperrors.NewValidationError("manager_review_start_date", "must be on or after self_review_start_date")
	}
	if t.CheckInStart.Before(t.ManagerReviewStart) {
		return apperrors.NewValidationError("check_in_start_date", "must be on or after manager_review_start_date")
	}
	return nil
}

// PhaseFlags reports which phases accept submissions on a day
type PhaseFlags struct {
	IsSelfReviewActive    bool `json:"is_self_review_active"`
	IsManagerReviewActive bool `json:"is_manager_review_active"`
	IsCheckInActive       bool `json:"is_check_in_active"`
}

// Flags evaluates the phase windows on today, a civil date from DateIn
func (t Timeline) Flags(today time.Time) PhaseFlags {
	return PhaseFlags{
		IsSelfReviewActive:    within(today, t.SelfReviewStart, t.SelfReviewEnd),
		IsManagerReviewActive: within(today, t.ManagerReviewStart, t.ManagerReviewEnd),
		IsCheckInActive:       within(today, t.CheckInStart, t.CheckInEnd),
	}
}

// PhaseActive reports whether reviews of the given type are accepted on today
func (t Timeline) PhaseActive(reviewType models.ReviewType, today time.Time) bool {
	flags := t.Flags(today)
	switch reviewType {
	case models.ReviewTypeSelf:
		return flags.IsSelfReviewActive
	case models.ReviewTypeFirstManager, models.ReviewTypeSecondManager:
		return flags.IsManagerReviewActive
	case models.ReviewTypeCheckIn:
		return flags.IsCheckInActive
	}
	return false
}

// Started reports whether the cycle has begun on today
func (t Timeline) Started(today time.Time) bool {
	return !today.Before(t.Start)
}

// InProgress reports whether today lies within the cycle
func (t Timeline) InProgress(today time.Time) bool {
	return within(today, t.Start, t.End)
}

func within(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}

// organisationToday resolves the current civil date in the organisation's time zone
func organisationToday(orgRepo repository.OrganisationRepositoryInterface, orgID uuid.UUID, now time.Time) (time.Time, error) {
	org, err := orgRepo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, apperrors.ErrOrganisationNotFound
		}
		return time.Time{}, fmt.Errorf("failed to get organisation: %w", err)
	}
	return DateIn(now, LoadLocation(org.TimeZone)), nil
}
