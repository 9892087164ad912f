package service

import (
	"testing"
	"time"
	_ "time/tzdata"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func validTimeline() Timeline {
	return Timeline{
		Start:              day("2026-04-01"),
		End:                day("2026-06-30"),
		SelfReviewStart:    day("2026-06-01"),
		SelfReviewEnd:      day("2026-06-10"),
		ManagerReviewStart: day("2026-06-08"),
		ManagerReviewEnd:   day("2026-06-20"),
		CheckInStart:       day("2026-06-21"),
		CheckInEnd:         day("2026-06-30"),
	}
}

func TestDateIn(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, day("2026-03-11"), DateIn(now, LoadLocation("Asia/Kolkata")))
	assert.Equal(t, day("2026-03-10"), DateIn(now, LoadLocation("America/New_York")))
	assert.Equal(t, day("2026-03-10"), DateIn(now, LoadLocation("")))
}

func TestLoadLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("Mars/Olympus_Mons"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("start_date", "2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, day("2026-02-28"), d)

	_, err = ParseDate("start_date", "28/02/2026")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "start_date")
}

func TestTimelineValidate(t *testing.T) {
	require.NoError(t, validTimeline().Validate())

	tests := []struct {
		name   string
		mutate func(*Timeline)
		field  string
	}{
		{"end before start", func(tl *Timeline) { tl.End = day("2026-03-01") }, "end_date"},
		{"self review reversed", func(tl *Timeline) { tl.SelfReviewEnd = day("2026-05-01") }, "self_review_end_date"},
		{"check-in outside cycle", func(tl *Timeline) { tl.CheckInEnd = day("2026-07-02") }, "check_in_start_date"},
		{"manager review before self review", func(tl *Timeline) { tl.ManagerReviewStart = day("2026-05-20") }, "manager_review_start_date"},
		{"check-in before manager review", func(tl *Timeline) { tl.CheckInStart = day("2026-06-05") }, "check_in_start_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := validTimeline()
			tt.mutate(&tl)
			err := tl.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestTimelineFlags(t *testing.T) {
	tl := validTimeline()

	flags := tl.Flags(day("2026-06-09"))
	assert.True(t, flags.IsSelfReviewActive)
	assert.True(t, flags.IsManagerReviewActive)
	assert.False(t, flags.IsCheckInActive)

	// windows are inclusive on both ends
	assert.True(t, tl.PhaseActive(models.ReviewTypeSelf, day("2026-06-10")))
	assert.False(t, tl.PhaseActive(models.ReviewTypeSelf, day("2026-06-11")))
	assert.True(t, tl.PhaseActive(models.ReviewTypeSecondManager, day("2026-06-20")))
	assert.True(t, tl.PhaseActive(models.ReviewTypeCheckIn, day("2026-06-30")))
	assert.False(t, tl.PhaseActive(models.ReviewType("peer"), day("2026-06-09")))
}

func TestTimelineProgress(t *testing.T) {
	tl := validTimeline()

	assert.False(t, tl.Started(day("2026-03-31")))
	assert.True(t, tl.Started(day("2026-04-01")))
	assert.True(t, tl.InProgress(day("2026-06-30")))
	assert.False(t, tl.InProgress(day("2026-07-01")))
	assert.True(t, tl.Started(day("2026-07-01")))
}

func TestTimelineRoundTrip(t *testing.T) {
	tl := validTimeline()
	var cycle models.ReviewCycle
	tl.Apply(&cycle)
	assert.Equal(t, tl, TimelineOf(&cycle))
}
