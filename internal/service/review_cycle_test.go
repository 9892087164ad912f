package service_test

import (
	"errors"
	"testing"
	"time"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/mocks"
	"performance-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ReviewCycleServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockReviewCycleRepositoryInterface
	orgs     *mocks.MockOrganisationRepositoryInterface
	notifier *mocks.MockNotifier
	service  *service.ReviewCycleService
	actor    service.Actor
	now      time.Time
}

func (suite *ReviewCycleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockReviewCycleRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganisationRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	activity := mocks.NewMockActivityRecorder(suite.ctrl)
	activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	suite.now = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	suite.service = service.NewReviewCycleService(suite.repo, suite.orgs, suite.notifier, activity, validator.New()).
		WithClock(func() time.Time { return suite.now })
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: uuid.New()}
	suite.orgs.EXPECT().GetByID(suite.actor.OrganisationID).Return(&models.Organisation{TimeZone: "Europe/Berlin"}, nil).AnyTimes()
}

func (suite *ReviewCycleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func cycleRequest(publish bool) *service.ReviewCycleRequest {
	return &service.ReviewCycleRequest{
		StartDate:              "2026-04-01",
		EndDate:                "2026-06-30",
		Publish:                publish,
		SelfReviewStartDate:    "2026-06-01",
		SelfReviewEndDate:      "2026-06-10",
		ManagerReviewStartDate: "2026-06-08",
		ManagerReviewEndDate:   "2026-06-20",
		CheckInStartDate:       "2026-06-21",
		CheckInEndDate:         "2026-06-30",
	}
}

func (suite *ReviewCycleServiceTestSuite) TestCreatePublishedAnnounces() {
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.repo.EXPECT().HasOverlap(suite.actor.OrganisationID, civil("2026-04-01"), civil("2026-06-30"), uuid.Nil).Return(false, nil)
	suite.repo.EXPECT().HasPublishedEndingOnOrAfter(suite.actor.OrganisationID, today, uuid.Nil).Return(false, nil)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().NotifyChannel(suite.actor.OrganisationID, gomock.Any()).Return(errors.New("slack down"))

	resp, err := suite.service.Create(suite.actor, cycleRequest(true))

	suite.Require().NoError(err, "a failed announcement must not fail the request")
	suite.True(resp.Publish)
	suite.Equal("2026-06-21", resp.CheckInStartDate)
}

func (suite *ReviewCycleServiceTestSuite) TestCreateConflicts() {
	suite.T().Run("overlap", func(t *testing.T) {
		suite.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), uuid.Nil).Return(true, nil)

		_, err := suite.service.Create(suite.actor, cycleRequest(false))

		assert.ErrorIs(t, err, apperrors.ErrReviewCycleOverlap)
	})

	suite.T().Run("another published cycle still active", func(t *testing.T) {
		suite.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), uuid.Nil).Return(false, nil)
		suite.repo.EXPECT().HasPublishedEndingOnOrAfter(gomock.Any(), gomock.Any(), uuid.Nil).Return(true, nil)

		_, err := suite.service.Create(suite.actor, cycleRequest(true))

		assert.ErrorIs(t, err, apperrors.ErrActiveReviewCycleExists)
	})

	suite.T().Run("invalid timeline", func(t *testing.T) {
		req := cycleRequest(false)
		req.CheckInEndDate = "2026-07-15"

		_, err := suite.service.Create(suite.actor, req)

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("malformed date", func(t *testing.T) {
		req := cycleRequest(false)
		req.StartDate = "01-04-2026"

		_, err := suite.service.Create(suite.actor, req)

		assert.True(t, apperrors.IsValidation(err))
	})
}

func (suite *ReviewCycleServiceTestSuite) TestUpdateStartedCycleKeepsStartDate() {
	id := uuid.New()
	suite.now = time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	existing := &models.ReviewCycle{BaseModel: models.BaseModel{ID: id}, OrganisationID: suite.actor.OrganisationID}
	service.Timeline{
		Start: civil("2026-04-01"), End: civil("2026-06-30"),
		SelfReviewStart: civil("2026-06-01"), SelfReviewEnd: civil("2026-06-10"),
		ManagerReviewStart: civil("2026-06-08"), ManagerReviewEnd: civil("2026-06-20"),
		CheckInStart: civil("2026-06-21"), CheckInEnd: civil("2026-06-30"),
	}.Apply(existing)

	suite.T().Run("start date change rejected", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(existing, nil)
		req := cycleRequest(false)
		req.StartDate = "2026-04-02"

		_, err := suite.service.Update(suite.actor, id, req)

		assert.ErrorIs(t, err, apperrors.ErrReviewCycleStarted)
	})

	suite.T().Run("publishing announces once", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(existing, nil)
		suite.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), id).Return(false, nil)
		suite.repo.EXPECT().HasPublishedEndingOnOrAfter(gomock.Any(), gomock.Any(), id).Return(false, nil)
		suite.repo.EXPECT().Update(gomock.Any()).Return(nil)
		suite.notifier.EXPECT().NotifyChannel(suite.actor.OrganisationID, gomock.Any()).Return(nil)

		resp, err := suite.service.Update(suite.actor, id, cycleRequest(true))

		assert.NoError(t, err)
		assert.True(t, resp.Publish)
	})
}

func (suite *ReviewCycleServiceTestSuite) TestGetActive() {
	// 23:30 UTC on March 31st is already April 1st in Berlin
	suite.now = time.Date(2026, 3, 31, 23, 30, 0, 0, time.UTC)
	cycle := &models.ReviewCycle{Publish: true}
	service.Timeline{
		Start: civil("2026-04-01"), End: civil("2026-06-30"),
		SelfReviewStart: civil("2026-04-01"), SelfReviewEnd: civil("2026-04-10"),
		ManagerReviewStart: civil("2026-04-05"), ManagerReviewEnd: civil("2026-04-20"),
		CheckInStart: civil("2026-05-01"), CheckInEnd: civil("2026-06-30"),
	}.Apply(cycle)
	suite.repo.EXPECT().GetPublishedCovering(suite.actor.OrganisationID, civil("2026-04-01")).Return(cycle, nil)

	resp, err := suite.service.GetActive(suite.actor)

	suite.Require().NoError(err)
	suite.Equal("2026-04-01", resp.Today)
	suite.True(resp.IsSelfReviewActive)
	suite.False(resp.IsManagerReviewActive)
	suite.False(resp.IsCheckInActive)
}

func (suite *ReviewCycleServiceTestSuite) TestGetActiveMissing() {
	suite.repo.EXPECT().GetPublishedCovering(suite.actor.OrganisationID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetActive(suite.actor)

	suite.ErrorIs(err, apperrors.ErrActiveReviewCycleMissing)
}

func TestReviewCycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewCycleServiceTestSuite))
}
