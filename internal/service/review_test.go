package service_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/mocks"
	"performance-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func civil(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type ReviewServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	reviews   *mocks.MockReviewRepositoryInterface
	cycles    *mocks.MockReviewCycleRepositoryInterface
	orgs      *mocks.MockOrganisationRepositoryInterface
	employees *mocks.MockEmployeeRepositoryInterface
	kpis      *mocks.MockKPIRepositoryInterface
	kras      *mocks.MockKRARepositoryInterface
	goals     *mocks.MockGoalRepositoryInterface
	roles     *mocks.MockRoleRepositoryInterface
	notifier  *mocks.MockNotifier
	now       time.Time
	service   *service.ReviewService

	actor    service.Actor
	cycle    *models.ReviewCycle
	reviewee *models.Employee
	kraA     uuid.UUID
	kraB     uuid.UUID
	kpi1     uuid.UUID
	kpi2     uuid.UUID
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.reviews = mocks.NewMockReviewRepositoryInterface(suite.ctrl)
	suite.cycles = mocks.NewMockReviewCycleRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganisationRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.kpis = mocks.NewMockKPIRepositoryInterface(suite.ctrl)
	suite.kras = mocks.NewMockKRARepositoryInterface(suite.ctrl)
	suite.goals = mocks.NewMockGoalRepositoryInterface(suite.ctrl)
	suite.roles = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	activity := mocks.NewMockActivityRecorder(suite.ctrl)
	activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	suite.now = time.Date(2026, 6, 9, 10, 0, 0, 0, time.UTC)
	suite.service = service.NewReviewService(service.ReviewRepositories{
		Reviews:   suite.reviews,
		Cycles:    suite.cycles,
		Orgs:      suite.orgs,
		Employees: suite.employees,
		KPIs:      suite.kpis,
		KRAs:      suite.kras,
		Goals:     suite.goals,
		Roles:     suite.roles,
	}, suite.notifier, activity, validator.New()).WithClock(func() time.Time { return suite.now })

	orgID := uuid.New()
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: orgID}
	suite.cycle = &models.ReviewCycle{
		BaseModel:              models.BaseModel{ID: uuid.New()},
		OrganisationID:         orgID,
		Publish:                true,
		StartDate:              civil("2026-04-01"),
		EndDate:                civil("2026-06-30"),
		SelfReviewStartDate:    civil("2026-06-01"),
		SelfReviewEndDate:      civil("2026-06-10"),
		ManagerReviewStartDate: civil("2026-06-08"),
		ManagerReviewEndDate:   civil("2026-06-20"),
		CheckInStartDate:       civil("2026-06-21"),
		CheckInEndDate:         civil("2026-06-30"),
	}
	designationID := uuid.New()
	suite.reviewee = &models.Employee{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganisationID: orgID,
		EmployeeCode:   "E042",
		Email:          "asha@acme.io",
		IsActive:       true,
		DesignationID:  &designationID,
	}
	suite.kraA, suite.kraB = uuid.New(), uuid.New()
	suite.kpi1, suite.kpi2 = uuid.New(), uuid.New()
}

func (suite *ReviewServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReviewServiceTestSuite) expectContext(timeZone string) {
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycle.ID).Return(suite.cycle, nil)
	suite.orgs.EXPECT().GetByID(suite.actor.OrganisationID).Return(&models.Organisation{TimeZone: timeZone}, nil)
}

func (suite *ReviewServiceTestSuite) expectReviewee(reviewType models.ReviewType, existing *models.ReviewDetails) {
	suite.employees.EXPECT().GetByID(suite.actor.OrganisationID, suite.reviewee.ID).Return(suite.reviewee, nil)
	if existing != nil {
		suite.reviews.EXPECT().GetDetails(suite.cycle.ID, suite.reviewee.ID, reviewType, suite.actor.EmployeeID).Return(existing, nil)
	} else {
		suite.reviews.EXPECT().GetDetails(suite.cycle.ID, suite.reviewee.ID, reviewType, suite.actor.EmployeeID).Return(nil, gorm.ErrRecordNotFound)
	}
}

func (suite *ReviewServiceTestSuite) expectKPIs() {
	suite.kpis.EXPECT().ListApplicable(suite.actor.OrganisationID, *suite.reviewee.DesignationID).Return([]models.KPI{
		{BaseModel: models.BaseModel{ID: suite.kpi1}, KRAID: suite.kraA},
		{BaseModel: models.BaseModel{ID: suite.kpi2}, KRAID: suite.kraB},
	}, nil)
}

func (suite *ReviewServiceTestSuite) expectWeightages() {
	suite.kras.EXPECT().WeightagesAt(suite.actor.OrganisationID, suite.cycle.StartDate).Return([]models.KRAWeightage{
		{KRAID: suite.kraA, Weightage: 60},
		{KRAID: suite.kraB, Weightage: 40},
	}, nil)
}

func (suite *ReviewServiceTestSuite) selfActor() service.Actor {
	return service.Actor{EmployeeID: suite.reviewee.ID, OrganisationID: suite.actor.OrganisationID}
}

func (suite *ReviewServiceTestSuite) TestSubmitSelfReviewPublished() {
	suite.actor = suite.selfActor()
	suite.expectContext("UTC")
	suite.expectReviewee(models.ReviewTypeSelf, nil)
	suite.expectKPIs()
	suite.expectWeightages()

	var saved *models.ReviewDetails
	suite.reviews.EXPECT().Save(gomock.Any(), gomock.Nil()).DoAndReturn(func(d *models.ReviewDetails, goals []models.Goal) error {
		saved = d
		return nil
	})

	resp, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{
		ReviewCycleID: suite.cycle.ID,
		Reviews: []service.KPIReviewInput{
			{KPIID: suite.kpi1, Review: "Shipped the billing migration", Rating: 4},
			{KPIID: suite.kpi2, Review: "Mentored two interns", Rating: 5},
		},
	})

	suite.Require().NoError(err)
	suite.True(resp.Published)
	suite.False(resp.Draft)
	suite.Equal("4.40", resp.AverageRating.StringFixed(2))
	suite.NotNil(resp.SubmittedAt)
	suite.Equal(models.ReviewTypeSelf, saved.ReviewType)
	suite.Equal(suite.reviewee.ID, saved.ReviewFromID)
	suite.Len(saved.Reviews, 2)
}

func (suite *ReviewServiceTestSuite) TestSubmitSelfReviewDraftAllowsUnrated() {
	suite.actor = suite.selfActor()
	suite.expectContext("UTC")
	suite.expectReviewee(models.ReviewTypeSelf, nil)
	suite.expectKPIs()
	suite.expectWeightages()
	suite.reviews.EXPECT().Save(gomock.Any(), gomock.Nil()).Return(nil)

	resp, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{
		ReviewCycleID: suite.cycle.ID,
		Draft:         true,
		Reviews:       []service.KPIReviewInput{{KPIID: suite.kpi1, Rating: 3}, {KPIID: suite.kpi2}},
	})

	suite.Require().NoError(err)
	suite.True(resp.Draft)
	suite.False(resp.Published)
	suite.Nil(resp.SubmittedAt)
	suite.Equal("3.00", resp.AverageRating.StringFixed(2))
}

func (suite *ReviewServiceTestSuite) TestSubmitSelfReviewRequiresEveryKPI() {
	suite.actor = suite.selfActor()
	suite.expectContext("UTC")
	suite.expectReviewee(models.ReviewTypeSelf, nil)
	suite.expectKPIs()

	_, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{
		ReviewCycleID: suite.cycle.ID,
		Reviews:       []service.KPIReviewInput{{KPIID: suite.kpi1, Review: "Good", Rating: 4}},
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *ReviewServiceTestSuite) TestSubmitRejectsForeignKPI() {
	suite.actor = suite.selfActor()
	suite.expectContext("UTC")
	suite.expectReviewee(models.ReviewTypeSelf, nil)
	suite.expectKPIs()

	_, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{
		ReviewCycleID: suite.cycle.ID,
		Draft:         true,
		Reviews:       []service.KPIReviewInput{{KPIID: uuid.New(), Rating: 2}},
	})

	suite.ErrorIs(err, apperrors.ErrKPINotApplicable)
}

func (suite *ReviewServiceTestSuite) TestPublishedReviewIsImmutable() {
	suite.actor = suite.selfActor()
	suite.expectContext("UTC")
	suite.expectReviewee(models.ReviewTypeSelf, &models.ReviewDetails{Published: true})

	_, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{
		ReviewCycleID: suite.cycle.ID,
		Draft:         true,
	})

	suite.ErrorIs(err, apperrors.ErrReviewAlreadySubmitted)
}

func (suite *ReviewServiceTestSuite) TestTimelineFollowsOrganisationTimeZone() {
	suite.actor = suite.selfActor()
	// 20:00 UTC on the last self review day is already the next day in India
	suite.now = time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC)

	suite.T().Run("closed in Asia/Kolkata", func(t *testing.T) {
		suite.expectContext("Asia/Kolkata")

		_, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{ReviewCycleID: suite.cycle.ID, Draft: true})

		assert.ErrorIs(t, err, apperrors.ErrReviewTimelineClosed)
	})

	suite.T().Run("open in America/New_York", func(t *testing.T) {
		suite.expectContext("America/New_York")
		suite.expectReviewee(models.ReviewTypeSelf, nil)
		suite.expectKPIs()
		suite.expectWeightages()
		suite.reviews.EXPECT().Save(gomock.Any(), gomock.Nil()).Return(nil)

		_, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{ReviewCycleID: suite.cycle.ID, Draft: true})

		assert.NoError(t, err)
	})
}

func (suite *ReviewServiceTestSuite) TestUnpublishedCycle() {
	suite.cycle.Publish = false
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycle.ID).Return(suite.cycle, nil)

	_, err := suite.service.SubmitSelfReview(suite.actor, &service.SubmitReviewRequest{ReviewCycleID: suite.cycle.ID, Draft: true})

	suite.ErrorIs(err, apperrors.ErrReviewCycleNotPublished)
}

func (suite *ReviewServiceTestSuite) TestManagerReviewOnlyByManager() {
	suite.employees.EXPECT().GetManagers(suite.reviewee.ID).Return([]models.EmployeeManagerMapping{
		{ManagerID: uuid.New(), Type: models.ManagerTypeFirst, IsActive: true},
		{ManagerID: suite.actor.EmployeeID, Type: models.ManagerTypeSecond, IsActive: false},
	}, nil)

	_, err := suite.service.SubmitManagerReview(suite.actor, &service.SubmitReviewRequest{
		ReviewCycleID: suite.cycle.ID,
		ReviewToID:    suite.reviewee.ID,
		Draft:         true,
	})

	suite.ErrorIs(err, apperrors.ErrNotReporteeManager)
}

func (suite *ReviewServiceTestSuite) TestManagerReviewTypeFollowsMapping() {
	suite.employees.EXPECT().GetManagers(suite.reviewee.ID).Return([]models.EmployeeManagerMapping{
		{ManagerID: suite.actor.EmployeeID, Type: models.ManagerTypeSecond, IsActive: true},
	}, nil)
	suite.expectContext("UTC")
	suite.expectReviewee(models.ReviewTypeSecondManager, nil)
	suite.expectKPIs()
	suite.expectWeightages()
	suite.reviews.EXPECT().Save(gomock.Any(), gomock.Nil()).Return(nil)

	resp, err := suite.service.SubmitManagerReview(suite.actor, &service.SubmitReviewRequest{
		ReviewCycleID: suite.cycle.ID,
		ReviewToID:    suite.reviewee.ID,
		Draft:         true,
	})

	suite.Require().NoError(err)
	suite.Equal(models.ReviewTypeSecondManager, resp.ReviewType)
}

func (suite *ReviewServiceTestSuite) TestManagerReviewNeedsReviewee() {
	_, err := suite.service.SubmitManagerReview(suite.actor, &service.SubmitReviewRequest{ReviewCycleID: suite.cycle.ID})

	suite.True(apperrors.IsValidation(err))
}

func (suite *ReviewServiceTestSuite) TestCheckInCreatesGoals() {
	suite.now = time.Date(2026, 6, 25, 9, 0, 0, 0, time.UTC)
	suite.employees.EXPECT().GetManagers(suite.reviewee.ID).Return([]models.EmployeeManagerMapping{
		{ManagerID: suite.actor.EmployeeID, Type: models.ManagerTypeFirst, IsActive: true},
	}, nil)
	suite.expectContext("UTC")
	suite.expectReviewee(models.ReviewTypeCheckIn, nil)
	suite.expectKPIs()
	suite.expectWeightages()
	suite.goals.EXPECT().Count(suite.actor.OrganisationID).Return(int64(9), nil)
	suite.reviews.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(d *models.ReviewDetails, goals []models.Goal) error {
		suite.Require().Len(goals, 1)
		suite.Equal("G010", goals[0].DisplayID)
		suite.Equal(suite.reviewee.ID, goals[0].AssignedToID)
		suite.Equal(models.GoalProgressToDo, goals[0].Progress)
		suite.Equal("Lead the Q3 cost review", goals[0].Description)
		return nil
	})
	suite.notifier.EXPECT().NotifyEmployee(suite.actor.OrganisationID, "asha@acme.io", gomock.Any()).Return(nil)

	resp, err := suite.service.SubmitCheckIn(suite.actor, &service.SubmitCheckInRequest{
		SubmitReviewRequest: service.SubmitReviewRequest{
			ReviewCycleID: suite.cycle.ID,
			ReviewToID:    suite.reviewee.ID,
			Reviews: []service.KPIReviewInput{
				{KPIID: suite.kpi1, Review: "Met the quarter target", Rating: 3},
				{KPIID: suite.kpi2, Review: "Strong ownership", Rating: 4},
			},
		},
		Goals: []service.CheckInGoalInput{{Description: " Lead the Q3 cost review  ", TargetDate: "2026-09-30"}},
	})

	suite.Require().NoError(err)
	suite.Equal(1, resp.GoalsCreated)
	suite.Equal(models.ReviewTypeCheckIn, resp.ReviewType)
	suite.Equal("3.40", resp.AverageRating.StringFixed(2))
}

func (suite *ReviewServiceTestSuite) TestCheckInRejectsBlankGoal() {
	_, err := suite.service.SubmitCheckIn(suite.actor, &service.SubmitCheckInRequest{
		SubmitReviewRequest: service.SubmitReviewRequest{ReviewCycleID: suite.cycle.ID, ReviewToID: suite.reviewee.ID},
		Goals:               []service.CheckInGoalInput{{Description: "   ", TargetDate: "2026-09-30"}},
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *ReviewServiceTestSuite) TestCheckInOnlyByFirstManager() {
	suite.employees.EXPECT().GetManagers(suite.reviewee.ID).Return([]models.EmployeeManagerMapping{
		{ManagerID: suite.actor.EmployeeID, Type: models.ManagerTypeSecond, IsActive: true},
	}, nil)

	_, err := suite.service.SubmitCheckIn(suite.actor, &service.SubmitCheckInRequest{
		SubmitReviewRequest: service.SubmitReviewRequest{ReviewCycleID: suite.cycle.ID, ReviewToID: suite.reviewee.ID},
	})

	suite.ErrorIs(err, apperrors.ErrNotReporteeManager)
}

func (suite *ReviewServiceTestSuite) TestGetAccess() {
	suite.T().Run("reviewee sees own self review", func(t *testing.T) {
		actor := suite.selfActor()
		suite.cycles.EXPECT().GetByID(actor.OrganisationID, suite.cycle.ID).Return(suite.cycle, nil)
		suite.reviews.EXPECT().GetDetails(suite.cycle.ID, suite.reviewee.ID, models.ReviewTypeSelf, uuid.Nil).
			Return(&models.ReviewDetails{ReviewType: models.ReviewTypeSelf, ReviewToID: suite.reviewee.ID}, nil)

		resp, err := suite.service.Get(actor, suite.cycle.ID, suite.reviewee.ID, models.ReviewTypeSelf)

		require.NoError(t, err)
		assert.Equal(t, suite.reviewee.ID, resp.ReviewToID)
	})

	suite.T().Run("stranger without permission is denied", func(t *testing.T) {
		suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycle.ID).Return(suite.cycle, nil)
		suite.employees.EXPECT().GetManagers(suite.reviewee.ID).Return(nil, nil)
		suite.roles.EXPECT().GetPermission(suite.actor.EmployeeID, models.ModuleTeamReviews).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Get(suite.actor, suite.cycle.ID, suite.reviewee.ID, models.ReviewTypeFirstManager)

		assert.ErrorIs(t, err, apperrors.ErrReviewAccessDenied)
	})

	suite.T().Run("reviewee cannot read manager review", func(t *testing.T) {
		actor := suite.selfActor()
		suite.cycles.EXPECT().GetByID(actor.OrganisationID, suite.cycle.ID).Return(suite.cycle, nil)
		suite.roles.EXPECT().GetPermission(actor.EmployeeID, models.ModuleTeamReviews).Return(&models.ModulePermission{}, nil)

		_, err := suite.service.Get(actor, suite.cycle.ID, suite.reviewee.ID, models.ReviewTypeFirstManager)

		assert.ErrorIs(t, err, apperrors.ErrReviewAccessDenied)
	})
}

func (suite *ReviewServiceTestSuite) TestTeamStatus() {
	other := models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeCode: "E043", FirstName: "Ravi"}
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycle.ID).Return(suite.cycle, nil)
	suite.employees.EXPECT().GetReportees(suite.actor.EmployeeID).Return([]models.Employee{*suite.reviewee, other}, nil)
	suite.reviews.EXPECT().ListByCycle(suite.cycle.ID, []uuid.UUID{suite.reviewee.ID, other.ID}).Return([]models.ReviewDetails{
		{ReviewToID: suite.reviewee.ID, ReviewType: models.ReviewTypeSelf, Published: true},
		{ReviewToID: suite.reviewee.ID, ReviewType: models.ReviewTypeFirstManager, Draft: true},
	}, nil)

	statuses, err := suite.service.TeamStatus(suite.actor, suite.cycle.ID)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 2)
	suite.Equal(service.ReviewStatusCompleted, statuses[0].SelfReview)
	suite.Equal(service.ReviewStatusInProgress, statuses[0].FirstManagerReview)
	suite.Equal(service.ReviewStatusPending, statuses[0].CheckIn)
	suite.Equal(service.ReviewStatusPending, statuses[1].SelfReview)
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
