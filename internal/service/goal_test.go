package service_test

import (
	"testing"

	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/mocks"
	"performance-backend/internal/repository"
	"performance-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GoalServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *mocks.MockGoalRepositoryInterface
	cycles    *mocks.MockReviewCycleRepositoryInterface
	employees *mocks.MockEmployeeRepositoryInterface
	notifier  *mocks.MockNotifier
	service   *service.GoalService
	actor     service.Actor
	reportee  *models.Employee
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockGoalRepositoryInterface(suite.ctrl)
	suite.cycles = mocks.NewMockReviewCycleRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	activity := mocks.NewMockActivityRecorder(suite.ctrl)
	activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	suite.service = service.NewGoalService(suite.repo, suite.cycles, suite.employees, suite.notifier, activity, validator.New())
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: uuid.New()}
	suite.reportee = &models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeCode: "E007", Email: "kiran@acme.io", IsActive: true}
}

func (suite *GoalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GoalServiceTestSuite) TestCreate() {
	cycleID := uuid.New()
	suite.employees.EXPECT().GetByID(suite.actor.OrganisationID, suite.reportee.ID).Return(suite.reportee, nil)
	suite.employees.EXPECT().GetManagers(suite.reportee.ID).Return([]models.EmployeeManagerMapping{
		{ManagerID: suite.actor.EmployeeID, Type: models.ManagerTypeSecond, IsActive: true},
	}, nil)
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, cycleID).Return(&models.ReviewCycle{}, nil)
	suite.repo.EXPECT().Count(suite.actor.OrganisationID).Return(int64(41), nil)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().NotifyEmployee(suite.actor.OrganisationID, "kiran@acme.io", gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.actor, &service.CreateGoalRequest{
		ReviewCycleID: cycleID,
		AssignedToID:  suite.reportee.ID,
		Description:   "Automate the release checklist",
		TargetDate:    "2026-12-15",
	})

	suite.Require().NoError(err)
	suite.Equal("G042", resp.DisplayID)
	suite.Equal(models.GoalProgressToDo, resp.Progress)
	suite.Equal("2026-12-15", resp.TargetDate)
}

func (suite *GoalServiceTestSuite) TestCreateRequiresManager() {
	suite.employees.EXPECT().GetByID(suite.actor.OrganisationID, suite.reportee.ID).Return(suite.reportee, nil)
	suite.employees.EXPECT().GetManagers(suite.reportee.ID).Return(nil, nil)

	_, err := suite.service.Create(suite.actor, &service.CreateGoalRequest{
		ReviewCycleID: uuid.New(),
		AssignedToID:  suite.reportee.ID,
		Description:   "Anything",
		TargetDate:    "2026-12-15",
	})

	suite.ErrorIs(err, apperrors.ErrNotReporteeManager)
}

func (suite *GoalServiceTestSuite) TestCreateRejectsBlankDescription() {
	_, err := suite.service.Create(suite.actor, &service.CreateGoalRequest{
		ReviewCycleID: uuid.New(),
		AssignedToID:  suite.reportee.ID,
		Description:   "  \t ",
		TargetDate:    "2026-12-15",
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *GoalServiceTestSuite) TestUpdateProgress() {
	goalID := uuid.New()

	suite.T().Run("assignee moves the goal", func(t *testing.T) {
		actor := service.Actor{EmployeeID: suite.reportee.ID, OrganisationID: suite.actor.OrganisationID}
		suite.repo.EXPECT().GetByID(actor.OrganisationID, goalID).
			Return(&models.Goal{BaseModel: models.BaseModel{ID: goalID}, AssignedToID: suite.reportee.ID, CreatedByID: suite.actor.EmployeeID}, nil)
		suite.repo.EXPECT().UpdateProgress(goalID, models.GoalProgressInProgress).Return(nil)

		resp, err := suite.service.UpdateProgress(actor, goalID, &service.UpdateGoalProgressRequest{Progress: models.GoalProgressInProgress})

		assert.NoError(t, err)
		assert.Equal(t, models.GoalProgressInProgress, resp.Progress)
	})

	suite.T().Run("outsider is rejected", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, goalID).
			Return(&models.Goal{BaseModel: models.BaseModel{ID: goalID}, AssignedToID: uuid.New(), CreatedByID: uuid.New()}, nil)

		_, err := suite.service.UpdateProgress(suite.actor, goalID, &service.UpdateGoalProgressRequest{Progress: models.GoalProgressCompleted})

		assert.ErrorIs(t, err, apperrors.ErrNotGoalParticipant)
	})

	suite.T().Run("unknown progress", func(t *testing.T) {
		_, err := suite.service.UpdateProgress(suite.actor, goalID, &service.UpdateGoalProgressRequest{Progress: "blocked"})

		assert.True(t, apperrors.IsValidation(err))
	})
}

func (suite *GoalServiceTestSuite) TestListReportees() {
	other := models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.employees.EXPECT().GetReportees(suite.actor.EmployeeID).Return([]models.Employee{*suite.reportee, other}, nil)
	suite.repo.EXPECT().List(suite.actor.OrganisationID, repository.GoalFilter{AssignedToIDs: []uuid.UUID{suite.reportee.ID, other.ID}}, 20, 0).
		Return([]models.Goal{{DisplayID: "G001"}}, int64(1), nil)

	resp, err := suite.service.List(suite.actor, service.GoalListRequest{Reportees: true})

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Total)
}

func (suite *GoalServiceTestSuite) TestOpenGoals() {
	employeeID := uuid.New()
	suite.repo.EXPECT().List(suite.actor.OrganisationID, repository.GoalFilter{AssignedToIDs: []uuid.UUID{employeeID}}, 100, 0).
		Return([]models.Goal{
			{DisplayID: "G001", Progress: models.GoalProgressToDo},
			{DisplayID: "G002", Progress: models.GoalProgressCompleted},
			{DisplayID: "G003", Progress: models.GoalProgressInProgress},
			{DisplayID: "G004", Progress: models.GoalProgressDeferred},
		}, int64(4), nil)

	goals, err := suite.service.OpenGoals(suite.actor.OrganisationID, employeeID)

	suite.Require().NoError(err)
	suite.Require().Len(goals, 2)
	suite.Equal("G001", goals[0].DisplayID)
	suite.Equal("G003", goals[1].DisplayID)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
