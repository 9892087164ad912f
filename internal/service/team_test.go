package service_test

import (
	"errors"
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
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *mocks.MockTeamRepositoryInterface
	departments *mocks.MockDepartmentRepositoryInterface
	service     *service.TeamService
	actor       service.Actor
	engineering *models.Department
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.departments = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	activity := mocks.NewMockActivityRecorder(suite.ctrl)
	activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	suite.service = service.NewTeamService(suite.repo, suite.departments, activity, validator.New())
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: uuid.New()}
	suite.engineering = &models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Engineering", IsActive: true}
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreate() {
	suite.departments.EXPECT().GetByID(suite.actor.OrganisationID, suite.engineering.ID).Return(suite.engineering, nil)
	suite.repo.EXPECT().NameExists(suite.engineering.ID, "Platform", uuid.Nil).Return(false, nil)
	suite.repo.EXPECT().NameExists(suite.engineering.ID, "Mobile", uuid.Nil).Return(false, nil)
	suite.repo.EXPECT().Count(suite.actor.OrganisationID).Return(int64(9), nil)
	suite.repo.EXPECT().CreateBatch(gomock.Len(2)).Return(nil)

	teams, err := suite.service.Create(suite.actor, &service.CreateTeamsRequest{Teams: []service.CreateTeamRequest{
		{DepartmentID: suite.engineering.ID, Name: "Platform", IsActive: true},
		{DepartmentID: suite.engineering.ID, Name: "Mobile"},
	}})

	suite.Require().NoError(err)
	suite.Require().Len(teams, 2)
	suite.Equal("TM010", teams[0].DisplayID)
	suite.Equal("TM011", teams[1].DisplayID)
	suite.Equal("Engineering", teams[0].DepartmentName)
}

func (suite *TeamServiceTestSuite) TestCreateRules() {
	suite.T().Run("published team needs a published department", func(t *testing.T) {
		inactive := &models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Legacy"}
		suite.departments.EXPECT().GetByID(suite.actor.OrganisationID, inactive.ID).Return(inactive, nil)

		_, err := suite.service.Create(suite.actor, &service.CreateTeamsRequest{Teams: []service.CreateTeamRequest{
			{DepartmentID: inactive.ID, Name: "Ops", IsActive: true},
		}})

		assert.ErrorIs(t, err, apperrors.ErrParentDepartmentInactive)
	})

	suite.T().Run("duplicate within the batch", func(t *testing.T) {
		suite.departments.EXPECT().GetByID(suite.actor.OrganisationID, suite.engineering.ID).Return(suite.engineering, nil)
		suite.repo.EXPECT().NameExists(suite.engineering.ID, "QA", uuid.Nil).Return(false, nil)

		_, err := suite.service.Create(suite.actor, &service.CreateTeamsRequest{Teams: []service.CreateTeamRequest{
			{DepartmentID: suite.engineering.ID, Name: "QA"},
			{DepartmentID: suite.engineering.ID, Name: " qa "},
		}})

		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	suite.T().Run("padded name matches existing", func(t *testing.T) {
		suite.departments.EXPECT().GetByID(suite.actor.OrganisationID, suite.engineering.ID).Return(suite.engineering, nil)
		suite.repo.EXPECT().NameExists(suite.engineering.ID, "Platform", uuid.Nil).Return(true, nil)

		_, err := suite.service.Create(suite.actor, &service.CreateTeamsRequest{Teams: []service.CreateTeamRequest{
			{DepartmentID: suite.engineering.ID, Name: " Platform "},
		}})

		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	suite.T().Run("blank name", func(t *testing.T) {
		_, err := suite.service.Create(suite.actor, &service.CreateTeamsRequest{Teams: []service.CreateTeamRequest{
			{DepartmentID: suite.engineering.ID, Name: "\t  "},
		}})

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("unknown department", func(t *testing.T) {
		missing := uuid.New()
		suite.departments.EXPECT().GetByID(suite.actor.OrganisationID, missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Create(suite.actor, &service.CreateTeamsRequest{Teams: []service.CreateTeamRequest{
			{DepartmentID: missing, Name: "Ghost"},
		}})

		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})

	suite.T().Run("repository failure", func(t *testing.T) {
		suite.departments.EXPECT().GetByID(suite.actor.OrganisationID, suite.engineering.ID).Return(suite.engineering, nil)
		suite.repo.EXPECT().NameExists(suite.engineering.ID, "Data", uuid.Nil).Return(false, nil)
		suite.repo.EXPECT().Count(suite.actor.OrganisationID).Return(int64(0), nil)
		suite.repo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("connection reset"))

		_, err := suite.service.Create(suite.actor, &service.CreateTeamsRequest{Teams: []service.CreateTeamRequest{
			{DepartmentID: suite.engineering.ID, Name: "Data"},
		}})

		assert.ErrorContains(t, err, "failed to create teams")
	})
}

func (suite *TeamServiceTestSuite) TestUpdateUnpublish() {
	id := uuid.New()
	team := func() *models.Team {
		return &models.Team{BaseModel: models.BaseModel{ID: id}, DepartmentID: suite.engineering.ID, Department: suite.engineering, Name: "Platform", IsActive: true}
	}

	suite.T().Run("cascades", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(team(), nil)
		suite.repo.EXPECT().NameExists(suite.engineering.ID, "Platform", id).Return(false, nil)
		suite.repo.EXPECT().HasActiveEmployees(id).Return(false, nil)
		suite.repo.EXPECT().Unpublish(gomock.Any()).Return(nil)

		resp, err := suite.service.Update(suite.actor, id, &service.UpdateTeamRequest{Name: "Platform"})

		assert.NoError(t, err)
		assert.Equal(t, "Platform", resp.Name)
	})

	suite.T().Run("blocked by active employees", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(team(), nil)
		suite.repo.EXPECT().NameExists(suite.engineering.ID, "Platform", id).Return(false, nil)
		suite.repo.EXPECT().HasActiveEmployees(id).Return(true, nil)

		_, err := suite.service.Update(suite.actor, id, &service.UpdateTeamRequest{Name: "Platform"})

		assert.ErrorIs(t, err, apperrors.ErrTeamHasEmployees)
	})
}

func (suite *TeamServiceTestSuite) TestUpdatePublishUnderInactiveDepartment() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(&models.Team{
		BaseModel:    models.BaseModel{ID: id},
		DepartmentID: suite.engineering.ID,
		Department:   &models.Department{Name: "Legacy"},
		Name:         "Ops",
	}, nil)
	suite.repo.EXPECT().NameExists(suite.engineering.ID, "Ops", id).Return(false, nil)

	_, err := suite.service.Update(suite.actor, id, &service.UpdateTeamRequest{Name: "Ops", IsActive: true})

	suite.ErrorIs(err, apperrors.ErrParentDepartmentInactive)
}

func (suite *TeamServiceTestSuite) TestListByDepartment() {
	suite.repo.EXPECT().List(suite.actor.OrganisationID, repository.HierarchyFilter{DepartmentID: &suite.engineering.ID, Search: "plat"}, 10, 10).
		Return([]models.Team{{Name: "Platform", Department: suite.engineering}}, int64(11), nil)

	resp, err := suite.service.List(suite.actor, &suite.engineering.ID, "plat", 2, 10)

	suite.Require().NoError(err)
	suite.Equal(int64(11), resp.Total)
	suite.Equal(2, resp.Page)
	suite.Equal("Engineering", resp.Items[0].DepartmentName)
}

func (suite *TeamServiceTestSuite) TestUpdateTrimsName() {
	id := uuid.New()

	suite.T().Run("padded name matches existing", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(&models.Team{
			BaseModel: models.BaseModel{ID: id}, DepartmentID: suite.engineering.ID, Department: suite.engineering, Name: "Platform", IsActive: true,
		}, nil)
		suite.repo.EXPECT().NameExists(suite.engineering.ID, "Mobile", id).Return(true, nil)

		_, err := suite.service.Update(suite.actor, id, &service.UpdateTeamRequest{Name: " Mobile ", IsActive: true})

		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	suite.T().Run("blank name", func(t *testing.T) {
		_, err := suite.service.Update(suite.actor, id, &service.UpdateTeamRequest{Name: "   ", IsActive: true})

		assert.True(t, apperrors.IsValidation(err))
	})
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
