package service_test

import (
	"errors"
	"testing"

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

// RoleServiceTestSuite defines the test suite for RoleService
type RoleServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockRoleRepositoryInterface
	service *service.RoleService
	actor   service.Actor
}

func (suite *RoleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	activity := mocks.NewMockActivityRecorder(suite.ctrl)
	activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	suite.service = service.NewRoleService(suite.repo, activity, validator.New())
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: uuid.New()}
}

func (suite *RoleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoleServiceTestSuite) TestCreate() {
	suite.repo.EXPECT().NameExists(suite.actor.OrganisationID, "Team Lead", uuid.Nil).Return(false, nil)
	suite.repo.EXPECT().Count(suite.actor.OrganisationID).Return(int64(3), nil)
	suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(role *models.Role) error {
		suite.Len(role.Permissions, 1, "modules without view are not stored")
		return nil
	})

	role, err := suite.service.Create(suite.actor, &service.RoleRequest{
		Name:     " Team Lead ",
		IsActive: true,
		Permissions: []service.PermissionInput{
			{Module: models.ModuleGoals, View: true, Edit: true},
			{Module: models.ModuleKPIs},
		},
	})

	suite.Require().NoError(err)
	suite.Equal("R004", role.DisplayID)
	suite.Equal("Team Lead", role.Name)
}

func (suite *RoleServiceTestSuite) TestCreatePermissionRules() {
	cases := []struct {
		name        string
		permissions []service.PermissionInput
	}{
		{"unknown module", []service.PermissionInput{{Module: "payroll", View: true}}},
		{"module listed twice", []service.PermissionInput{
			{Module: models.ModuleGoals, View: true},
			{Module: models.ModuleGoals, View: true, Edit: true},
		}},
		{"edit without view", []service.PermissionInput{{Module: models.ModuleGoals, Edit: true}}},
	}
	for _, tc := range cases {
		suite.T().Run(tc.name, func(t *testing.T) {
			_, err := suite.service.Create(suite.actor, &service.RoleRequest{Name: "Custom", Permissions: tc.permissions})
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func (suite *RoleServiceTestSuite) TestCreateDuplicateName() {
	suite.repo.EXPECT().NameExists(suite.actor.OrganisationID, "Manager", uuid.Nil).Return(true, nil)

	_, err := suite.service.Create(suite.actor, &service.RoleRequest{Name: "Manager"})

	suite.ErrorIs(err, apperrors.ErrRoleExists)
}

func (suite *RoleServiceTestSuite) TestUpdateOrgAdminIsImmutable() {
	admin := &models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, Name: models.RoleOrgAdmin, IsSystem: true, IsActive: true}
	suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, admin.ID).Return(admin, nil)

	_, err := suite.service.Update(suite.actor, admin.ID, &service.RoleRequest{Name: "Admin", IsActive: true})

	suite.ErrorIs(err, apperrors.ErrSystemRoleImmutable)
}

func (suite *RoleServiceTestSuite) TestUpdateSystemRoleKeepsName() {
	manager := &models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, Name: models.RoleManager, IsSystem: true, IsActive: true}
	suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, manager.ID).Return(manager, nil)
	suite.repo.EXPECT().NameExists(suite.actor.OrganisationID, "Lead", manager.ID).Return(false, nil)
	suite.repo.EXPECT().Update(manager).Return(nil)

	role, err := suite.service.Update(suite.actor, manager.ID, &service.RoleRequest{
		Name:        "Lead",
		IsActive:    true,
		Permissions: []service.PermissionInput{{Module: models.ModuleTeamReviews, View: true, Edit: true}},
	})

	suite.Require().NoError(err)
	suite.Equal(models.RoleManager, role.Name)
	suite.Len(role.Permissions, 1)
}

func (suite *RoleServiceTestSuite) TestUnpublishWithEmployees() {
	role := &models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Contractor", IsActive: true}
	suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, role.ID).Return(role, nil)
	suite.repo.EXPECT().NameExists(suite.actor.OrganisationID, "Contractor", role.ID).Return(false, nil)
	suite.repo.EXPECT().HasActiveEmployees(role.ID).Return(true, nil)

	_, err := suite.service.Update(suite.actor, role.ID, &service.RoleRequest{Name: "Contractor"})

	suite.ErrorIs(err, apperrors.ErrRoleHasEmployees)
}

func (suite *RoleServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(suite.actor, id)

	suite.ErrorIs(err, apperrors.ErrRoleNotFound)
}

func (suite *RoleServiceTestSuite) TestHasPermission() {
	employeeID := uuid.New()

	suite.T().Run("edit implies view", func(t *testing.T) {
		suite.repo.EXPECT().GetPermission(employeeID, models.ModuleGoals).
			Return(&models.ModulePermission{Module: models.ModuleGoals, Edit: true}, nil)
		ok, err := suite.service.HasPermission(employeeID, models.ModuleGoals, false)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	suite.T().Run("view does not grant edit", func(t *testing.T) {
		suite.repo.EXPECT().GetPermission(employeeID, models.ModuleKPIs).
			Return(&models.ModulePermission{Module: models.ModuleKPIs, View: true}, nil)
		ok, err := suite.service.HasPermission(employeeID, models.ModuleKPIs, true)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	suite.T().Run("no grant", func(t *testing.T) {
		suite.repo.EXPECT().GetPermission(employeeID, models.ModuleAnalytics).Return(nil, gorm.ErrRecordNotFound)
		ok, err := suite.service.HasPermission(employeeID, models.ModuleAnalytics, false)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	suite.T().Run("lookup failure", func(t *testing.T) {
		suite.repo.EXPECT().GetPermission(employeeID, models.ModuleRoles).Return(nil, errors.New("connection reset"))
		_, err := suite.service.HasPermission(employeeID, models.ModuleRoles, false)
		assert.Error(t, err)
	})
}

func TestDefaultPermissions(t *testing.T) {
	admin := service.DefaultPermissions(models.RoleOrgAdmin)
	assert.Len(t, admin, len(models.AllModules()))
	for _, p := range admin {
		assert.True(t, p.View && p.Edit, p.Module)
	}

	employee := service.DefaultPermissions(models.RoleEmployee)
	for _, p := range employee {
		assert.False(t, p.Edit, p.Module)
	}

	assert.Nil(t, service.DefaultPermissions("Contractor"))
}

func TestRoleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceTestSuite))
}
