//go:build integration
// +build integration

package repository

import (
	"testing"

	"performance-backend/internal/database/models"
	"performance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// EmployeeRepositoryTestSuite tests employees and reporting lines against Postgres
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	orgRepo       *OrganisationRepository
	roleRepo      *RoleRepository
	employeeRepo  *EmployeeRepository
	org           *models.Organisation
	role          *models.Role
}

func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.factories = testutils.NewFactorySet()
	suite.orgRepo = NewOrganisationRepository(db)
	suite.roleRepo = NewRoleRepository(db)
	suite.employeeRepo = NewEmployeeRepository(db)
}

func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organisation.Create()
	suite.Require().NoError(suite.orgRepo.Onboard(&OnboardingBundle{Organisation: suite.org}))
	suite.role = suite.factories.Role.WithPermissions(suite.org.ID, "Employee",
		models.ModulePermission{Module: models.ModuleGoals, View: true})
	suite.Require().NoError(suite.roleRepo.Create(suite.role))
}

func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmployeeRepositoryTestSuite) newEmployee(managers ...models.EmployeeManagerMapping) *models.Employee {
	employee := suite.factories.Employee.WithRole(suite.org.ID, suite.role.ID)
	suite.Require().NoError(suite.employeeRepo.Create(employee, managers))
	return employee
}

func (suite *EmployeeRepositoryTestSuite) TestOnboardRejectsDuplicateDomain() {
	clash := suite.factories.Organisation.Create()
	clash.Domain = suite.org.Domain

	err := suite.orgRepo.Onboard(&OnboardingBundle{Organisation: clash})

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

func (suite *EmployeeRepositoryTestSuite) TestReportingLines() {
	manager := suite.newEmployee()
	skip := suite.newEmployee()
	reportee := suite.newEmployee(
		models.EmployeeManagerMapping{ManagerID: manager.ID, Type: models.ManagerTypeFirst},
		models.EmployeeManagerMapping{ManagerID: skip.ID, Type: models.ManagerTypeSecond},
	)

	mappings, err := suite.employeeRepo.GetManagers(reportee.ID)
	suite.Require().NoError(err)
	suite.Require().Len(mappings, 2)
	suite.Equal(manager.ID, mappings[0].ManagerID)
	suite.Equal(skip.ID, mappings[1].ManagerID)

	for _, managerID := range []uuid.UUID{manager.ID, skip.ID} {
		reportees, err := suite.employeeRepo.GetReportees(managerID)
		suite.NoError(err)
		suite.Require().Len(reportees, 1)
		suite.Equal(reportee.ID, reportees[0].ID)
		suite.Equal(suite.role.ID, reportees[0].Role.ID)
	}

	count, err := suite.employeeRepo.CountActiveReportees(skip.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *EmployeeRepositoryTestSuite) TestUpdateReplacesManagers() {
	first := suite.newEmployee()
	second := suite.newEmployee()
	reportee := suite.newEmployee(models.EmployeeManagerMapping{ManagerID: first.ID, Type: models.ManagerTypeFirst})

	err := suite.employeeRepo.Update(reportee, []models.EmployeeManagerMapping{
		{ManagerID: second.ID, Type: models.ManagerTypeFirst},
	})
	suite.Require().NoError(err)

	reportees, err := suite.employeeRepo.GetReportees(first.ID)
	suite.NoError(err)
	suite.Empty(reportees)

	reportees, err = suite.employeeRepo.GetReportees(second.ID)
	suite.NoError(err)
	suite.Len(reportees, 1)
}

func (suite *EmployeeRepositoryTestSuite) TestInactiveReporteesAreHidden() {
	manager := suite.newEmployee()
	reportee := suite.newEmployee(models.EmployeeManagerMapping{ManagerID: manager.ID, Type: models.ManagerTypeFirst})

	reportee.IsActive = false
	suite.Require().NoError(suite.employeeRepo.SetStatus(reportee, reportee.CreatedAt.Add(1)))

	count, err := suite.employeeRepo.CountActiveReportees(manager.ID)
	suite.NoError(err)
	suite.Zero(count)
}

func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
