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

// HierarchyRepositoryTestSuite tests departments, teams and designations against Postgres
type HierarchyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	factories       *testutils.FactorySet
	orgRepo         *OrganisationRepository
	departmentRepo  *DepartmentRepository
	teamRepo        *TeamRepository
	designationRepo *DesignationRepository
	roleRepo        *RoleRepository
	employeeRepo    *EmployeeRepository
	org             *models.Organisation
}

func (suite *HierarchyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.factories = testutils.NewFactorySet()
	suite.orgRepo = NewOrganisationRepository(db)
	suite.departmentRepo = NewDepartmentRepository(db)
	suite.teamRepo = NewTeamRepository(db)
	suite.designationRepo = NewDesignationRepository(db)
	suite.roleRepo = NewRoleRepository(db)
	suite.employeeRepo = NewEmployeeRepository(db)
}

func (suite *HierarchyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *HierarchyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organisation.Create()
	suite.Require().NoError(suite.orgRepo.Onboard(&OnboardingBundle{Organisation: suite.org}))
}

func (suite *HierarchyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createHierarchy stores one department with one team and one designation
func (suite *HierarchyRepositoryTestSuite) createHierarchy() (*models.Department, *models.Team, *models.Designation) {
	dept := suite.factories.Department.WithOrganisation(suite.org.ID, "DEP001", "Engineering")
	suite.Require().NoError(suite.departmentRepo.CreateBatch([]models.Department{*dept}))

	team := suite.factories.Team.WithDepartment(dept, "TM001", "Platform")
	suite.Require().NoError(suite.teamRepo.CreateBatch([]models.Team{*team}))

	designation := suite.factories.Designation.WithTeam(team, "DG001", "Backend Engineer")
	suite.Require().NoError(suite.designationRepo.CreateBatch([]models.Designation{*designation}))

	return dept, team, designation
}

func (suite *HierarchyRepositoryTestSuite) TestNameExistsIsCaseInsensitive() {
	dept, _, _ := suite.createHierarchy()

	exists, err := suite.departmentRepo.NameExists(suite.org.ID, "ENGINEERING", uuid.Nil)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.departmentRepo.NameExists(suite.org.ID, "engineering", dept.ID)
	suite.NoError(err)
	suite.False(exists, "the department itself is excluded")

	exists, err = suite.departmentRepo.NameExists(uuid.New(), "Engineering", uuid.Nil)
	suite.NoError(err)
	suite.False(exists, "names are scoped to the organisation")
}

func (suite *HierarchyRepositoryTestSuite) TestCreateBatchIsAtomic() {
	first := suite.factories.Department.WithOrganisation(suite.org.ID, "DEP001", "Sales")
	clash := suite.factories.Department.WithOrganisation(suite.org.ID, "DEP001", "Marketing")

	err := suite.departmentRepo.CreateBatch([]models.Department{*first, *clash})

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
	count, err := suite.departmentRepo.Count(suite.org.ID)
	suite.NoError(err)
	suite.Zero(count)
}

func (suite *HierarchyRepositoryTestSuite) TestUnpublishCascades() {
	dept, team, designation := suite.createHierarchy()

	suite.Require().NoError(suite.departmentRepo.Unpublish(dept))

	storedTeam, err := suite.teamRepo.GetByID(suite.org.ID, team.ID)
	suite.Require().NoError(err)
	suite.False(storedTeam.IsActive)

	storedDesignation, err := suite.designationRepo.GetByID(suite.org.ID, designation.ID)
	suite.Require().NoError(err)
	suite.False(storedDesignation.IsActive)

	storedDept, err := suite.departmentRepo.GetByID(suite.org.ID, dept.ID)
	suite.Require().NoError(err)
	suite.False(storedDept.IsActive)
}

func (suite *HierarchyRepositoryTestSuite) TestHasActiveEmployees() {
	dept, team, designation := suite.createHierarchy()
	role := suite.factories.Role.WithPermissions(suite.org.ID, "Engineer")
	suite.Require().NoError(suite.roleRepo.Create(role))

	employee := suite.factories.Employee.InDesignation(suite.factories.Employee.WithRole(suite.org.ID, role.ID), designation)
	suite.Require().NoError(suite.employeeRepo.Create(employee, nil))

	checks := []struct {
		name  string
		id    uuid.UUID
		check func(uuid.UUID) (bool, error)
	}{
		{"department", dept.ID, suite.departmentRepo.HasActiveEmployees},
		{"team", team.ID, suite.teamRepo.HasActiveEmployees},
		{"designation", designation.ID, suite.designationRepo.HasActiveEmployees},
	}
	for _, tc := range checks {
		has, err := tc.check(tc.id)
		suite.NoError(err, tc.name)
		suite.True(has, tc.name)
	}

	has, err := suite.roleRepo.HasActiveEmployees(role.ID)
	suite.NoError(err)
	suite.True(has)
}

func (suite *HierarchyRepositoryTestSuite) TestListFiltersByDepartment() {
	dept, _, _ := suite.createHierarchy()
	other := suite.factories.Department.WithOrganisation(suite.org.ID, "DEP002", "Finance")
	suite.Require().NoError(suite.departmentRepo.CreateBatch([]models.Department{*other}))
	otherTeam := suite.factories.Team.WithDepartment(other, "TM002", "Payroll")
	suite.Require().NoError(suite.teamRepo.CreateBatch([]models.Team{*otherTeam}))

	teams, total, err := suite.teamRepo.List(suite.org.ID, HierarchyFilter{DepartmentID: &dept.ID}, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(teams, 1)
	suite.Equal("Platform", teams[0].Name)

	departments, total, err := suite.departmentRepo.List(suite.org.ID, "fin", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("DEP002", departments[0].DisplayID)
}

func TestHierarchyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(HierarchyRepositoryTestSuite))
}
