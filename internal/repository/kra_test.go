//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"performance-backend/internal/database/models"
	"performance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// KRARepositoryTestSuite tests weightage versioning against Postgres
type KRARepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	orgRepo       *OrganisationRepository
	kraRepo       *KRARepository
	org           *models.Organisation
}

func (suite *KRARepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.orgRepo = NewOrganisationRepository(suite.baseTestSuite.DB)
	suite.kraRepo = NewKRARepository(suite.baseTestSuite.DB)
}

func (suite *KRARepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *KRARepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organisation.Create()
	suite.Require().NoError(suite.orgRepo.Onboard(&OnboardingBundle{Organisation: suite.org}))
}

func (suite *KRARepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (suite *KRARepositoryTestSuite) createKRA(displayID, name string, weightage int, from time.Time) *models.KRA {
	kra := &models.KRA{OrganisationID: suite.org.ID, DisplayID: displayID, Name: name}
	err := suite.kraRepo.Create(kra, &models.KRAWeightage{
		OrganisationID: suite.org.ID,
		Weightage:      weightage,
		Version:        1,
		ValidFrom:      from,
	})
	suite.Require().NoError(err)
	return kra
}

func (suite *KRARepositoryTestSuite) TestNameExistsIsCaseInsensitive() {
	suite.createKRA("KRA1", "Results", 100, date(2025, 1, 1))

	exists, err := suite.kraRepo.NameExists(suite.org.ID, "RESULTS")
	suite.NoError(err)
	suite.True(exists)

	count, err := suite.kraRepo.Count(suite.org.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *KRARepositoryTestSuite) TestReplaceWeightagesKeepsHistory() {
	results := suite.createKRA("KRA1", "Results", 60, date(2025, 1, 1))
	skills := suite.createKRA("KRA2", "Skills", 40, date(2025, 1, 1))

	closeOn := date(2025, 6, 1)
	err := suite.kraRepo.ReplaceWeightages(suite.org.ID, closeOn, []models.KRAWeightage{
		{KRAID: results.ID, OrganisationID: suite.org.ID, Weightage: 70, Version: 2, ValidFrom: closeOn},
		{KRAID: skills.ID, OrganisationID: suite.org.ID, Weightage: 30, Version: 2, ValidFrom: closeOn},
	})
	suite.Require().NoError(err)

	current, err := suite.kraRepo.CurrentWeightages(suite.org.ID)
	suite.NoError(err)
	suite.Len(current, 2)
	for _, w := range current {
		suite.Equal(2, w.Version)
	}

	before, err := suite.kraRepo.WeightagesAt(suite.org.ID, date(2025, 5, 31))
	suite.NoError(err)
	suite.Equal(map[string]int{results.ID.String(): 60, skills.ID.String(): 40}, byKRA(before))

	after, err := suite.kraRepo.WeightagesAt(suite.org.ID, closeOn)
	suite.NoError(err)
	suite.Equal(map[string]int{results.ID.String(): 70, skills.ID.String(): 30}, byKRA(after))

	none, err := suite.kraRepo.WeightagesAt(suite.org.ID, date(2024, 12, 31))
	suite.NoError(err)
	suite.Empty(none)
}

func byKRA(weightages []models.KRAWeightage) map[string]int {
	out := make(map[string]int, len(weightages))
	for _, w := range weightages {
		out[w.KRAID.String()] = w.Weightage
	}
	return out
}

func TestKRARepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KRARepositoryTestSuite))
}
