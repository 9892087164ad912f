package service_test

import (
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

type KRAServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockKRARepositoryInterface
	cycles  *mocks.MockReviewCycleRepositoryInterface
	orgs    *mocks.MockOrganisationRepositoryInterface
	service *service.KRAService
	actor   service.Actor
	today   time.Time
	kras    []models.KRA
}

func (suite *KRAServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockKRARepositoryInterface(suite.ctrl)
	suite.cycles = mocks.NewMockReviewCycleRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganisationRepositoryInterface(suite.ctrl)
	activity := mocks.NewMockActivityRecorder(suite.ctrl)
	activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	now := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)
	suite.today = time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	suite.service = service.NewKRAService(suite.repo, suite.cycles, suite.orgs, activity, validator.New()).
		WithClock(func() time.Time { return now })
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: uuid.New()}
	suite.kras = []models.KRA{
		{BaseModel: models.BaseModel{ID: uuid.New()}, DisplayID: "KRA01", Name: "Results", SortOrder: 1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, DisplayID: "KRA02", Name: "Skill Development & Knowledge Sharing", SortOrder: 2},
		{BaseModel: models.BaseModel{ID: uuid.New()}, DisplayID: "KRA03", Name: "Attitude Fitment", SortOrder: 3},
	}
	suite.orgs.EXPECT().GetByID(suite.actor.OrganisationID).Return(&models.Organisation{TimeZone: "UTC"}, nil).AnyTimes()
}

func (suite *KRAServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *KRAServiceTestSuite) current(version int, weightages ...int) []models.KRAWeightage {
	out := make([]models.KRAWeightage, len(weightages))
	for i, w := range weightages {
		out[i] = models.KRAWeightage{KRAID: suite.kras[i].ID, Weightage: w, Version: version}
	}
	return out
}

func (suite *KRAServiceTestSuite) TestUpdateWeightagesStartsNextVersion() {
	suite.cycles.EXPECT().GetPublishedCovering(suite.actor.OrganisationID, suite.today).Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().List(suite.actor.OrganisationID).Return(suite.kras, nil).Times(2)
	suite.repo.EXPECT().CurrentWeightages(suite.actor.OrganisationID).Return(suite.current(2, 60, 20, 20), nil)
	suite.repo.EXPECT().ReplaceWeightages(suite.actor.OrganisationID, suite.today, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ time.Time, next []models.KRAWeightage) error {
			suite.Require().Len(next, 3)
			for _, w := range next {
				suite.Equal(3, w.Version)
				suite.Equal(suite.today, w.ValidFrom)
			}
			return nil
		})
	suite.repo.EXPECT().CurrentWeightages(suite.actor.OrganisationID).Return(suite.current(3, 50, 30, 20), nil)

	result, err := suite.service.UpdateWeightages(suite.actor, &service.UpdateWeightagesRequest{Weightages: []service.WeightageInput{
		{KRAID: suite.kras[0].ID, Weightage: 50},
		{KRAID: suite.kras[1].ID, Weightage: 30},
		{KRAID: suite.kras[2].ID, Weightage: 20},
	}})

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(50, result[0].Weightage)
	suite.Equal(3, result[0].Version)
}

func (suite *KRAServiceTestSuite) TestUpdateWeightagesValidation() {
	suite.T().Run("sum must be 100", func(t *testing.T) {
		suite.cycles.EXPECT().GetPublishedCovering(suite.actor.OrganisationID, suite.today).Return(nil, gorm.ErrRecordNotFound)
		suite.repo.EXPECT().List(suite.actor.OrganisationID).Return(suite.kras, nil)

		_, err := suite.service.UpdateWeightages(suite.actor, &service.UpdateWeightagesRequest{Weightages: []service.WeightageInput{
			{KRAID: suite.kras[0].ID, Weightage: 50},
			{KRAID: suite.kras[1].ID, Weightage: 30},
			{KRAID: suite.kras[2].ID, Weightage: 30},
		}})

		assert.ErrorIs(t, err, apperrors.ErrInvalidWeightageTotal)
	})

	suite.T().Run("missing KRA", func(t *testing.T) {
		suite.cycles.EXPECT().GetPublishedCovering(suite.actor.OrganisationID, suite.today).Return(nil, gorm.ErrRecordNotFound)
		suite.repo.EXPECT().List(suite.actor.OrganisationID).Return(suite.kras, nil)

		_, err := suite.service.UpdateWeightages(suite.actor, &service.UpdateWeightagesRequest{Weightages: []service.WeightageInput{
			{KRAID: suite.kras[0].ID, Weightage: 70},
			{KRAID: suite.kras[1].ID, Weightage: 30},
		}})

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("blocked during a review cycle", func(t *testing.T) {
		suite.cycles.EXPECT().GetPublishedCovering(suite.actor.OrganisationID, suite.today).Return(&models.ReviewCycle{}, nil)

		_, err := suite.service.UpdateWeightages(suite.actor, &service.UpdateWeightagesRequest{Weightages: []service.WeightageInput{
			{KRAID: suite.kras[0].ID, Weightage: 100},
		}})

		assert.ErrorIs(t, err, apperrors.ErrReviewCycleInProgress)
	})
}

func (suite *KRAServiceTestSuite) TestCreateJoinsCurrentVersion() {
	suite.repo.EXPECT().NameExists(suite.actor.OrganisationID, "Innovation").Return(false, nil)
	suite.repo.EXPECT().Count(suite.actor.OrganisationID).Return(int64(3), nil)
	suite.repo.EXPECT().CurrentWeightages(suite.actor.OrganisationID).Return(suite.current(4, 60, 20, 20), nil)
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(kra *models.KRA, w *models.KRAWeightage) error {
		suite.Equal("KRA04", kra.DisplayID)
		suite.Equal(4, kra.SortOrder)
		suite.Equal(0, w.Weightage)
		suite.Equal(4, w.Version)
		suite.Equal(suite.today, w.ValidFrom)
		return nil
	})

	result, err := suite.service.Create(suite.actor, &service.CreateKRARequest{Name: "Innovation"})

	suite.Require().NoError(err)
	suite.Equal(0, result.Weightage)
}

func (suite *KRAServiceTestSuite) TestCreateDuplicate() {
	suite.repo.EXPECT().NameExists(suite.actor.OrganisationID, "results").Return(true, nil)

	_, err := suite.service.Create(suite.actor, &service.CreateKRARequest{Name: "results"})

	suite.ErrorIs(err, apperrors.ErrKRAExists)
}

func (suite *KRAServiceTestSuite) TestCreateTrimsName() {
	suite.T().Run("padded name matches existing", func(t *testing.T) {
		suite.repo.EXPECT().NameExists(suite.actor.OrganisationID, "Results").Return(true, nil)

		_, err := suite.service.Create(suite.actor, &service.CreateKRARequest{Name: "  Results "})

		assert.ErrorIs(t, err, apperrors.ErrKRAExists)
	})

	suite.T().Run("blank name", func(t *testing.T) {
		_, err := suite.service.Create(suite.actor, &service.CreateKRARequest{Name: "   "})

		assert.True(t, apperrors.IsValidation(err))
	})
}

func (suite *KRAServiceTestSuite) TestWeightagesAt() {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.repo.EXPECT().WeightagesAt(suite.actor.OrganisationID, day).Return(suite.current(1, 60, 20, 20), nil)

	result, err := suite.service.WeightagesAt(suite.actor.OrganisationID, day)

	suite.Require().NoError(err)
	suite.Equal(60, result[suite.kras[0].ID])
	suite.Len(result, 3)
}

func TestKRAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KRAServiceTestSuite))
}
