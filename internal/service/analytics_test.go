package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"performance-backend/internal/cache"
	"performance-backend/internal/database/models"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/mocks"
	"performance-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// memoryCache keeps JSON encoded values in a map
type memoryCache struct {
	values  map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if c.failGet {
		return false, errors.New("connection refused")
	}
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	reviews   *mocks.MockReviewRepositoryInterface
	cycles    *mocks.MockReviewCycleRepositoryInterface
	employees *mocks.MockEmployeeRepositoryInterface
	orgs      *mocks.MockOrganisationRepositoryInterface
	cache     *memoryCache
	service   *service.AnalyticsService
	actor     service.Actor
	cycleID   uuid.UUID
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.reviews = mocks.NewMockReviewRepositoryInterface(suite.ctrl)
	suite.cycles = mocks.NewMockReviewCycleRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganisationRepositoryInterface(suite.ctrl)
	suite.cache = newMemoryCache()

	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	suite.service = service.NewAnalyticsService(suite.reviews, suite.cycles, suite.employees, suite.orgs, suite.cache, time.Minute).
		WithClock(func() time.Time { return now })
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: uuid.New()}
	suite.cycleID = uuid.New()
}

func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func published(to uuid.UUID, reviewType models.ReviewType, avg string) models.ReviewDetails {
	return models.ReviewDetails{ReviewToID: to, ReviewType: reviewType, Published: true, AverageRating: decimal.RequireFromString(avg)}
}

func (suite *AnalyticsServiceTestSuite) TestRatingsDistribution() {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycleID).Return(&models.ReviewCycle{}, nil).Times(1)
	suite.reviews.EXPECT().ListByCycle(suite.cycleID, nil).Return([]models.ReviewDetails{
		published(a, models.ReviewTypeFirstManager, "2.50"),
		published(a, models.ReviewTypeCheckIn, "4.20"),
		published(b, models.ReviewTypeFirstManager, "3.10"),
		published(c, models.ReviewTypeSelf, "5.00"),
		{ReviewToID: d, ReviewType: models.ReviewTypeCheckIn, AverageRating: decimal.RequireFromString("1.00")},
	}, nil).Times(1)

	resp, err := suite.service.RatingsDistribution(context.Background(), suite.actor, suite.cycleID)

	suite.Require().NoError(err)
	suite.Equal(2, resp.Total)
	suite.Equal(1, resp.ExceedsExpectations)
	suite.Equal(1, resp.MeetsExpectations)
	suite.Zero(resp.Unsatisfactory)

	// second call is served from the cache
	again, err := suite.service.RatingsDistribution(context.Background(), suite.actor, suite.cycleID)
	suite.Require().NoError(err)
	suite.Equal(resp, again)
}

func (suite *AnalyticsServiceTestSuite) TestRatingsDistributionUnknownCycle() {
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycleID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.RatingsDistribution(context.Background(), suite.actor, suite.cycleID)

	suite.ErrorIs(err, apperrors.ErrReviewCycleNotFound)
}

func (suite *AnalyticsServiceTestSuite) TestReviewStatusIgnoresCacheFailures() {
	suite.cache.failGet = true
	done, started, idle := uuid.New(), uuid.New(), uuid.New()
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycleID).Return(&models.ReviewCycle{}, nil)
	suite.employees.EXPECT().ListActive(suite.actor.OrganisationID).Return([]models.Employee{
		{BaseModel: models.BaseModel{ID: done}},
		{BaseModel: models.BaseModel{ID: started}},
		{BaseModel: models.BaseModel{ID: idle}},
	}, nil)
	suite.reviews.EXPECT().ListByCycle(suite.cycleID, nil).Return([]models.ReviewDetails{
		published(done, models.ReviewTypeSelf, "4.00"),
		published(done, models.ReviewTypeFirstManager, "4.00"),
		{ReviewToID: started, ReviewType: models.ReviewTypeSelf, Draft: true},
		{ReviewToID: uuid.New(), ReviewType: models.ReviewTypeSelf, Published: true},
	}, nil)

	resp, err := suite.service.ReviewStatus(context.Background(), suite.actor, suite.cycleID)

	suite.Require().NoError(err)
	suite.Equal(service.PhaseStatusCount{Completed: 1, InProgress: 1, Pending: 1}, resp.SelfReview)
	suite.Equal(service.PhaseStatusCount{Completed: 1, Pending: 2}, resp.ManagerReview)
	suite.Equal(service.PhaseStatusCount{Pending: 3}, resp.CheckIn)
}

func (suite *AnalyticsServiceTestSuite) TestEmployeesData() {
	suite.orgs.EXPECT().GetByID(suite.actor.OrganisationID).Return(&models.Organisation{TimeZone: "UTC"}, nil)
	engineering := &models.Department{Name: "Engineering"}
	suite.employees.EXPECT().ListActive(suite.actor.OrganisationID).Return([]models.Employee{
		{Gender: models.GenderFemale, Department: engineering, DateOfJoining: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Gender: models.GenderMale, Department: engineering, DateOfJoining: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{IsConsultant: true, DateOfJoining: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ExperienceMonths: 60},
	}, nil)

	resp, err := suite.service.EmployeesData(context.Background(), suite.actor)

	suite.Require().NoError(err)
	suite.Equal(3, resp.Total)
	suite.Equal(1, resp.Consultants)
	suite.Equal(map[string]int{"female": 1, "male": 1, "unspecified": 1}, resp.ByGender)
	suite.Equal(map[string]int{"Engineering": 2, "Unassigned": 1}, resp.ByDepartment)
	suite.Equal(map[string]int{"<1y": 1, "1-3y": 1, "3-5y": 0, "5y+": 1}, resp.ByExperience)
}

func (suite *AnalyticsServiceTestSuite) TestExport() {
	emp := models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeCode: "E001", FirstName: "Ana", LastName: "Silva", Department: &models.Department{Name: "Sales"}}
	suite.cycles.EXPECT().GetByID(suite.actor.OrganisationID, suite.cycleID).Return(&models.ReviewCycle{}, nil)
	suite.employees.EXPECT().ListActive(suite.actor.OrganisationID).Return([]models.Employee{emp}, nil)
	suite.reviews.EXPECT().ListByCycle(suite.cycleID, nil).Return([]models.ReviewDetails{
		published(emp.ID, models.ReviewTypeSelf, "3.50"),
		published(emp.ID, models.ReviewTypeCheckIn, "4.60"),
	}, nil)

	raw, err := suite.service.Export(suite.actor, suite.cycleID)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	suite.Require().NoError(err)
	defer f.Close()

	suite.Equal([]string{"Ratings", "Review Status"}, f.GetSheetList())

	rows, err := f.GetRows("Ratings")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Employee Code", rows[0][0])
	suite.Equal([]string{"E001", "Ana Silva", "Sales", "3.5", "", "", "4.6", "exceeds_expectations"}, rows[1])

	status, err := f.GetRows("Review Status")
	suite.Require().NoError(err)
	suite.Equal([]string{"E001", "Ana Silva", "Sales", "completed", "pending", "pending", "completed"}, status[1])
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func TestAnalyticsWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cycles := mocks.NewMockReviewCycleRepositoryInterface(ctrl)
	reviews := mocks.NewMockReviewRepositoryInterface(ctrl)
	orgID, cycleID := uuid.New(), uuid.New()

	cycles.EXPECT().GetByID(orgID, cycleID).Return(&models.ReviewCycle{}, nil).Times(2)
	reviews.EXPECT().ListByCycle(cycleID, nil).Return(nil, nil).Times(2)

	svc := service.NewAnalyticsService(reviews, cycles, nil, nil, cache.NoopCache{}, time.Minute)
	actor := service.Actor{OrganisationID: orgID}
	for i := 0; i < 2; i++ {
		resp, err := svc.RatingsDistribution(context.Background(), actor, cycleID)
		assert.NoError(t, err)
		assert.Zero(t, resp.Total)
	}
}
