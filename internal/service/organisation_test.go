package service_test

import (
	"testing"
	"time"

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

type OrganisationServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *mocks.MockOrganisationRepositoryInterface
	employees *mocks.MockEmployeeRepositoryInterface
	activity  *mocks.MockActivityRecorder
	service   *service.OrganisationService
}

func (suite *OrganisationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockOrganisationRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.activity = mocks.NewMockActivityRecorder(suite.ctrl)

	// 23:30 UTC is already the next day in Tokyo
	now := time.Date(2026, 3, 31, 23, 30, 0, 0, time.UTC)
	suite.service = service.NewOrganisationService(suite.repo, suite.employees, suite.activity, validator.New()).
		WithClock(func() time.Time { return now })
}

func (suite *OrganisationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func onboardRequest() *service.OnboardOrganisationRequest {
	return &service.OnboardOrganisationRequest{
		Name:     "Acme Labs",
		Domain:   " Acme.io ",
		TimeZone: "Asia/Tokyo",
		Admin: service.OnboardAdminRequest{
			EmployeeCode: "E001",
			FirstName:    "Mei",
			LastName:     "Tanaka",
			Email:        "Mei@Acme.io",
		},
	}
}

func (suite *OrganisationServiceTestSuite) TestOnboard() {
	var bundle *repository.OnboardingBundle
	suite.repo.EXPECT().GetByDomain("acme.io").Return(nil, gorm.ErrRecordNotFound)
	suite.employees.EXPECT().EmailExists("Mei@Acme.io", uuid.Nil).Return(false, nil)
	suite.repo.EXPECT().Onboard(gomock.Any()).DoAndReturn(func(b *repository.OnboardingBundle) error {
		bundle = b
		return nil
	})
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any(), "Organisation Onboarded", "Acme Labs onboarded")

	resp, err := suite.service.Onboard(onboardRequest())

	suite.Require().NoError(err)
	suite.Equal("acme.io", resp.Organisation.Domain)
	suite.Require().NotNil(bundle)

	suite.Require().Len(bundle.Roles, 3)
	suite.Equal(models.RoleOrgAdmin, bundle.Roles[0].Name)
	for _, r := range bundle.Roles {
		suite.True(r.IsSystem)
		suite.Equal(bundle.Organisation.ID, r.OrganisationID)
	}

	suite.Require().Len(bundle.KRAs, 3)
	total := 0
	for i, w := range bundle.Weightages {
		suite.Equal(bundle.KRAs[i].ID, w.KRAID)
		suite.Equal(1, w.Version)
		suite.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), w.ValidFrom)
		total += w.Weightage
	}
	suite.Equal(100, total)
	suite.Equal("KRA01", bundle.KRAs[0].DisplayID)

	suite.Equal(bundle.Roles[0].ID, bundle.Admin.RoleID)
	suite.Equal("mei@acme.io", bundle.Admin.Email)
	suite.True(bundle.Admin.IsActive)
	suite.Equal(resp.AdminID, bundle.Admin.ID)
	suite.Equal(bundle.Admin.ID, bundle.History.EmployeeID)
}

func (suite *OrganisationServiceTestSuite) TestOnboardConflicts() {
	suite.T().Run("domain taken", func(t *testing.T) {
		suite.repo.EXPECT().GetByDomain("acme.io").Return(&models.Organisation{Domain: "acme.io"}, nil)

		_, err := suite.service.Onboard(onboardRequest())

		assert.ErrorIs(t, err, apperrors.ErrOrganisationExists)
	})

	suite.T().Run("admin email taken", func(t *testing.T) {
		suite.repo.EXPECT().GetByDomain("acme.io").Return(nil, gorm.ErrRecordNotFound)
		suite.employees.EXPECT().EmailExists("Mei@Acme.io", uuid.Nil).Return(true, nil)

		_, err := suite.service.Onboard(onboardRequest())

		assert.ErrorIs(t, err, apperrors.ErrEmployeeExists)
	})

	suite.T().Run("unknown time zone", func(t *testing.T) {
		req := onboardRequest()
		req.TimeZone = "Mars/Olympus"

		_, err := suite.service.Onboard(req)

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("admin email malformed", func(t *testing.T) {
		req := onboardRequest()
		req.Admin.Email = "mei"

		_, err := suite.service.Onboard(req)

		assert.True(t, apperrors.IsValidation(err))
	})
}

func (suite *OrganisationServiceTestSuite) TestUpdate() {
	orgID := uuid.New()
	actor := service.Actor{EmployeeID: uuid.New(), OrganisationID: orgID}
	org := &models.Organisation{BaseModel: models.BaseModel{ID: orgID}, Name: "Acme", TimeZone: "UTC", IsActive: true}
	suite.repo.EXPECT().GetByID(orgID).Return(org, nil)
	suite.repo.EXPECT().Update(org).Return(nil)
	suite.activity.EXPECT().Record(orgID, actor.EmployeeID, "Organisation Updated", gomock.Any())

	resp, err := suite.service.Update(actor, &service.UpdateOrganisationRequest{Name: "Acme Labs", TimeZone: "Europe/Lisbon"})

	suite.Require().NoError(err)
	suite.Equal("Europe/Lisbon", resp.TimeZone)
	suite.Equal("Acme Labs", resp.Name)
}

func (suite *OrganisationServiceTestSuite) TestGetMissing() {
	actor := service.Actor{OrganisationID: uuid.New()}
	suite.repo.EXPECT().GetByID(actor.OrganisationID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Get(actor)

	suite.ErrorIs(err, apperrors.ErrOrganisationNotFound)
}

func TestOrganisationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganisationServiceTestSuite))
}
