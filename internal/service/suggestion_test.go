package service_test

import (
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

type SuggestionServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockSuggestionRepositoryInterface
	roles    *mocks.MockRoleRepositoryInterface
	activity *mocks.MockActivityRecorder
	service  *service.SuggestionService
	actor    service.Actor
}

func (suite *SuggestionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockSuggestionRepositoryInterface(suite.ctrl)
	suite.roles = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.activity = mocks.NewMockActivityRecorder(suite.ctrl)
	suite.service = service.NewSuggestionService(suite.repo, suite.roles, suite.activity, validator.New())
	suite.actor = service.Actor{EmployeeID: uuid.New(), OrganisationID: uuid.New()}
}

func (suite *SuggestionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SuggestionServiceTestSuite) TestCreateDraftIsNotRecorded() {
	suite.repo.EXPECT().Count(suite.actor.OrganisationID).Return(int64(2), nil)
	suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Suggestion) error {
		suite.Equal(suite.actor.EmployeeID, s.SuggestedByID)
		suite.Equal(models.SuggestionProgressPending, s.Progress)
		return nil
	})

	resp, err := suite.service.Create(suite.actor, &service.SuggestionRequest{Suggestion: "  Quarterly hackathon  ", IsDraft: true})

	suite.Require().NoError(err)
	suite.Equal("S003", resp.DisplayID)
	suite.Equal("Quarterly hackathon", resp.Suggestion)
	suite.True(resp.IsDraft)
}

func (suite *SuggestionServiceTestSuite) TestCreateSubmittedIsRecorded() {
	suite.repo.EXPECT().Count(suite.actor.OrganisationID).Return(int64(0), nil)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.activity.EXPECT().Record(suite.actor.OrganisationID, suite.actor.EmployeeID, "Suggestion Submitted", "S001 submitted")

	resp, err := suite.service.Create(suite.actor, &service.SuggestionRequest{Suggestion: "Standing desks", IsAnonymous: true})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.SuggestedByID)
	suite.Equal(suite.actor.EmployeeID, *resp.SuggestedByID)
}

func (suite *SuggestionServiceTestSuite) TestUpdate() {
	id := uuid.New()

	suite.T().Run("submitted suggestion is frozen", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, SuggestedByID: suite.actor.EmployeeID}, nil)

		_, err := suite.service.Update(suite.actor, id, &service.SuggestionRequest{Suggestion: "Edited"})

		assert.ErrorIs(t, err, apperrors.ErrSuggestionNotDraft)
	})

	suite.T().Run("someone else's draft", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, SuggestedByID: uuid.New(), IsDraft: true}, nil)

		_, err := suite.service.Update(suite.actor, id, &service.SuggestionRequest{Suggestion: "Edited"})

		assert.ErrorIs(t, err, apperrors.ErrNotSuggestionOwner)
	})

	suite.T().Run("draft submitted", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, DisplayID: "S004", SuggestedByID: suite.actor.EmployeeID, IsDraft: true}, nil)
		suite.repo.EXPECT().Update(gomock.Any()).Return(nil)
		suite.activity.EXPECT().Record(suite.actor.OrganisationID, suite.actor.EmployeeID, "Suggestion Submitted", "S004 submitted")

		resp, err := suite.service.Update(suite.actor, id, &service.SuggestionRequest{Suggestion: "Edited"})

		assert.NoError(t, err)
		assert.False(t, resp.IsDraft)
	})

	suite.T().Run("blank text", func(t *testing.T) {
		_, err := suite.service.Update(suite.actor, id, &service.SuggestionRequest{Suggestion: " \n "})

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("unknown suggestion", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Update(suite.actor, id, &service.SuggestionRequest{Suggestion: "Edited"})

		assert.ErrorIs(t, err, apperrors.ErrSuggestionNotFound)
	})
}

func (suite *SuggestionServiceTestSuite) TestCreateRejectsBlankText() {
	_, err := suite.service.Create(suite.actor, &service.SuggestionRequest{Suggestion: "    ", IsDraft: true})

	suite.True(apperrors.IsValidation(err))
}

func (suite *SuggestionServiceTestSuite) TestListReceivedHidesAnonymousAuthors() {
	author := &models.Employee{FirstName: "Priya", LastName: "Nair"}
	suite.repo.EXPECT().ListReceived(suite.actor.OrganisationID, models.SuggestionProgressPending, 20, 0).
		Return([]models.Suggestion{
			{DisplayID: "S001", SuggestedByID: uuid.New(), SuggestedBy: author, IsAnonymous: true},
			{DisplayID: "S002", SuggestedByID: uuid.New(), SuggestedBy: author},
		}, int64(2), nil)

	resp, err := suite.service.ListReceived(suite.actor, models.SuggestionProgressPending, 0, 0)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Items, 2)
	suite.Equal("Anonymous", resp.Items[0].SuggestedBy)
	suite.Nil(resp.Items[0].SuggestedByID)
	suite.Equal("Priya Nair", resp.Items[1].SuggestedBy)
	suite.NotNil(resp.Items[1].SuggestedByID)
}

func (suite *SuggestionServiceTestSuite) TestListReceivedRejectsUnknownProgress() {
	_, err := suite.service.ListReceived(suite.actor, "archived", 1, 20)

	suite.True(apperrors.IsValidation(err))
}

func (suite *SuggestionServiceTestSuite) TestUpdateProgress() {
	id := uuid.New()
	req := &service.SuggestionProgressRequest{Progress: models.SuggestionProgressCompleted, Comment: "Shipped in March"}

	suite.T().Run("records a comment", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, DisplayID: "S001", Progress: models.SuggestionProgressInProgress}, nil)
		suite.repo.EXPECT().AddProgress(gomock.Any(), gomock.Any()).DoAndReturn(func(s *models.Suggestion, c *models.SuggestionComment) error {
			assert.Equal(t, models.SuggestionProgressCompleted, s.Progress)
			assert.Equal(t, "Shipped in March", c.Comment)
			assert.Equal(t, suite.actor.EmployeeID, c.CommentedByID)
			return nil
		})
		suite.activity.EXPECT().Record(suite.actor.OrganisationID, suite.actor.EmployeeID, "Suggestion Progress Updated", "S001 moved to completed")

		resp, err := suite.service.UpdateProgress(suite.actor, id, req)

		assert.NoError(t, err)
		assert.Equal(t, models.SuggestionProgressCompleted, resp.Progress)
	})

	suite.T().Run("completed is terminal", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, Progress: models.SuggestionProgressCompleted}, nil)

		_, err := suite.service.UpdateProgress(suite.actor, id, req)

		assert.ErrorIs(t, err, apperrors.ErrSuggestionCompleted)
	})

	suite.T().Run("drafts cannot progress", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, IsDraft: true}, nil)

		_, err := suite.service.UpdateProgress(suite.actor, id, req)

		assert.ErrorIs(t, err, apperrors.ErrSuggestionIsDraft)
	})

	suite.T().Run("comment required", func(t *testing.T) {
		_, err := suite.service.UpdateProgress(suite.actor, id, &service.SuggestionProgressRequest{Progress: models.SuggestionProgressDeferred})

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("blank comment", func(t *testing.T) {
		_, err := suite.service.UpdateProgress(suite.actor, id, &service.SuggestionProgressRequest{Progress: models.SuggestionProgressDeferred, Comment: "   "})

		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("comment is trimmed", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, DisplayID: "S002", Progress: models.SuggestionProgressPending}, nil)
		suite.repo.EXPECT().AddProgress(gomock.Any(), gomock.Any()).DoAndReturn(func(_ *models.Suggestion, c *models.SuggestionComment) error {
			assert.Equal(t, "Revisit next quarter", c.Comment)
			return nil
		})
		suite.activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		_, err := suite.service.UpdateProgress(suite.actor, id, &service.SuggestionProgressRequest{
			Progress: models.SuggestionProgressDeferred,
			Comment:  "  Revisit next quarter ",
		})

		assert.NoError(t, err)
	})
}

func (suite *SuggestionServiceTestSuite) TestListComments() {
	id := uuid.New()

	suite.T().Run("author sees comments", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, SuggestedByID: suite.actor.EmployeeID}, nil)
		suite.repo.EXPECT().ListComments(id).Return([]models.SuggestionComment{
			{Comment: "Looking into it", Progress: models.SuggestionProgressInProgress, CommentedBy: &models.Employee{FirstName: "Ana", LastName: "Silva"}},
		}, nil)

		comments, err := suite.service.ListComments(suite.actor, id)

		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, "Ana Silva", comments[0].CommentedBy)
	})

	suite.T().Run("others need the received suggestions module", func(t *testing.T) {
		suite.repo.EXPECT().GetByID(suite.actor.OrganisationID, id).
			Return(&models.Suggestion{BaseModel: models.BaseModel{ID: id}, SuggestedByID: uuid.New()}, nil)
		suite.roles.EXPECT().GetPermission(suite.actor.EmployeeID, models.ModuleReceivedSuggestions).
			Return(&models.ModulePermission{Module: models.ModuleReceivedSuggestions}, nil)

		_, err := suite.service.ListComments(suite.actor, id)

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestSuggestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionServiceTestSuite))
}
