package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"performance-backend/internal/api/handlers"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/mocks"
	"performance-backend/internal/service"
	"performance-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlackHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSlackServiceInterface
	http        *testutils.HTTPTestSuite
	actor       service.Actor
}

func (suite *SlackHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSlackServiceInterface(suite.ctrl)
	suite.actor = service.Actor{EmployeeID: testEmployeeID, OrganisationID: testOrgID, Email: "jane.doe@acme.io"}

	handler := handlers.NewSlackHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest(testClaims)
	suite.http.Router.GET("/integrations/slack", handler.Status)
	suite.http.Router.GET("/integrations/slack/install", handler.InstallURL)
	suite.http.Router.DELETE("/integrations/slack", handler.Disconnect)
	suite.http.Router.GET("/slack/oauth/callback", handler.OAuthCallback)
	suite.http.Router.POST("/slack/events", handler.Events)
	suite.http.Router.POST("/slack/commands", handler.Commands)
}

func (suite *SlackHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SlackHandlerTestSuite) TestInstallURLNotConfigured() {
	suite.mockService.EXPECT().InstallURL(suite.actor).Return(nil, apperrors.ErrSlackNotConfigured)

	w := suite.http.MakeRequest(http.MethodGet, "/integrations/slack/install", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *SlackHandlerTestSuite) TestOAuthCallback() {
	suite.Run("completes install", func() {
		suite.mockService.EXPECT().
			CompleteInstall(gomock.Any(), "code-1", "state-1").
			Return(&service.SlackStatusResponse{Connected: true, WorkspaceID: "T01"}, nil)

		w := suite.http.MakeRequest(http.MethodGet, "/slack/oauth/callback?code=code-1&state=state-1", nil)

		suite.Equal(http.StatusOK, w.Code)
		var resp service.SlackStatusResponse
		testutils.ParseJSONResponse(suite.T(), w, &resp)
		suite.True(resp.Connected)
	})

	suite.Run("forged state", func() {
		suite.mockService.EXPECT().CompleteInstall(gomock.Any(), "code-1", "forged").Return(nil, apperrors.ErrInvalidSlackState)

		w := suite.http.MakeRequest(http.MethodGet, "/slack/oauth/callback?code=code-1&state=forged", nil)

		suite.Equal(http.StatusUnauthorized, w.Code)
	})

	suite.Run("denied by user", func() {
		w := suite.http.MakeRequest(http.MethodGet, "/slack/oauth/callback?error=access_denied&state=state-1", nil)

		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *SlackHandlerTestSuite) TestDisconnect() {
	suite.mockService.EXPECT().Disconnect(suite.actor).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/integrations/slack", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *SlackHandlerTestSuite) TestEventsPassesRawBody() {
	body := `{"type":"url_verification","challenge":"abc"}`
	suite.mockService.EXPECT().
		HandleEvent(gomock.Any(), gomock.Any(), []byte(body)).
		DoAndReturn(func(_ context.Context, header http.Header, _ []byte) (*service.SlackEventResponse, error) {
			suite.Equal("v0=signature", header.Get("X-Slack-Signature"))
			return &service.SlackEventResponse{Challenge: "abc"}, nil
		})

	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/slack/events", body, map[string]string{
		"X-Slack-Signature": "v0=signature",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"challenge":"abc"}`, w.Body.String())
}

func (suite *SlackHandlerTestSuite) TestEventsBadSignature() {
	suite.mockService.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidSignature)

	w := suite.http.MakeRequest(http.MethodPost, "/slack/events", `{}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *SlackHandlerTestSuite) TestCommandsReplyIsEphemeral() {
	suite.mockService.EXPECT().
		HandleCommand(gomock.Any(), gomock.Any(), []byte("command=%2Fperformance&text=goals")).
		Return("G001 Ship onboarding revamp", nil)

	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/slack/commands", "command=%2Fperformance&text=goals", map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"response_type":"ephemeral","text":"G001 Ship onboarding revamp"}`, w.Body.String())
}

func TestSlackHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SlackHandlerTestSuite))
}
