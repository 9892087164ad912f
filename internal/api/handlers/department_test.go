package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"performance-backend/internal/api/handlers"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/mocks"
	"performance-backend/internal/service"
	"performance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DepartmentHandlerTestSuite defines the test suite for DepartmentHandler
type DepartmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDepartmentServiceInterface
	http        *testutils.HTTPTestSuite
	actor       service.Actor
}

func (suite *DepartmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDepartmentServiceInterface(suite.ctrl)
	suite.actor = service.Actor{EmployeeID: testEmployeeID, OrganisationID: testOrgID, Email: "jane.doe@acme.io"}

	handler := handlers.NewDepartmentHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest(testClaims)
	suite.http.Router.POST("/departments", handler.CreateDepartments)
	suite.http.Router.GET("/departments", handler.ListDepartments)
	suite.http.Router.GET("/departments/:id", handler.GetDepartment)
	suite.http.Router.PUT("/departments/:id", handler.UpdateDepartment)
}

func (suite *DepartmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartments() {
	req := service.CreateDepartmentsRequest{Departments: []service.CreateDepartmentRequest{{Name: "Sales", IsActive: true}}}
	suite.mockService.EXPECT().
		Create(suite.actor, &req).
		Return([]service.DepartmentResponse{{ID: uuid.New(), DisplayID: "DEP001", Name: "Sales", IsActive: true}}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/departments", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp []service.DepartmentResponse
	testutils.ParseJSONResponse(suite.T(), w, &resp)
	suite.Len(resp, 1)
	suite.Equal("DEP001", resp[0].DisplayID)
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartmentsErrors() {
	suite.Run("malformed body", func() {
		w := suite.http.MakeRequest(http.MethodPost, "/departments", "{not json")
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("duplicate name", func() {
		suite.mockService.EXPECT().Create(suite.actor, gomock.Any()).Return(nil, apperrors.ErrDepartmentExists)

		w := suite.http.MakeRequest(http.MethodPost, "/departments", service.CreateDepartmentsRequest{
			Departments: []service.CreateDepartmentRequest{{Name: "Sales"}},
		})

		suite.Equal(http.StatusBadRequest, w.Code)
		var resp handlers.ErrorResponse
		testutils.ParseJSONResponse(suite.T(), w, &resp)
		suite.Contains(resp.Error, "department")
	})

	suite.Run("unexpected failure", func() {
		suite.mockService.EXPECT().Create(suite.actor, gomock.Any()).Return(nil, errors.New("connection reset"))

		w := suite.http.MakeRequest(http.MethodPost, "/departments", service.CreateDepartmentsRequest{
			Departments: []service.CreateDepartmentRequest{{Name: "Sales"}},
		})

		suite.Equal(http.StatusInternalServerError, w.Code)
		var resp handlers.ErrorResponse
		testutils.ParseJSONResponse(suite.T(), w, &resp)
		suite.Equal("Failed to create departments", resp.Error)
		suite.Equal("connection reset", resp.Details)
	})
}

func (suite *DepartmentHandlerTestSuite) TestGetDepartment() {
	id := uuid.New()

	suite.Run("found", func() {
		suite.mockService.EXPECT().GetByID(suite.actor, id).Return(&service.DepartmentResponse{ID: id, Name: "Sales"}, nil)

		w := suite.http.MakeRequest(http.MethodGet, "/departments/"+id.String(), nil)

		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("not found", func() {
		suite.mockService.EXPECT().GetByID(suite.actor, id).Return(nil, apperrors.ErrDepartmentNotFound)

		w := suite.http.MakeRequest(http.MethodGet, "/departments/"+id.String(), nil)

		suite.Equal(http.StatusNotFound, w.Code)
	})

	suite.Run("invalid id", func() {
		w := suite.http.MakeRequest(http.MethodGet, "/departments/not-a-uuid", nil)

		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *DepartmentHandlerTestSuite) TestListDepartmentsPassesPagination() {
	suite.mockService.EXPECT().
		List(suite.actor, "sal", 2, 10).
		Return(&service.PagedResponse[service.DepartmentResponse]{Items: []service.DepartmentResponse{}, Total: 11, Page: 2, PageSize: 10}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/departments?search=sal&page=2&page_size=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp service.PagedResponse[service.DepartmentResponse]
	testutils.ParseJSONResponse(suite.T(), w, &resp)
	suite.Equal(int64(11), resp.Total)
}

func (suite *DepartmentHandlerTestSuite) TestUpdateDepartmentBlockedByEmployees() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(suite.actor, id, gomock.Any()).Return(nil, apperrors.ErrDepartmentHasEmployees)

	w := suite.http.MakeRequest(http.MethodPut, "/departments/"+id.String(), service.UpdateDepartmentRequest{Name: "Sales"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *DepartmentHandlerTestSuite) TestMissingActor() {
	anonymous := testutils.SetupHTTPTest(nil)
	anonymous.Router.GET("/departments", handlers.NewDepartmentHandler(suite.mockService).ListDepartments)

	w := anonymous.MakeRequest(http.MethodGet, "/departments", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestDepartmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentHandlerTestSuite))
}
