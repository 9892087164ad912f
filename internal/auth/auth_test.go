package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"performance-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePermissionChecker struct {
	allowed bool
	err     error

	gotModule models.Module
	gotEdit   bool
}

func (f *fakePermissionChecker) HasPermission(employeeID uuid.UUID, module models.Module, edit bool) (bool, error) {
	f.gotModule = module
	f.gotEdit = edit
	return f.allowed, f.err
}

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(&AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "performance-backend",
		TokenTTL:  time.Hour,
		StateTTL:  10 * time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &AuthConfig{JWTSecret: "secret", Issuer: "issuer"}
		assert.NoError(t, cfg.ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := &AuthConfig{Issuer: "issuer"}
		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing issuer", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{JWTSecret: "secret"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "issuer")
	})
}

func TestJWT(t *testing.T) {
	svc := newTestService(t)
	employeeID := uuid.New()
	orgID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateJWT(employeeID, orgID, "jane@acme.io")
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, employeeID, claims.EmployeeID)
		assert.Equal(t, orgID, claims.OrganisationID)
		assert.Equal(t, "jane@acme.io", claims.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateJWT(employeeID, orgID, "jane@acme.io")
		require.NoError(t, err)

		later := newTestService(t)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = later.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other", Issuer: "performance-backend", TokenTTL: time.Hour})
		require.NoError(t, err)
		token, err := other.GenerateJWT(employeeID, orgID, "jane@acme.io")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestState(t *testing.T) {
	svc := newTestService(t)
	orgID := uuid.New()
	employeeID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		state, err := svc.GenerateState(orgID, employeeID)
		require.NoError(t, err)

		claims, err := svc.ValidateState(state)
		require.NoError(t, err)
		assert.Equal(t, orgID, claims.OrganisationID)
		assert.Equal(t, employeeID, claims.EmployeeID)
	})

	t.Run("access token is not a valid state", func(t *testing.T) {
		token, err := svc.GenerateJWT(employeeID, orgID, "jane@acme.io")
		require.NoError(t, err)

		_, err = svc.ValidateState(token)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	middleware := NewAuthMiddleware(svc, &fakePermissionChecker{allowed: true})

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		employeeID, _ := GetEmployeeID(c)
		orgID, _ := GetOrganisationID(c)
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"employee_id": employeeID, "organisation_id": orgID, "email": email})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		employeeID := uuid.New()
		token, err := svc.GenerateJWT(employeeID, uuid.New(), "jane@acme.io")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), employeeID.String())
		assert.Contains(t, w.Body.String(), "jane@acme.io")
	})
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)

	setup := func(checker *fakePermissionChecker) *gin.Engine {
		middleware := NewAuthMiddleware(svc, checker)
		router := gin.New()
		router.Use(func(c *gin.Context) {
			SetClaims(c, &AuthClaims{EmployeeID: uuid.New(), OrganisationID: uuid.New(), Email: "a@b.c"})
		})
		router.POST("/departments", middleware.RequirePermission(models.ModuleDepartments, true), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return router
	}

	t.Run("allowed", func(t *testing.T) {
		checker := &fakePermissionChecker{allowed: true}
		w := httptest.NewRecorder()
		setup(checker).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, models.ModuleDepartments, checker.gotModule)
		assert.True(t, checker.gotEdit)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		setup(&fakePermissionChecker{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("checker failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		setup(&fakePermissionChecker{err: errors.New("db down")}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
