package auth

import (
	"net/http"
	"strings"

	"performance-backend/internal/database/models"
	"performance-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const authClaimsKey = "auth_claims"

// PermissionChecker resolves module permissions of an employee
type PermissionChecker interface {
	HasPermission(employeeID uuid.UUID, module models.Module, edit bool) (bool, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service     *AuthService
	permissions PermissionChecker
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, permissions PermissionChecker) *AuthMiddleware {
	return &AuthMiddleware{service: service, permissions: permissions}
}

// RequireAuth validates JWT tokens and sets the actor on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequirePermission rejects the request unless the actor's role grants the module permission.
// Edit access implies view access.
func (m *AuthMiddleware) RequirePermission(module models.Module, edit bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID, ok := GetEmployeeID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		allowed, err := m.permissions.HasPermission(employeeID, module, edit)
		if err != nil {
			logger.WithContext(c).WithError(err).WithField("module", module).Error("failed to resolve permissions")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve permissions"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to access this module", "details": string(module)})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SetClaims stores the validated claims on the context
func SetClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(logger.EmployeeIDKey, claims.EmployeeID)
	c.Set(logger.OrganisationIDKey, claims.OrganisationID)
	c.Set(logger.EmailKey, claims.Email)
	c.Set(authClaimsKey, claims)
}

// GetEmployeeID is a helper function to extract the employee ID from context
func GetEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(logger.EmployeeIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetOrganisationID is a helper function to extract the organisation ID from context
func GetOrganisationID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(logger.OrganisationIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(logger.EmailKey)
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
