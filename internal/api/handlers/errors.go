package handlers

import (
	"net/http"
	"strconv"

	"performance-backend/internal/auth"
	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/logger"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// respondError maps application errors onto HTTP status codes. Unknown errors are logged and
// reported as 500 with message as the summary.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err), apperrors.IsBusinessRule(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error(message)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Details: err.Error()})
	}
}

func badRequest(c *gin.Context, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// actorFrom builds the actor from the claims set by the auth middleware
func actorFrom(c *gin.Context) (service.Actor, bool) {
	employeeID, ok := auth.GetEmployeeID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingActor, "")
		return service.Actor{}, false
	}
	orgID, ok := auth.GetOrganisationID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingActor, "")
		return service.Actor{}, false
	}
	email, _ := auth.GetUserEmail(c)
	return service.Actor{EmployeeID: employeeID, OrganisationID: orgID, Email: email}, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+name+": invalid UUID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query parameter. A missing parameter yields nil.
func queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, "Invalid "+name+": invalid UUID format", nil)
		return nil, false
	}
	return &id, true
}

// pagination reads page and page_size; the service clamps out-of-range values
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
