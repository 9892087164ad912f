package handlers

import (
	"net/http"

	apperrors "performance-backend/internal/errors"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler looks people up in the corporate LDAP directory to prefill employee records
type DirectoryHandler struct {
	service service.EmployeeServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(s service.EmployeeServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

// Search searches the directory by name or email prefix
// @Summary Search the corporate directory
// @Description Searches the LDAP directory for people whose name or email starts with q
// @Tags employees
// @Produce json
// @Param q query string true "Name or email prefix"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} ErrorResponse "Missing query parameter"
// @Failure 502 {object} ErrorResponse "LDAP connection or search failed"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /employees/directory [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		badRequest(c, "missing query parameter: q", nil)
		return
	}

	entries, err := h.service.SearchDirectory(q)
	if err != nil {
		if apperrors.IsConfiguration(err) || apperrors.IsValidation(err) {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "ldap search failed", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}
