package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserActivityHandler serves the organisation's audit trail
type UserActivityHandler struct {
	service service.UserActivityServiceInterface
}

// NewUserActivityHandler creates a new user activity handler
func NewUserActivityHandler(service service.UserActivityServiceInterface) *UserActivityHandler {
	return &UserActivityHandler{service: service}
}

// ListActivities handles GET /api/v1/user-activities
// @Summary List recent user activity, newest first
// @Tags user-activities
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.UserActivityResponse]
// @Security BearerAuth
// @Router /user-activities [get]
func (h *UserActivityHandler) ListActivities(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.List(actor, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list user activities")
		return
	}
	c.JSON(http.StatusOK, resp)
}
