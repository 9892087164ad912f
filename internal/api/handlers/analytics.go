package handlers

import (
	"fmt"
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AnalyticsHandler handles HTTP requests for organisation analytics
type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// RatingsDistribution handles GET /api/v1/analytics/review-cycles/:id/ratings
// @Summary Rating bands of a review cycle
// @Tags analytics
// @Produce json
// @Param id path string true "Review cycle ID (UUID)"
// @Success 200 {object} service.RatingsDistributionResponse
// @Failure 404 {object} ErrorResponse "Review cycle not found"
// @Security BearerAuth
// @Router /analytics/review-cycles/{id}/ratings [get]
func (h *AnalyticsHandler) RatingsDistribution(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	cycleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.RatingsDistribution(c.Request.Context(), actor, cycleID)
	if err != nil {
		respondError(c, err, "Failed to get ratings distribution")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReviewStatus handles GET /api/v1/analytics/review-cycles/:id/status
// @Summary Completion counts per review phase
// @Tags analytics
// @Produce json
// @Param id path string true "Review cycle ID (UUID)"
// @Success 200 {object} service.ReviewStatusResponse
// @Failure 404 {object} ErrorResponse "Review cycle not found"
// @Security BearerAuth
// @Router /analytics/review-cycles/{id}/status [get]
func (h *AnalyticsHandler) ReviewStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	cycleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.ReviewStatus(c.Request.Context(), actor, cycleID)
	if err != nil {
		respondError(c, err, "Failed to get review status")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EmployeesData handles GET /api/v1/analytics/employees
func (h *AnalyticsHandler) EmployeesData(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	resp, err := h.service.EmployeesData(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to get employees data")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Export handles GET /api/v1/analytics/review-cycles/:id/export
// @Summary Download ratings and review status as an XLSX workbook
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Review cycle ID (UUID)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Review cycle not found"
// @Security BearerAuth
// @Router /analytics/review-cycles/{id}/export [get]
func (h *AnalyticsHandler) Export(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	cycleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	data, err := h.service.Export(actor, cycleID)
	if err != nil {
		respondError(c, err, "Failed to export analytics")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="review-cycle-%s.xlsx"`, cycleID))
	c.Data(http.StatusOK, xlsxContentType, data)
}
