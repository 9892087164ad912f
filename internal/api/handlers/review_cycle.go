package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewCycleHandler handles HTTP requests for review cycles
type ReviewCycleHandler struct {
	service service.ReviewCycleServiceInterface
}

// NewReviewCycleHandler creates a new review cycle handler
func NewReviewCycleHandler(service service.ReviewCycleServiceInterface) *ReviewCycleHandler {
	return &ReviewCycleHandler{service: service}
}

// CreateReviewCycle handles POST /api/v1/review-cycles
// @Summary Create review cycle
// @Description Dates are civil dates (YYYY-MM-DD) in the organisation's time zone
// @Tags review-cycles
// @Accept json
// @Produce json
// @Param cycle body service.ReviewCycleRequest true "Review cycle timeline"
// @Success 201 {object} service.ReviewCycleResponse
// @Failure 400 {object} ErrorResponse "Invalid timeline, overlap or another active cycle"
// @Security BearerAuth
// @Router /review-cycles [post]
func (h *ReviewCycleHandler) CreateReviewCycle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.ReviewCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	cycle, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create review cycle")
		return
	}
	c.JSON(http.StatusCreated, cycle)
}

// UpdateReviewCycle handles PUT /api/v1/review-cycles/:id
// @Summary Update review cycle
// @Description The start date is frozen once the cycle has started
// @Tags review-cycles
// @Accept json
// @Produce json
// @Param id path string true "Review cycle ID (UUID)"
// @Param cycle body service.ReviewCycleRequest true "Review cycle timeline"
// @Success 200 {object} service.ReviewCycleResponse
// @Failure 400 {object} ErrorResponse "Invalid timeline"
// @Failure 404 {object} ErrorResponse "Review cycle not found"
// @Security BearerAuth
// @Router /review-cycles/{id} [put]
func (h *ReviewCycleHandler) UpdateReviewCycle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.ReviewCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	cycle, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update review cycle")
		return
	}
	c.JSON(http.StatusOK, cycle)
}

// GetReviewCycle handles GET /api/v1/review-cycles/:id
func (h *ReviewCycleHandler) GetReviewCycle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	cycle, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get review cycle")
		return
	}
	c.JSON(http.StatusOK, cycle)
}

// ListReviewCycles handles GET /api/v1/review-cycles
func (h *ReviewCycleHandler) ListReviewCycles(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.List(actor, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list review cycles")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetActiveReviewCycle handles GET /api/v1/review-cycles/active
// @Summary Get the active review cycle
// @Description Returns the published cycle covering today in the organisation's time zone, with phase flags
// @Tags review-cycles
// @Produce json
// @Success 200 {object} service.ActiveReviewCycleResponse
// @Failure 404 {object} ErrorResponse "No active review cycle"
// @Security BearerAuth
// @Router /review-cycles/active [get]
func (h *ReviewCycleHandler) GetActiveReviewCycle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	cycle, err := h.service.GetActive(actor)
	if err != nil {
		respondError(c, err, "Failed to get active review cycle")
		return
	}
	c.JSON(http.StatusOK, cycle)
}
