package handlers

import (
	"net/http"

	"performance-backend/internal/database/models"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for self reviews, manager reviews and check-ins
type ReviewHandler struct {
	service service.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// SubmitSelfReview handles POST /api/v1/reviews/self
// @Summary Submit or save the actor's self review
// @Description Allowed only while the self review window of the active cycle is open
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body service.SubmitReviewRequest true "Self review"
// @Success 200 {object} service.ReviewResponse
// @Failure 400 {object} ErrorResponse "Window closed, already published or invalid ratings"
// @Security BearerAuth
// @Router /reviews/self [post]
func (h *ReviewHandler) SubmitSelfReview(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	review, err := h.service.SubmitSelfReview(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to submit self review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// SubmitManagerReview handles POST /api/v1/reviews/manager
// @Summary Submit or save a manager review of a reportee
// @Description The review type (first or second manager) follows the manager mapping
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body service.SubmitReviewRequest true "Manager review"
// @Success 200 {object} service.ReviewResponse
// @Failure 400 {object} ErrorResponse "Window closed, already published or invalid ratings"
// @Failure 403 {object} ErrorResponse "Not a manager of the reviewee"
// @Security BearerAuth
// @Router /reviews/manager [post]
func (h *ReviewHandler) SubmitManagerReview(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	review, err := h.service.SubmitManagerReview(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to submit manager review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// SubmitCheckIn handles POST /api/v1/reviews/check-in
// @Summary Submit or save a check-in with a reportee
// @Description Goals are created when the check-in is published
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body service.SubmitCheckInRequest true "Check-in with agreed goals"
// @Success 200 {object} service.ReviewResponse
// @Failure 400 {object} ErrorResponse "Window closed, already published or invalid ratings"
// @Failure 403 {object} ErrorResponse "Not the first manager of the reviewee"
// @Security BearerAuth
// @Router /reviews/check-in [post]
func (h *ReviewHandler) SubmitCheckIn(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.SubmitCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	review, err := h.service.SubmitCheckIn(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to submit check-in")
		return
	}
	c.JSON(http.StatusOK, review)
}

// GetReview handles GET /api/v1/reviews
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param review_cycle_id query string true "Review cycle ID (UUID)"
// @Param review_to_id query string true "Reviewee ID (UUID)"
// @Param review_type query string true "self, first_manager, second_manager or check_in"
// @Success 200 {object} service.ReviewResponse
// @Failure 403 {object} ErrorResponse "Not allowed to view this review"
// @Failure 404 {object} ErrorResponse "Review not found"
// @Security BearerAuth
// @Router /reviews [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	cycleID, ok := queryUUID(c, "review_cycle_id")
	if !ok {
		return
	}
	reviewToID, ok := queryUUID(c, "review_to_id")
	if !ok {
		return
	}
	if cycleID == nil || reviewToID == nil {
		badRequest(c, "review_cycle_id and review_to_id are required", nil)
		return
	}

	review, err := h.service.Get(actor, *cycleID, *reviewToID, models.ReviewType(c.Query("review_type")))
	if err != nil {
		respondError(c, err, "Failed to get review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// TeamStatus handles GET /api/v1/review-cycles/:id/team-status
// @Summary Review progress of the actor's reportees in a cycle
// @Tags reviews
// @Produce json
// @Param id path string true "Review cycle ID (UUID)"
// @Success 200 {array} service.TeamReviewStatus
// @Failure 404 {object} ErrorResponse "Review cycle not found"
// @Security BearerAuth
// @Router /review-cycles/{id}/team-status [get]
func (h *ReviewHandler) TeamStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	cycleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	statuses, err := h.service.TeamStatus(actor, cycleID)
	if err != nil {
		respondError(c, err, "Failed to get team review status")
		return
	}
	c.JSON(http.StatusOK, statuses)
}
