package handlers

import (
	"net/http"

	"performance-backend/internal/database/models"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler handles HTTP requests for suggestions
type SuggestionHandler struct {
	service service.SuggestionServiceInterface
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(service service.SuggestionServiceInterface) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

// CreateSuggestion handles POST /api/v1/suggestions
// @Summary Create a suggestion, as a draft or submitted
// @Tags suggestions
// @Accept json
// @Produce json
// @Param suggestion body service.SuggestionRequest true "Suggestion"
// @Success 201 {object} service.SuggestionResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /suggestions [post]
func (h *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	suggestion, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create suggestion")
		return
	}
	c.JSON(http.StatusCreated, suggestion)
}

// UpdateSuggestion handles PUT /api/v1/suggestions/:id
// @Summary Edit a draft suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID (UUID)"
// @Param suggestion body service.SuggestionRequest true "Suggestion"
// @Success 200 {object} service.SuggestionResponse
// @Failure 400 {object} ErrorResponse "Suggestion already submitted"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /suggestions/{id} [put]
func (h *SuggestionHandler) UpdateSuggestion(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	suggestion, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update suggestion")
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// ListMySuggestions handles GET /api/v1/suggestions/mine
func (h *SuggestionHandler) ListMySuggestions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.ListMine(actor, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list suggestions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListReceivedSuggestions handles GET /api/v1/suggestions/received
// @Summary List submitted suggestions of the organisation
// @Description Anonymous authors are hidden
// @Tags suggestions
// @Produce json
// @Param progress query string false "pending, in_progress, completed or deferred"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.SuggestionResponse]
// @Security BearerAuth
// @Router /suggestions/received [get]
func (h *SuggestionHandler) ListReceivedSuggestions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.ListReceived(actor, models.SuggestionProgress(c.Query("progress")), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list received suggestions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSuggestionProgress handles PATCH /api/v1/suggestions/:id/progress
// @Summary Move a received suggestion along with a comment
// @Tags suggestions
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID (UUID)"
// @Param progress body service.SuggestionProgressRequest true "Progress and comment"
// @Success 200 {object} service.SuggestionResponse
// @Failure 400 {object} ErrorResponse "Draft or completed suggestion"
// @Failure 404 {object} ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /suggestions/{id}/progress [patch]
func (h *SuggestionHandler) UpdateSuggestionProgress(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.SuggestionProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	suggestion, err := h.service.UpdateProgress(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update suggestion progress")
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// ListSuggestionComments handles GET /api/v1/suggestions/:id/comments
func (h *SuggestionHandler) ListSuggestionComments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	comments, err := h.service.ListComments(actor, id)
	if err != nil {
		respondError(c, err, "Failed to list suggestion comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}
