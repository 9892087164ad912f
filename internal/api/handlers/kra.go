package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// KRAHandler handles HTTP requests for KRAs and their weightages
type KRAHandler struct {
	service service.KRAServiceInterface
}

// NewKRAHandler creates a new KRA handler
func NewKRAHandler(service service.KRAServiceInterface) *KRAHandler {
	return &KRAHandler{service: service}
}

// ListKRAs handles GET /api/v1/kras
// @Summary List KRAs with their current weightage
// @Tags kras
// @Produce json
// @Success 200 {array} service.KRAResponse
// @Security BearerAuth
// @Router /kras [get]
func (h *KRAHandler) ListKRAs(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	kras, err := h.service.List(actor)
	if err != nil {
		respondError(c, err, "Failed to list KRAs")
		return
	}
	c.JSON(http.StatusOK, kras)
}

// CreateKRA handles POST /api/v1/kras
// @Summary Create KRA
// @Description The new KRA joins the current weightage version with weightage 0
// @Tags kras
// @Accept json
// @Produce json
// @Param kra body service.CreateKRARequest true "KRA data"
// @Success 201 {object} service.KRAResponse
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Security BearerAuth
// @Router /kras [post]
func (h *KRAHandler) CreateKRA(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.CreateKRARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	kra, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create KRA")
		return
	}
	c.JSON(http.StatusCreated, kra)
}

// UpdateWeightages handles PUT /api/v1/kras/weightages
// @Summary Replace KRA weightages
// @Description Every KRA exactly once, summing to 100. Writes a new weightage version valid from today.
// @Tags kras
// @Accept json
// @Produce json
// @Param weightages body service.UpdateWeightagesRequest true "Weightage of every KRA"
// @Success 200 {array} service.KRAResponse
// @Failure 400 {object} ErrorResponse "Invalid weightages or review cycle in progress"
// @Security BearerAuth
// @Router /kras/weightages [put]
func (h *KRAHandler) UpdateWeightages(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.UpdateWeightagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	kras, err := h.service.UpdateWeightages(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to update KRA weightages")
		return
	}
	c.JSON(http.StatusOK, kras)
}
