package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganisationHandler handles HTTP requests for organisations
type OrganisationHandler struct {
	service service.OrganisationServiceInterface
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(service service.OrganisationServiceInterface) *OrganisationHandler {
	return &OrganisationHandler{service: service}
}

// Onboard handles POST /api/v1/organisations/onboard
// @Summary Onboard a new organisation
// @Description Create an organisation with its system roles, default KRAs and first administrator
// @Tags organisation
// @Accept json
// @Produce json
// @Param organisation body service.OnboardOrganisationRequest true "Organisation and administrator"
// @Success 201 {object} service.OnboardResponse "Organisation onboarded"
// @Failure 400 {object} ErrorResponse "Invalid request or organisation already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organisations/onboard [post]
func (h *OrganisationHandler) Onboard(c *gin.Context) {
	var req service.OnboardOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.service.Onboard(&req)
	if err != nil {
		respondError(c, err, "Failed to onboard organisation")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/v1/organisation
// @Summary Get the caller's organisation
// @Tags organisation
// @Produce json
// @Success 200 {object} service.OrganisationResponse
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Security BearerAuth
// @Router /organisation [get]
func (h *OrganisationHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	org, err := h.service.Get(actor)
	if err != nil {
		respondError(c, err, "Failed to get organisation")
		return
	}
	c.JSON(http.StatusOK, org)
}

// Update handles PUT /api/v1/organisation
// @Summary Update organisation settings
// @Tags organisation
// @Accept json
// @Produce json
// @Param organisation body service.UpdateOrganisationRequest true "Organisation settings"
// @Success 200 {object} service.OrganisationResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /organisation [put]
func (h *OrganisationHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.UpdateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	org, err := h.service.Update(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to update organisation")
		return
	}
	c.JSON(http.StatusOK, org)
}
