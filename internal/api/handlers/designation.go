package handlers

import (
	"net/http"

	"performance-backend/internal/repository"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DesignationHandler handles HTTP requests for designations
type DesignationHandler struct {
	service service.DesignationServiceInterface
}

// NewDesignationHandler creates a new designation handler
func NewDesignationHandler(service service.DesignationServiceInterface) *DesignationHandler {
	return &DesignationHandler{service: service}
}

// CreateDesignations handles POST /api/v1/designations
// @Summary Create designations
// @Tags designations
// @Accept json
// @Produce json
// @Param designations body service.CreateDesignationsRequest true "Designations to create"
// @Success 201 {array} service.DesignationResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /designations [post]
func (h *DesignationHandler) CreateDesignations(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.CreateDesignationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	designations, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create designations")
		return
	}
	c.JSON(http.StatusCreated, designations)
}

// GetDesignation handles GET /api/v1/designations/:id
func (h *DesignationHandler) GetDesignation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	designation, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get designation")
		return
	}
	c.JSON(http.StatusOK, designation)
}

// ListDesignations handles GET /api/v1/designations
// @Summary List designations
// @Tags designations
// @Produce json
// @Param department_id query string false "Department ID (UUID)"
// @Param team_id query string false "Team ID (UUID)"
// @Param search query string false "Name or display id filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.DesignationResponse]
// @Security BearerAuth
// @Router /designations [get]
func (h *DesignationHandler) ListDesignations(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	departmentID, ok := queryUUID(c, "department_id")
	if !ok {
		return
	}
	teamID, ok := queryUUID(c, "team_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	filter := repository.HierarchyFilter{DepartmentID: departmentID, TeamID: teamID, Search: c.Query("search")}
	resp, err := h.service.List(actor, filter, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list designations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateDesignation handles PUT /api/v1/designations/:id
func (h *DesignationHandler) UpdateDesignation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateDesignationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	designation, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update designation")
		return
	}
	c.JSON(http.StatusOK, designation)
}
