package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeams handles POST /api/v1/teams
// @Summary Create teams
// @Description Create one or more teams atomically
// @Tags teams
// @Accept json
// @Produce json
// @Param teams body service.CreateTeamsRequest true "Teams to create"
// @Success 201 {array} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid request, duplicate name or unpublished department"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeams(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.CreateTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	teams, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create teams")
		return
	}
	c.JSON(http.StatusCreated, teams)
}

// GetTeam handles GET /api/v1/teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	team, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get team")
		return
	}
	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /api/v1/teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Param department_id query string false "Department ID (UUID)"
// @Param search query string false "Name or display id filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.TeamResponse]
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	departmentID, ok := queryUUID(c, "department_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.List(actor, departmentID, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list teams")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateTeam handles PUT /api/v1/teams/:id
// @Summary Update team
// @Description Unpublishing cascades to the team's designations
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	team, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update team")
		return
	}
	c.JSON(http.StatusOK, team)
}
