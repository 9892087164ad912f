package handlers

import (
	"net/http"
	"strconv"

	"performance-backend/internal/database/models"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles HTTP requests for goals
type GoalHandler struct {
	service service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(service service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{service: service}
}

// CreateGoal handles POST /api/v1/goals
// @Summary Assign a goal to a reportee
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.CreateGoalRequest true "Goal data"
// @Success 201 {object} service.GoalResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a manager of the assignee"
// @Security BearerAuth
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	goal, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// UpdateGoalProgress handles PATCH /api/v1/goals/:id/progress
// @Summary Move a goal along
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param progress body service.UpdateGoalProgressRequest true "New progress"
// @Success 200 {object} service.GoalResponse
// @Failure 403 {object} ErrorResponse "Neither assignee nor creator"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/{id}/progress [patch]
func (h *GoalHandler) UpdateGoalProgress(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	goal, err := h.service.UpdateProgress(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update goal progress")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// ListGoals handles GET /api/v1/goals
// @Summary List goals
// @Description Without employee_id or reportees the actor's own goals are listed
// @Tags goals
// @Produce json
// @Param employee_id query string false "Reportee ID (UUID)"
// @Param reportees query bool false "All reportees of the actor"
// @Param review_cycle_id query string false "Review cycle ID (UUID)"
// @Param progress query string false "todo, in_progress, completed or deferred"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.GoalResponse]
// @Security BearerAuth
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	req := service.GoalListRequest{Progress: models.GoalProgress(c.Query("progress"))}
	if req.EmployeeID, ok = queryUUID(c, "employee_id"); !ok {
		return
	}
	if req.ReviewCycleID, ok = queryUUID(c, "review_cycle_id"); !ok {
		return
	}
	if raw := c.Query("reportees"); raw != "" {
		reportees, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "Invalid reportees: must be a boolean", nil)
			return
		}
		req.Reportees = reportees
	}
	req.Page, req.PageSize = pagination(c)

	resp, err := h.service.List(actor, req)
	if err != nil {
		respondError(c, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, resp)
}
