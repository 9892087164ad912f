package handlers

import (
	"net/http"
	"strconv"

	"performance-backend/internal/repository"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	service service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// EmployeeStatusRequest activates or deactivates an employee
type EmployeeStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// CreateEmployee handles POST /api/v1/employees
// @Summary Create employee
// @Description Create an employee with role, hierarchy placement and managers
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.EmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid request, duplicate email or code, or inconsistent hierarchy"
// @Failure 404 {object} ErrorResponse "Referenced entity not found"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	employee, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /api/v1/employees/:id
// @Summary Update employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.EmployeeRequest true "Employee data"
// @Success 200 {object} service.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	employee, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// SetEmployeeStatus handles PATCH /api/v1/employees/:id/status
// @Summary Activate or deactivate an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param status body EmployeeStatusRequest true "New status"
// @Success 200 {object} service.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Self deactivation or employee still manages others"
// @Security BearerAuth
// @Router /employees/{id}/status [patch]
func (h *EmployeeHandler) SetEmployeeStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req EmployeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	employee, err := h.service.SetStatus(actor, id, *req.IsActive)
	if err != nil {
		respondError(c, err, "Failed to change employee status")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// GetEmployee handles GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	employee, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /api/v1/employees
// @Summary List employees
// @Tags employees
// @Produce json
// @Param search query string false "Name, email or code filter"
// @Param role_id query string false "Role ID (UUID)"
// @Param department_id query string false "Department ID (UUID)"
// @Param team_id query string false "Team ID (UUID)"
// @Param designation_id query string false "Designation ID (UUID)"
// @Param is_active query bool false "Only active or inactive employees"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.EmployeeResponse]
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	filter := repository.EmployeeFilter{Search: c.Query("search")}
	if filter.RoleID, ok = queryUUID(c, "role_id"); !ok {
		return
	}
	if filter.DepartmentID, ok = queryUUID(c, "department_id"); !ok {
		return
	}
	if filter.TeamID, ok = queryUUID(c, "team_id"); !ok {
		return
	}
	if filter.DesignationID, ok = queryUUID(c, "designation_id"); !ok {
		return
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "Invalid is_active: must be true or false", nil)
			return
		}
		filter.IsActive = &active
	}
	page, pageSize := pagination(c)

	resp, err := h.service.List(actor, service.EmployeeListRequest{EmployeeFilter: filter, Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetReportees handles GET /api/v1/employees/reportees
// @Summary List the caller's active reportees
// @Tags employees
// @Produce json
// @Success 200 {array} service.EmployeeResponse
// @Security BearerAuth
// @Router /employees/reportees [get]
func (h *EmployeeHandler) GetReportees(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	reportees, err := h.service.GetReportees(actor)
	if err != nil {
		respondError(c, err, "Failed to get reportees")
		return
	}
	c.JSON(http.StatusOK, reportees)
}
