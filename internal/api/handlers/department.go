package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for departments
type DepartmentHandler struct {
	service service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(service service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// CreateDepartments handles POST /api/v1/departments
// @Summary Create departments
// @Description Create one or more departments atomically
// @Tags departments
// @Accept json
// @Produce json
// @Param departments body service.CreateDepartmentsRequest true "Departments to create"
// @Success 201 {array} service.DepartmentResponse
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.CreateDepartmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	departments, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create departments")
		return
	}
	c.JSON(http.StatusCreated, departments)
}

// GetDepartment handles GET /api/v1/departments/:id
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} service.DepartmentResponse
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	department, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get department")
		return
	}
	c.JSON(http.StatusOK, department)
}

// ListDepartments handles GET /api/v1/departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Param search query string false "Name or display id filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.DepartmentResponse]
// @Security BearerAuth
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.List(actor, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateDepartment handles PUT /api/v1/departments/:id
// @Summary Update department
// @Description Unpublishing cascades to the department's teams and designations
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} service.DepartmentResponse
// @Failure 400 {object} ErrorResponse "Invalid request or active employees linked"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	department, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update department")
		return
	}
	c.JSON(http.StatusOK, department)
}
