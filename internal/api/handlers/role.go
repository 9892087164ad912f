package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleHandler handles HTTP requests for roles and their module permissions
type RoleHandler struct {
	service service.RoleServiceInterface
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(service service.RoleServiceInterface) *RoleHandler {
	return &RoleHandler{service: service}
}

// CreateRole handles POST /api/v1/roles
// @Summary Create role
// @Description Create a role with module permissions. Edit implies view.
// @Tags roles
// @Accept json
// @Produce json
// @Param role body service.RoleRequest true "Role data"
// @Success 201 {object} service.RoleResponse
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Security BearerAuth
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	role, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create role")
		return
	}
	c.JSON(http.StatusCreated, role)
}

// GetRole handles GET /api/v1/roles/:id
// @Summary Get role by ID
// @Tags roles
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Success 200 {object} service.RoleResponse
// @Failure 404 {object} ErrorResponse "Role not found"
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	role, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get role")
		return
	}
	c.JSON(http.StatusOK, role)
}

// ListRoles handles GET /api/v1/roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.List(actor, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list roles")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRole handles PUT /api/v1/roles/:id
// @Summary Update role
// @Description The Org Admin role cannot be changed
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Param role body service.RoleRequest true "Role data"
// @Success 200 {object} service.RoleResponse
// @Failure 400 {object} ErrorResponse "Invalid request or immutable role"
// @Security BearerAuth
// @Router /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	role, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, role)
}
