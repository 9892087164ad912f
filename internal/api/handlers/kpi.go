package handlers

import (
	"net/http"

	"performance-backend/internal/database/models"
	"performance-backend/internal/repository"
	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// KPIHandler handles HTTP requests for KPIs
type KPIHandler struct {
	service service.KPIServiceInterface
}

// NewKPIHandler creates a new KPI handler
func NewKPIHandler(service service.KPIServiceInterface) *KPIHandler {
	return &KPIHandler{service: service}
}

// CreateKPI handles POST /api/v1/kpis
// @Summary Create KPI
// @Tags kpis
// @Accept json
// @Produce json
// @Param kpi body service.KPIRequest true "KPI with its hierarchy mappings"
// @Success 201 {object} service.KPIResponse
// @Failure 400 {object} ErrorResponse "Invalid request or inconsistent mapping"
// @Failure 404 {object} ErrorResponse "KRA not found"
// @Security BearerAuth
// @Router /kpis [post]
func (h *KPIHandler) CreateKPI(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.KPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	kpi, err := h.service.Create(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create KPI")
		return
	}
	c.JSON(http.StatusCreated, kpi)
}

// UpdateKPI handles PUT /api/v1/kpis/:id
// @Summary Update KPI
// @Description A status-only change is applied in place; any other change creates a new version
// @Tags kpis
// @Accept json
// @Produce json
// @Param id path string true "KPI version ID (UUID)"
// @Param kpi body service.KPIRequest true "KPI data"
// @Success 200 {object} service.KPIResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "KPI not found"
// @Security BearerAuth
// @Router /kpis/{id} [put]
func (h *KPIHandler) UpdateKPI(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.KPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	kpi, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update KPI")
		return
	}
	c.JSON(http.StatusOK, kpi)
}

// GetKPI handles GET /api/v1/kpis/:id
func (h *KPIHandler) GetKPI(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	kpi, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "Failed to get KPI")
		return
	}
	c.JSON(http.StatusOK, kpi)
}

// ListKPIs handles GET /api/v1/kpis
// @Summary List the latest version of each KPI
// @Tags kpis
// @Produce json
// @Param search query string false "Title or display id filter"
// @Param kra_id query string false "KRA ID (UUID)"
// @Param status query string false "published or unpublished"
// @Param department_id query string false "Department ID (UUID)"
// @Param team_id query string false "Team ID (UUID)"
// @Param designation_id query string false "Designation ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PagedResponse[service.KPIResponse]
// @Security BearerAuth
// @Router /kpis [get]
func (h *KPIHandler) ListKPIs(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	filter := repository.KPIFilter{Search: c.Query("search"), Status: models.KPIStatus(c.Query("status"))}
	if filter.KRAID, ok = queryUUID(c, "kra_id"); !ok {
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
	page, pageSize := pagination(c)

	resp, err := h.service.List(actor, service.KPIListRequest{KPIFilter: filter, Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, err, "Failed to list KPIs")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEmployeeKPIs handles GET /api/v1/employees/:id/kpis
// @Summary KPIs applicable to an employee
// @Tags kpis
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {array} service.KPIResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/kpis [get]
func (h *KPIHandler) ListEmployeeKPIs(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	kpis, err := h.service.ListForEmployee(actor, id)
	if err != nil {
		respondError(c, err, "Failed to list employee KPIs")
		return
	}
	c.JSON(http.StatusOK, kpis)
}
