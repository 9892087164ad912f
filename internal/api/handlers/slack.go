package handlers

import (
	"net/http"

	"performance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SlackHandler handles the Slack integration: installation from the app and callbacks from Slack
type SlackHandler struct {
	service service.SlackServiceInterface
}

// NewSlackHandler creates a new Slack handler
func NewSlackHandler(service service.SlackServiceInterface) *SlackHandler {
	return &SlackHandler{service: service}
}

// InstallURL handles GET /api/v1/integrations/slack/install
// @Summary Get the Slack authorisation URL
// @Tags integrations
// @Produce json
// @Success 200 {object} service.SlackInstallResponse
// @Failure 503 {object} ErrorResponse "Slack is not configured"
// @Security BearerAuth
// @Router /integrations/slack/install [get]
func (h *SlackHandler) InstallURL(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	resp, err := h.service.InstallURL(actor)
	if err != nil {
		respondError(c, err, "Failed to build Slack install URL")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OAuthCallback handles GET /api/slack/oauth/callback
// @Summary Complete the Slack installation
// @Description Called by Slack after the user approves the app; the state identifies the organisation
// @Tags integrations
// @Produce json
// @Param code query string true "OAuth code"
// @Param state query string true "Signed install state"
// @Success 200 {object} service.SlackStatusResponse
// @Failure 401 {object} ErrorResponse "Invalid or expired state"
// @Router /slack/oauth/callback [get]
func (h *SlackHandler) OAuthCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		badRequest(c, "Slack installation was not approved", nil)
		return
	}
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		badRequest(c, "code and state are required", nil)
		return
	}

	resp, err := h.service.CompleteInstall(c.Request.Context(), code, state)
	if err != nil {
		respondError(c, err, "Failed to complete Slack installation")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Status handles GET /api/v1/integrations/slack
func (h *SlackHandler) Status(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	resp, err := h.service.Status(actor)
	if err != nil {
		respondError(c, err, "Failed to get Slack status")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Disconnect handles DELETE /api/v1/integrations/slack
// @Summary Remove the organisation's Slack installation
// @Tags integrations
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Slack is not connected"
// @Security BearerAuth
// @Router /integrations/slack [delete]
func (h *SlackHandler) Disconnect(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if err := h.service.Disconnect(actor); err != nil {
		respondError(c, err, "Failed to disconnect Slack")
		return
	}
	c.Status(http.StatusNoContent)
}

// Events handles POST /api/slack/events
func (h *SlackHandler) Events(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Failed to read request body", err)
		return
	}

	resp, err := h.service.HandleEvent(c.Request.Context(), c.Request.Header, body)
	if err != nil {
		respondError(c, err, "Failed to handle Slack event")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Commands handles POST /api/slack/commands. Slack shows the reply only to the caller.
func (h *SlackHandler) Commands(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Failed to read request body", err)
		return
	}

	text, err := h.service.HandleCommand(c.Request.Context(), c.Request.Header, body)
	if err != nil {
		respondError(c, err, "Failed to handle Slack command")
		return
	}
	c.JSON(http.StatusOK, gin.H{"response_type": "ephemeral", "text": text})
}
