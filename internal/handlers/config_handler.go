package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.florafauna/internal/catalog"
	settingsmodels "io.winapps.florafauna/internal/models/update_settings"
	"io.winapps.florafauna/internal/render"
	"io.winapps.florafauna/internal/settings"
)

const incompleteCredentialsMessage = "Please enter both URL and key"

// ShowConfig handles the configuration prompt page
func (h *CatalogHandler) ShowConfig(c *gin.Context) {
	c.HTML(http.StatusOK, "config.tmpl", render.ConfigPage{Status: h.catalog.Snapshot().Status})
}

// SubmitConfig handles the configuration form: save, connect and reload,
// then back to the grid
func (h *CatalogHandler) SubmitConfig(c *gin.Context) {
	var req settingsmodels.UpdateSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderConfigError(c, http.StatusBadRequest, req.EndpointURL, "Invalid request format")
		return
	}

	status, msg := h.configure(c, req)
	if status != http.StatusOK {
		h.renderConfigError(c, status, req.EndpointURL, msg)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// UpdateConfig handles saving credentials through the JSON API
func (h *CatalogHandler) UpdateConfig(c *gin.Context) {
	var req settingsmodels.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	status, msg := h.configure(c, req)
	if status != http.StatusOK {
		c.JSON(status, gin.H{"error": msg})
		return
	}

	state := h.catalog.Snapshot()
	c.JSON(http.StatusOK, settingsmodels.UpdateSettingsResponse{
		Success: true,
		Message: "Settings saved",
		Status:  string(state.Status),
		Phase:   string(state.Phase),
	})
}

// configure returns the HTTP status and user-facing message for a save
func (h *CatalogHandler) configure(c *gin.Context, req settingsmodels.UpdateSettingsRequest) (int, string) {
	err := h.catalog.Configure(c.Request.Context(), settings.Credentials{
		EndpointURL: req.EndpointURL,
		AccessKey:   req.AccessKey,
	})
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.Is(err, settings.ErrIncomplete):
		return http.StatusBadRequest, incompleteCredentialsMessage
	case errors.Is(err, catalog.ErrConnect):
		h.logError(c, err, "remote store rejected new credentials", "endpoint", req.EndpointURL)
		return http.StatusBadGateway, h.catalog.Snapshot().Message
	default:
		h.logError(c, err, "failed to save settings")
		return http.StatusInternalServerError, "Failed to save settings"
	}
}

func (h *CatalogHandler) renderConfigError(c *gin.Context, status int, endpoint, msg string) {
	c.HTML(status, "config.tmpl", render.ConfigPage{
		EndpointURL: endpoint,
		Error:       msg,
		Status:      h.catalog.Snapshot().Status,
	})
}
