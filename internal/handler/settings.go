package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"launchsim/internal/service"
)

type SettingsHandler struct {
	Settings *service.SystemSettingsService
}

func (h *SettingsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/settings/features")
	g.GET("", h.listSwitches)
	g.GET("/:key", h.getSwitch)
	g.PUT("/:key", h.putSwitch)
}

// @Summary List feature switches
// @Tags settings
// @Success 200 {object} apiResponse
// @Router /api/v1/settings/features [get]
func (h *SettingsHandler) listSwitches(c *gin.Context) {
	if h.Settings == nil {
		Error(c, http.StatusInternalServerError, "settings service unavailable", nil)
		return
	}
	items, err := h.Settings.ListSwitches(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Get one feature switch
// @Tags settings
// @Param key path string true "switch key, with or without the feature. prefix"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/v1/settings/features/{key} [get]
func (h *SettingsHandler) getSwitch(c *gin.Context) {
	if h.Settings == nil {
		Error(c, http.StatusInternalServerError, "settings service unavailable", nil)
		return
	}
	key, ok := switchKey(c.Param("key"))
	if !ok {
		Error(c, http.StatusNotFound, "unknown switch", nil)
		return
	}
	enabled := h.Settings.IsEnabled(c.Request.Context(), key, service.DefaultFeatureSwitches()[key])
	Ok(c, map[string]any{"key": key, "enabled": enabled}, nil)
}

type putSwitchRequest struct {
	Enabled *bool `json:"enabled"`
}

// @Summary Turn a feature switch on or off
// @Tags settings
// @Accept json
// @Param key path string true "switch key"
// @Param body body putSwitchRequest true "state"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/v1/settings/features/{key} [put]
func (h *SettingsHandler) putSwitch(c *gin.Context) {
	if h.Settings == nil {
		Error(c, http.StatusInternalServerError, "settings service unavailable", nil)
		return
	}
	key, ok := switchKey(c.Param("key"))
	if !ok {
		Error(c, http.StatusNotFound, "unknown switch", nil)
		return
	}
	var req putSwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if err := h.Settings.SetEnabled(c.Request.Context(), key, *req.Enabled); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, map[string]any{"key": key, "enabled": *req.Enabled}, nil)
}

func switchKey(raw string) (string, bool) {
	key := strings.TrimSpace(raw)
	if !strings.HasPrefix(key, "feature.") {
		key = "feature." + key
	}
	return key, service.IsKnownFeature(key)
}
