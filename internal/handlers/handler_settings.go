package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	policyService portssvc.PolicySvc
}

func registerSettingsRoutes(rg *gin.RouterGroup, ps portssvc.PolicySvc) {
	h := &settingsHandler{policyService: ps}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get global settings
// @Description Returns the complete global policy with defaults filled in
// @Tags settings
// @Produce json
// @Success 200 {object} domain.GlobalPolicy
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	policy, err := h.policyService.GetPolicy(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, policy)
}

// updateSettings godoc
// @Summary Update global settings
// @Description Merges the supplied fields into the stored policy; absent fields are left untouched
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Partial settings"
// @Success 200 {object} domain.GlobalPolicy
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	policy, err := h.policyService.UpdatePolicy(c.Request.Context(), req.ToPolicyPatch(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to update settings")
		return
	}
	logger.Info("Settings updated")
	c.JSON(http.StatusOK, policy)
}
