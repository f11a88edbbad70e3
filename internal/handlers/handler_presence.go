package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

type presenceHandler struct {
	presenceService   portssvc.PresenceSvc
	permissionService portssvc.PermissionSvc
}

func registerPresenceRoutes(rg *gin.RouterGroup, ps portssvc.PresenceSvc, perms portssvc.PermissionSvc) {
	h := &presenceHandler{presenceService: ps, permissionService: perms}
	rg.GET("/presence", h.listPresence)
}

// listPresence godoc
// @Summary Online presence
// @Description Administrators see every account; members only themselves
// @Tags presence
// @Produce json
// @Success 200 {object} map[string]domain.Presence
// @Security BearerAuth
// @Router /presence [get]
func (h *presenceHandler) listPresence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	viewer, _, err := h.permissionService.MatrixFor(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve viewer")
		return
	}
	snapshot, err := h.presenceService.Snapshot(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, logger, err, "Failed to read presence")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
