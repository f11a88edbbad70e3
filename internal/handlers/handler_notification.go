package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvc
}

func registerNotificationRoutes(rg *gin.RouterGroup, ns portssvc.NotificationSvc) {
	h := &notificationHandler{notificationService: ns}

	notifications := rg.Group("/notifications")
	{
		notifications.POST("", h.send)
		notifications.GET("", h.listOwn)
		notifications.PUT("/:id/read", h.markRead)
	}
}

// send godoc
// @Summary Send a notification
// @Description Administrators address a message to one account
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body dto.SendNotificationRequest true "Message"
// @Success 201 {object} domain.Notification
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Target account not found"
// @Security BearerAuth
// @Router /notifications [post]
func (h *notificationHandler) send(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SendNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	n, err := h.notificationService.Send(c.Request.Context(), actorID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to send notification")
		return
	}
	c.JSON(http.StatusCreated, n)
}

// listOwn godoc
// @Summary List own notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listOwn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	resp, err := h.notificationService.ListOwn(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// markRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} map[string]string "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	if err := h.notificationService.MarkRead(c.Request.Context(), accountID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}
