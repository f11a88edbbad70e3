package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error onto an HTTP status. Client errors keep their message,
// server errors are replaced by the caller's fallback text.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrBalanceChanged):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": ...} with the mapped status and logs it at a level
// matching the status.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		if status == http.StatusInternalServerError {
			msg = fallback
		} else {
			msg = "Service temporarily unavailable"
		}
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": msg})
}

// callerID reads the authenticated account or aborts with 401.
func callerID(c *gin.Context, logger *slog.Logger) (string, bool) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return accountID, true
}
