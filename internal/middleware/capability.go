package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireCapability resolves the caller's capabilities against the live account and policy
// and aborts with 403 unless c is granted. It must run after AuthMiddleware.
func RequireCapability(perms portssvc.PermissionSvc, c domain.Capability) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := GetLoggerFromCtx(ctx.Request.Context())
		accountID, ok := GetAccountIDFromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		_, _, err := perms.Require(ctx.Request.Context(), accountID, c)
		switch {
		case err == nil:
			ctx.Next()
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Capability denied", slog.String("capability", string(c)))
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrNotFound):
			// the token outlived its account
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		default:
			logger.Error("Failed to resolve capabilities", slog.String("error", err.Error()))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve permissions"})
		}
	}
}
