package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/SscSPs/fieldops_console/internal/platform/config"
	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/gin-gonic/gin"
)

// Deps are the process-wide collaborators the routes need besides the services.
type Deps struct {
	Hub     *realtime.Hub
	Metrics *metrics.Metrics
	Posthog *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Deps,
) error {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	loginLimiter, err := middleware.NewLoginLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}

	public := r.Group("/api/v1")
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(deps.Posthog),
	)

	// Delegate route registration to specific handlers, passing required services
	registerAuthRoutes(public, v1, services.Auth, services.Permission, middleware.RateLimit(loginLimiter))
	registerLiveRoutes(v1, deps.Hub, services, cfg.CORSAllowedOrigins)
	registerSettingsRoutes(v1, services.Policy)
	RegisterAccountRoutes(v1, services.Account, services.Permission)
	registerPresenceRoutes(v1, services.Presence, services.Permission)
	registerLeaveRoutes(v1, services.Ledger, deps.Posthog)
	registerRecordRoutes(v1, services.Record)
	registerNotificationRoutes(v1, services.Notification)
	registerMarketRoutes(v1, services.Market, deps.Posthog)
	return nil
}
