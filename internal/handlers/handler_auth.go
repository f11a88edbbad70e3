package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, logout and the caller's identity snapshot.
type authHandler struct {
	authService       portssvc.AuthSvc
	permissionService portssvc.PermissionSvc
}

func newAuthHandler(as portssvc.AuthSvc, ps portssvc.PermissionSvc) *authHandler {
	return &authHandler{authService: as, permissionService: ps}
}

// registerAuthRoutes registers the public login route behind loginGuards and the
// authenticated logout and me routes.
func registerAuthRoutes(public, protected *gin.RouterGroup, as portssvc.AuthSvc, ps portssvc.PermissionSvc, loginGuards ...gin.HandlerFunc) {
	h := newAuthHandler(as, ps)

	public.POST("/auth/login", append(loginGuards, h.login)...)
	protected.POST("/auth/logout", h.logout)
	protected.GET("/me", h.me)
}

// login godoc
// @Summary Log in
// @Description Verifies username and password and returns a signed session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid username or password"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, expiresAt, account, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			logger.Warn("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		respondError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("Login successful", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   dto.ToAccountResponse(account),
	})
}

// logout godoc
// @Summary Log out
// @Description Marks the caller offline. The token itself stays valid until it expires.
// @Tags auth
// @Success 204
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), accountID); err != nil {
		respondError(c, logger, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Current identity
// @Description Returns a fresh snapshot of the caller's account and resolved capabilities
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /me [get]
func (h *authHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	account, matrix, err := h.permissionService.MatrixFor(c.Request.Context(), accountID)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			// the token outlived its account
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		respondError(c, logger, err, "Failed to load identity")
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{
		Account:      dto.ToAccountResponse(account),
		Capabilities: dto.ToCapabilityMap(matrix),
	})
}
