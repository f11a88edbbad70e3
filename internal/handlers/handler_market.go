package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/gin-gonic/gin"
)

type marketHandler struct {
	marketService portssvc.MarketSvc
	posthog       *utils.PosthogClientWrapper
}

func registerMarketRoutes(rg *gin.RouterGroup, ms portssvc.MarketSvc, posthog *utils.PosthogClientWrapper) {
	h := &marketHandler{marketService: ms, posthog: posthog}

	markets := rg.Group("/markets")
	{
		markets.GET("", h.listMarkets)
		markets.POST("", h.addMarket)
	}
}

// listMarkets godoc
// @Summary List markets
// @Description Built-in markets first, then the ones staff added
// @Tags markets
// @Produce json
// @Success 200 {object} dto.ListMarketsResponse
// @Security BearerAuth
// @Router /markets [get]
func (h *marketHandler) listMarkets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	markets, err := h.marketService.List(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list markets")
		return
	}
	c.JSON(http.StatusOK, dto.ListMarketsResponse{Markets: markets})
}

// addMarket godoc
// @Summary Add a market
// @Tags markets
// @Accept json
// @Produce json
// @Param market body dto.CreateMarketRequest true "Market"
// @Success 201 {object} domain.Market
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Market already exists"
// @Security BearerAuth
// @Router /markets [post]
func (h *marketHandler) addMarket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMarket", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	m, err := h.marketService.Add(c.Request.Context(), actorID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to add market")
		return
	}
	middleware.PosthogEvent(c, h.posthog, "market_added", map[string]any{"market_id": m.MarketID})
	c.JSON(http.StatusCreated, m)
}
