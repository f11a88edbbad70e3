package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordHandler serves the sales, inventory and competitor price collections.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

func registerRecordRoutes(rg *gin.RouterGroup, rs portssvc.RecordSvcFacade) {
	h := &recordHandler{recordService: rs}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/summary", h.summariseSales)
		sales.DELETE("/:id", deleteRecord("sale", rs.DeleteSale))
	}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createInventory)
		inventory.GET("", h.listInventory)
		inventory.DELETE("/:id", deleteRecord("inventory", rs.DeleteInventory))
	}

	competitor := rg.Group("/competitor-prices")
	{
		competitor.POST("", h.createCompetitorPrice)
		competitor.GET("", h.listCompetitorPrices)
		competitor.DELETE("/:id", deleteRecord("competitor price", rs.DeleteCompetitorPrice))
	}
}

// bindRecordParams reads the common listing filters; it writes the 400 itself.
func bindRecordParams(c *gin.Context, logger *slog.Logger) (dto.ListRecordsParams, bool) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid record filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// createSale godoc
// @Summary Record a sale
// @Description The total is computed server side from the item lines
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale"
// @Success 201 {object} domain.SaleRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /sales [post]
func (h *recordHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	rec, err := h.recordService.CreateSale(c.Request.Context(), actorID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record sale")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// listSales godoc
// @Summary List sales
// @Description Requires the sales log capability; rows are filtered by visibility
// @Tags sales
// @Produce json
// @Param month query string false "YYYY-MM"
// @Param market query string false "Market"
// @Param createdBy query string false "Creator display name (needs VIEW_OTHERS_SALES)"
// @Success 200 {array} domain.SaleRecord
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /sales [get]
func (h *recordHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	viewerID, ok := callerID(c, logger)
	if !ok {
		return
	}
	params, ok := bindRecordParams(c, logger)
	if !ok {
		return
	}
	recs, err := h.recordService.ListSales(c.Request.Context(), viewerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, recs)
}

// summariseSales godoc
// @Summary Sales summary
// @Description Per-product totals, grand total and best day over the visible sales
// @Tags sales
// @Produce json
// @Param month query string false "YYYY-MM"
// @Param market query string false "Market"
// @Success 200 {object} domain.SalesSummary
// @Security BearerAuth
// @Router /sales/summary [get]
func (h *recordHandler) summariseSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	viewerID, ok := callerID(c, logger)
	if !ok {
		return
	}
	params, ok := bindRecordParams(c, logger)
	if !ok {
		return
	}
	summary, err := h.recordService.SummariseSales(c.Request.Context(), viewerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to summarise sales")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// createInventory godoc
// @Summary Record a stock count
// @Tags inventory
// @Accept json
// @Produce json
// @Param inventory body dto.CreateInventoryRequest true "Stock count"
// @Success 201 {object} domain.InventoryRecord
// @Security BearerAuth
// @Router /inventory [post]
func (h *recordHandler) createInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	rec, err := h.recordService.CreateInventory(c.Request.Context(), actorID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record inventory")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// listInventory godoc
// @Summary List stock counts
// @Tags inventory
// @Produce json
// @Param month query string false "YYYY-MM"
// @Param market query string false "Market"
// @Success 200 {array} domain.InventoryRecord
// @Security BearerAuth
// @Router /inventory [get]
func (h *recordHandler) listInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	viewerID, ok := callerID(c, logger)
	if !ok {
		return
	}
	params, ok := bindRecordParams(c, logger)
	if !ok {
		return
	}
	recs, err := h.recordService.ListInventory(c.Request.Context(), viewerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list inventory")
		return
	}
	c.JSON(http.StatusOK, recs)
}

// createCompetitorPrice godoc
// @Summary Record competitor prices
// @Tags competitor-prices
// @Accept json
// @Produce json
// @Param report body dto.CreateCompetitorPriceRequest true "Observed prices"
// @Success 201 {object} domain.CompetitorPriceRecord
// @Security BearerAuth
// @Router /competitor-prices [post]
func (h *recordHandler) createCompetitorPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateCompetitorPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	rec, err := h.recordService.CreateCompetitorPrice(c.Request.Context(), actorID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record competitor prices")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// listCompetitorPrices godoc
// @Summary List competitor price reports
// @Tags competitor-prices
// @Produce json
// @Param month query string false "YYYY-MM"
// @Param market query string false "Market"
// @Success 200 {array} domain.CompetitorPriceRecord
// @Security BearerAuth
// @Router /competitor-prices [get]
func (h *recordHandler) listCompetitorPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	viewerID, ok := callerID(c, logger)
	if !ok {
		return
	}
	params, ok := bindRecordParams(c, logger)
	if !ok {
		return
	}
	recs, err := h.recordService.ListCompetitorPrices(c.Request.Context(), viewerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list competitor prices")
		return
	}
	c.JSON(http.StatusOK, recs)
}

// deleteRecord builds the admin-only delete handler shared by the three collections.
func deleteRecord(kind string, del func(ctx context.Context, actorID, recordID string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("record_kind", kind),
			slog.String("record_id", c.Param("id")),
		)
		actorID, ok := callerID(c, logger)
		if !ok {
			return
		}
		if err := del(c.Request.Context(), actorID, c.Param("id")); err != nil {
			respondError(c, logger, err, "Failed to delete "+kind)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
