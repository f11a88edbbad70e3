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

// leaveHandler exposes the leave ledger.
type leaveHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	posthog       *utils.PosthogClientWrapper
}

func registerLeaveRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := &leaveHandler{ledgerService: ls, posthog: posthog}

	leave := rg.Group("/leave")
	{
		leave.GET("/period", h.currentPeriod)
		leave.GET("/balance", h.getBalance)
		leave.POST("/transactions", h.debit)
		leave.GET("/transactions", h.listTransactions)
		leave.DELETE("/transactions/:id", h.void)
	}
}

// currentPeriod godoc
// @Summary Current accounting period
// @Description The period runs from the 21st of one month to the 20th of the next
// @Tags leave
// @Produce json
// @Success 200 {object} dto.PeriodResponse
// @Security BearerAuth
// @Router /leave/period [get]
func (h *leaveHandler) currentPeriod(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToPeriodResponse(h.ledgerService.CurrentPeriod()))
}

// getBalance godoc
// @Summary Leave balance
// @Description Returns the caller's balance, or another account's for ledger managers
// @Tags leave
// @Produce json
// @Param accountID query string false "Account ID (defaults to the caller)"
// @Success 200 {object} dto.BalanceResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /leave/balance [get]
func (h *leaveHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requesterID, ok := callerID(c, logger)
	if !ok {
		return
	}
	target := c.Query("accountID")
	if target == "" {
		target = requesterID
	}
	balance, err := h.ledgerService.GetBalance(c.Request.Context(), requesterID, target)
	if err != nil {
		respondError(c, logger, err, "Failed to read balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// debit godoc
// @Summary Debit a leave pool
// @Description Subtracts days from one pool and records the transaction. Members always debit themselves.
// @Tags leave
// @Accept json
// @Produce json
// @Param debit body dto.DebitLeaveRequest true "Debit intent"
// @Success 201 {object} domain.LeaveTransaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Balance kept changing concurrently"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Security BearerAuth
// @Router /leave/transactions [post]
func (h *leaveHandler) debit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requesterID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.DebitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Debit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.Debit(c.Request.Context(), requesterID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to debit leave")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "leave_debited", map[string]any{
		"pool":   string(txn.Pool),
		"days":   txn.Days,
		"period": txn.PeriodLabel,
	})
	c.JSON(http.StatusCreated, txn)
}

// listTransactions godoc
// @Summary List leave transactions
// @Description Newest first. Members only ever see their own.
// @Tags leave
// @Produce json
// @Param accountID query string false "Filter by account (ledger managers only)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLeaveTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /leave/transactions [get]
func (h *leaveHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requesterID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var params dto.ListLeaveTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), requesterID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// void godoc
// @Summary Void a leave transaction
// @Description Deletes the record only. The balance is NOT restored; re-credit via PUT /accounts/{id}/balance.
// @Tags leave
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /leave/transactions/{id} [delete]
func (h *leaveHandler) void(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))
	requesterID, ok := callerID(c, logger)
	if !ok {
		return
	}
	if err := h.ledgerService.Void(c.Request.Context(), requesterID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to void transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
