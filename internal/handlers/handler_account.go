package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the staff directory.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers the administrator's directory routes and the caller's
// own custom product routes.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, perms portssvc.PermissionSvc) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts", middleware.RequireCapability(perms, domain.CapManageAccounts))
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.PUT("/:id/grants", h.updateGrants)
		accounts.PUT("/:id/credential", h.updateCredential)
		accounts.PUT("/:id/balance", h.setBalance)
		accounts.DELETE("/:id", h.deleteAccount)
	}

	products := rg.Group("/me/products")
	{
		products.GET("", h.listCustomProducts)
		products.POST("", h.addCustomProduct)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a staff account. Grants and balances default when omitted.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Username taken"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create account", slog.String("username", req.Username))
	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("new_account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", c.Param("id")))
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update account profile
// @Description Changes display name, employee code, phone or role
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input, or demoting the last administrator"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", c.Param("id")))
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateGrants godoc
// @Summary Replace account grants
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param grants body dto.UpdateGrantsRequest true "Grants"
// @Success 200 {object} dto.AccountResponse
// @Security BearerAuth
// @Router /accounts/{id}/grants [put]
func (h *accountHandler) updateGrants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", c.Param("id")))
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateGrantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	account, err := h.accountService.UpdateGrants(c.Request.Context(), c.Param("id"), req.ToGrants(), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update grants")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateCredential godoc
// @Summary Reset account password
// @Tags accounts
// @Accept json
// @Param id path string true "Account ID"
// @Param credential body dto.UpdateCredentialRequest true "New password"
// @Success 204
// @Security BearerAuth
// @Router /accounts/{id}/credential [put]
func (h *accountHandler) updateCredential(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", c.Param("id")))
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if err := h.accountService.UpdateCredential(c.Request.Context(), c.Param("id"), req.Password, actorID); err != nil {
		respondError(c, logger, err, "Failed to update credential")
		return
	}
	c.Status(http.StatusNoContent)
}

// setBalance godoc
// @Summary Overwrite leave balances
// @Description Sets every leave pool of the account. This is how voided debits are re-credited.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param balance body dto.SetBalanceRequest true "Balances"
// @Success 200 {object} dto.AccountResponse
// @Security BearerAuth
// @Router /accounts/{id}/balance [put]
func (h *accountHandler) setBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", c.Param("id")))
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	account, err := h.accountService.SetBalance(c.Request.Context(), c.Param("id"), req.ToLeaveBalance(), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to set balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 400 {object} map[string]string "Deleting yourself or the last administrator"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", c.Param("id")))
	actorID, ok := callerID(c, logger)
	if !ok {
		return
	}
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondError(c, logger, err, "Failed to delete account")
		return
	}
	logger.Info("Account deleted")
	c.Status(http.StatusNoContent)
}

// listCustomProducts godoc
// @Summary List own custom products
// @Tags products
// @Produce json
// @Success 200 {object} dto.CustomProductsResponse
// @Security BearerAuth
// @Router /me/products [get]
func (h *accountHandler) listCustomProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	products, err := h.accountService.ListCustomProducts(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.CustomProductsResponse{Products: nonNilStrings(products)})
}

// addCustomProduct godoc
// @Summary Add a custom product
// @Description Appends a product name to the caller's own list
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.AddCustomProductRequest true "Product"
// @Success 201 {object} dto.CustomProductsResponse
// @Failure 400 {object} map[string]string "Invalid name or list full"
// @Failure 409 {object} map[string]string "Product already listed"
// @Security BearerAuth
// @Router /me/products [post]
func (h *accountHandler) addCustomProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}
	var req dto.AddCustomProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	products, err := h.accountService.AddCustomProduct(c.Request.Context(), accountID, req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to add product")
		return
	}
	c.JSON(http.StatusCreated, dto.CustomProductsResponse{Products: nonNilStrings(products)})
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
