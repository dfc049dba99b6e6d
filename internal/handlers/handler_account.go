package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts", middleware.ReadWrite("accounts"))
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.POST("/bulk-delete", h.bulkDeleteAccounts)
		accounts.POST("/bulk-status", h.bulkUpdateAccountStatus)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Returns every account ordered by code
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /api/v1/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a ledger account. Status defaults to active.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Account code already exists"
// @Failure 422 {object} dto.ErrorResponse "Parent account does not exist"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /api/v1/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create account", slog.String("code", req.Code), slog.String("account_name", req.Name))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	mutated(c, http.StatusCreated, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Applies a partial update; omitted fields are left untouched
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update account"
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req, userID); err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// deleteAccount godoc
// @Summary Delete an account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete account"
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// bulkDeleteAccounts godoc
// @Summary Delete several accounts
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   ids body dto.BulkIDsRequest true "Account IDs"
// @Success 200 {object} dto.BulkResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete accounts"
// @Security BearerAuth
// @Router /api/v1/accounts/bulk-delete [post]
func (h *accountHandler) bulkDeleteAccounts(c *gin.Context) {
	var req dto.BulkIDsRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.accountService.BulkDeleteAccounts(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to delete accounts")
		return
	}
	bulkDone(c, n)
}

// bulkUpdateAccountStatus godoc
// @Summary Set the status of several accounts
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkStatusRequest true "Account IDs and the new status"
// @Success 200 {object} dto.BulkResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to update accounts"
// @Security BearerAuth
// @Router /api/v1/accounts/bulk-status [post]
func (h *accountHandler) bulkUpdateAccountStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	n, err := h.accountService.BulkUpdateAccountStatus(c.Request.Context(), req.IDs, domain.AccountStatus(req.Status), userID)
	if err != nil {
		respondError(c, err, "Failed to update accounts")
		return
	}
	bulkDone(c, n)
}
