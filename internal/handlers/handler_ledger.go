package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/propstake/propstake_backend/internal/apperrors"
	portssvc "github.com/propstake/propstake_backend/internal/core/ports/services"
	"github.com/propstake/propstake_backend/internal/dto"
	"github.com/propstake/propstake_backend/internal/middleware"
)

const maxLedgerPageSize = 100

// ledgerHandler handles HTTP requests for the wallet ledger.
type ledgerHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(investmentService portssvc.InvestmentSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		investmentService: investmentService,
	}
}

// RegisterWalletRoutes sets up the wallet routes.
func RegisterWalletRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newLedgerHandler(investmentService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("/ledger", h.listLedger)
	}
}

// listLedger godoc
// @Summary List the caller's wallet ledger entries
// @Description Returns wallet movements of the authenticated user, newest first, with cursor pagination.
// @Tags wallet
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve ledger"
// @Security BearerAuth
// @Router /wallet/ledger [get]
func (h *ledgerHandler) listLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	params := dto.ListLedgerParams{Limit: 20}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
		if limit > maxLedgerPageSize {
			limit = maxLedgerPageSize
		}
		params.Limit = limit
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.investmentService.ListLedgerEntries(c.Request.Context(), userID, params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			logger.Warn("Invalid ledger pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nextToken"})
			return
		}
		logger.Error("Failed to list ledger entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ledger"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
