package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/propstake/propstake_backend/internal/apperrors"
	portssvc "github.com/propstake/propstake_backend/internal/core/ports/services"
	"github.com/propstake/propstake_backend/internal/core/services"
	"github.com/propstake/propstake_backend/internal/dto"
	"github.com/propstake/propstake_backend/internal/middleware"
	"github.com/propstake/propstake_backend/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// investmentHandler handles HTTP requests for the investment engine.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

// newInvestmentHandler creates a new investmentHandler.
func newInvestmentHandler(investmentService portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{
		investmentService: investmentService,
	}
}

// RegisterInvestmentRoutes sets up the investment routes. The invest endpoint
// carries an additional per-IP rate limit on top of authentication.
func RegisterInvestmentRoutes(rg *gin.RouterGroup, cfg *config.Config, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	rate, err := limiter.NewRateFromFormatted(cfg.InvestRateLimit)
	if err != nil {
		slog.Warn("Invalid INVEST_RATE_LIMIT, falling back to 30-M", slog.String("value", cfg.InvestRateLimit))
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	investments := rg.Group("/investments")
	{
		investments.POST("", middleware.RateLimit(ipLimiter), h.invest)
		investments.GET("/portfolio", h.getPortfolio)
		investments.GET("/property/:propertyID", h.getPropertyFunding)
	}
}

// invest godoc
// @Summary Invest in a property
// @Description Atomically converts wallet balance into fractional ownership of a property.
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.InvestRequest true "Property and amount"
// @Success 201 {object} dto.InvestSuccessResponse
// @Failure 400 {object} ErrorResponse "Validation, funding cap or balance failure"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Property or user not found"
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Failure 500 {object} ErrorResponse "Investment failed due to system error"
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) invest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for invest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Investor user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("investor_id", investorID), slog.String("property_id", req.PropertyID))

	investment, err := h.investmentService.Invest(c.Request.Context(), dto.NewInvestment{
		InvestorID: investorID,
		PropertyID: req.PropertyID,
		Amount:     req.Amount,
		IPAddress:  c.ClientIP(),
	})
	if err != nil {
		h.respondInvestError(c, logger, err)
		return
	}

	logger.Info("Investment created", slog.String("investment_id", investment.InvestmentID))
	c.JSON(http.StatusCreated, dto.InvestSuccessResponse{
		Message:    "Investment successful",
		Investment: dto.ToInvestmentResponse(investment),
	})
}

// respondInvestError maps coordinator failures to HTTP responses. Every
// business rejection is a 400 with a stable message; anything unexpected is a
// generic 500 so store details never leak to clients.
func (h *investmentHandler) respondInvestError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrPropertyNotFound):
		logger.Warn("Invest rejected: property not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
	case errors.Is(err, services.ErrUserNotFound):
		logger.Warn("Invest rejected: user not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	case errors.Is(err, apperrors.ErrInvalidAmount):
		logger.Warn("Invest rejected: amount outside bounds", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyFunded):
		logger.Warn("Invest rejected: property fully funded")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Property is already fully funded"})
	case errors.Is(err, apperrors.ErrExceedsFundingTarget):
		logger.Warn("Invest rejected: exceeds remaining funding")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Investment exceeds remaining funding needed"})
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		logger.Warn("Invest rejected: insufficient wallet balance")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient wallet balance"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invest rejected: validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Invest failed in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Investment failed due to system error"})
	}
}

// getPortfolio godoc
// @Summary Get the caller's investment portfolio
// @Description Returns all investments of the authenticated user joined with property details, plus aggregate totals.
// @Tags investments
// @Produce json
// @Success 200 {object} dto.PortfolioSummary
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve portfolio"
// @Security BearerAuth
// @Router /investments/portfolio [get]
func (h *investmentHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Investor user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.investmentService.GetInvestorPortfolio(c.Request.Context(), investorID)
	if err != nil {
		logger.Error("Failed to get portfolio from service", slog.String("error", err.Error()), slog.String("investor_id", investorID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve portfolio"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getPropertyFunding godoc
// @Summary Get funding progress of a property
// @Description Returns all investments into a property with the raised total and funding percentage.
// @Tags investments
// @Produce json
// @Param propertyID path string true "Property ID"
// @Success 200 {object} dto.FundingSummary
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve funding summary"
// @Security BearerAuth
// @Router /investments/property/{propertyID} [get]
func (h *investmentHandler) getPropertyFunding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	summary, err := h.investmentService.GetPropertyFunding(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Property not found", slog.String("property_id", propertyID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		logger.Error("Failed to get funding summary from service", slog.String("error", err.Error()), slog.String("property_id", propertyID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve funding summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
