package dto

import (
	"time"

	"github.com/propstake/propstake_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestRequest is the HTTP body of an invest call. The investor identity and
// request origin come from the authenticated context, never from the body.
type InvestRequest struct {
	PropertyID string          `json:"property_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
}

// NewInvestment carries everything the coordinator needs to execute one
// investment. Caller identity and network origin are explicit fields; the
// service never reaches into ambient request state.
type NewInvestment struct {
	InvestorID string
	PropertyID string
	Amount     decimal.Decimal
	IPAddress  string
}

// InvestmentResponse mirrors the persisted investment. Shares repeats the
// stored SharesOwned so callers get the computed figure without a re-fetch.
type InvestmentResponse struct {
	InvestmentID        string          `json:"id"`
	UserID              string          `json:"user_id"`
	PropertyID          string          `json:"property_id"`
	AmountInvested      decimal.Decimal `json:"amount_invested"`
	SharesOwned         decimal.Decimal `json:"shares_owned"`
	OwnershipPercentage decimal.Decimal `json:"ownership_percentage"`
	ReturnsEarned       decimal.Decimal `json:"returns_earned"`
	CreatedAt           time.Time       `json:"created_at"`
	Shares              decimal.Decimal `json:"shares"`
}

// InvestSuccessResponse is the 201 body of a successful invest call.
type InvestSuccessResponse struct {
	Message    string             `json:"message"`
	Investment InvestmentResponse `json:"investment"`
}

// PortfolioProperty carries the property display fields joined onto a
// portfolio item.
type PortfolioProperty struct {
	Title  string `json:"title"`
	City   string `json:"city"`
	Status string `json:"status"`
}

// PortfolioItem is one investment of the caller, joined with its property.
type PortfolioItem struct {
	InvestmentResponse
	Property PortfolioProperty `json:"property"`
}

// PortfolioSummary aggregates a user's investments.
// CurrentValue is totalInvested + totalReturns; no mark-to-market valuation.
type PortfolioSummary struct {
	TotalInvested   decimal.Decimal `json:"total_invested"`
	TotalReturns    decimal.Decimal `json:"total_returns"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	InvestmentCount int             `json:"investment_count"`
	Portfolio       []PortfolioItem `json:"portfolio"`
}

// FundingSummary aggregates all investments into one property. TotalRaised is
// recomputed from investment rows for display; the funding_raised counter on
// the property row remains authoritative for admission control.
type FundingSummary struct {
	PropertyID        string               `json:"property_id"`
	InvestorCount     int                  `json:"investor_count"`
	TotalRaised       decimal.Decimal      `json:"total_raised"`
	FundingTarget     decimal.Decimal      `json:"funding_target"`
	FundingPercentage decimal.Decimal      `json:"funding_percentage"`
	Investments       []InvestmentResponse `json:"investments"`
}

// ToInvestmentResponse converts a domain.Investment to its response DTO.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:        inv.InvestmentID,
		UserID:              inv.UserID,
		PropertyID:          inv.PropertyID,
		AmountInvested:      inv.AmountInvested,
		SharesOwned:         inv.SharesOwned,
		OwnershipPercentage: inv.OwnershipPercentage,
		ReturnsEarned:       inv.ReturnsEarned,
		CreatedAt:           inv.CreatedAt,
		Shares:              inv.SharesOwned,
	}
}

// ToInvestmentResponses converts a slice of domain investments.
func ToInvestmentResponses(invs []domain.Investment) []InvestmentResponse {
	responses := make([]InvestmentResponse, len(invs))
	for i := range invs {
		responses[i] = ToInvestmentResponse(&invs[i])
	}
	return responses
}
