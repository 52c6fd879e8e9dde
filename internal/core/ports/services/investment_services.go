package services

import (
	"context"

	"github.com/propstake/propstake_backend/internal/core/domain"
	"github.com/propstake/propstake_backend/internal/dto"
)

// InvestmentSvcFacade is the investment transaction coordinator plus its
// read-only projections.
type InvestmentSvcFacade interface {
	// Invest atomically converts wallet balance into property ownership.
	// The returned investment carries the computed shares and ownership
	// percentage. Failures are apperrors sentinels distinguishable with
	// errors.Is; on any failure no state change survives.
	Invest(ctx context.Context, req dto.NewInvestment) (*domain.Investment, error)

	// GetInvestorPortfolio aggregates all of a user's investments joined with
	// property display fields.
	GetInvestorPortfolio(ctx context.Context, investorID string) (*dto.PortfolioSummary, error)

	// GetPropertyFunding sums all investments into a property and reports
	// funding progress.
	GetPropertyFunding(ctx context.Context, propertyID string) (*dto.FundingSummary, error)

	// ListLedgerEntries returns the caller's wallet ledger, newest first, with
	// cursor pagination.
	ListLedgerEntries(ctx context.Context, userID string, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error)
}
