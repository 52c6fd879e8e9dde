package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propstake/propstake_backend/internal/apperrors"
	"github.com/propstake/propstake_backend/internal/core/domain"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	portssvc "github.com/propstake/propstake_backend/internal/core/ports/services"
	"github.com/propstake/propstake_backend/internal/dto"
	"github.com/propstake/propstake_backend/internal/middleware"
	"github.com/propstake/propstake_backend/internal/utils/investmath"
)

var (
	// ErrPropertyNotFound and ErrUserNotFound let the handler distinguish
	// which entity failed to resolve while still matching apperrors.ErrNotFound.
	ErrPropertyNotFound = fmt.Errorf("property: %w", apperrors.ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user: %w", apperrors.ErrNotFound)
)

// InvalidAmountError reports an investment amount outside the property's
// bounds. The message echoes the bounds in the stored currency unit.
type InvalidAmountError struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("Investment must be between PKR %s and PKR %s", e.Min.String(), e.Max.String())
}

func (e *InvalidAmountError) Unwrap() error {
	return apperrors.ErrInvalidAmount
}

// investmentService coordinates the investment transaction: it converts
// wallet balance into property ownership as one atomic unit against the store.
type investmentService struct {
	propertyRepo   portsrepo.PropertyRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
	investmentRepo portsrepo.InvestmentRepositoryWithTx
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	auditRepo      portsrepo.AuditRepositoryFacade
}

// NewInvestmentService creates a new investment coordinator service.
func NewInvestmentService(repos portsrepo.RepositoryProvider) portssvc.InvestmentSvcFacade {
	return &investmentService{
		propertyRepo:   repos.PropertyRepo,
		userRepo:       repos.UserRepo,
		investmentRepo: repos.InvestmentRepo,
		ledgerRepo:     repos.LedgerRepo,
		auditRepo:      repos.AuditRepo,
	}
}

// Ensure investmentService implements the portssvc.InvestmentSvcFacade interface
var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

// Invest executes the investment transaction described by req.
//
// The entire flow runs inside one database transaction. Lock order is fixed:
// property row first, then the investor's wallet row. All validation happens
// against the locked rows, so two concurrent investments near the funding cap
// (or draining the same wallet) serialize and the loser fails cleanly instead
// of overshooting.
//
// Side effects on success: one investment row, one funding increment, one
// wallet decrement, one audit entry, and one best-effort ledger entry. On any
// failure other than the tolerated ledger gap, none of them survive.
func (s *investmentService) Invest(ctx context.Context, req dto.NewInvestment) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("investor_id", req.InvestorID),
		slog.String("property_id", req.PropertyID),
	)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: investment amount must be positive", apperrors.ErrValidation)
	}

	tx, err := s.investmentRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin investment transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to begin transaction: %w", apperrors.ErrInternal)
	}
	// Rollback is a no-op after a successful commit. It also runs on every
	// validation short-circuit below, releasing the row locks promptly.
	defer func() { _ = s.investmentRepo.Rollback(ctx, tx) }()

	// 1. Lock the property row.
	property, err := s.propertyRepo.FindPropertyByIDForUpdate(ctx, tx, req.PropertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		logger.Error("Failed to lock property row", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to read property: %w", apperrors.ErrInternal)
	}

	// 2. Investment bounds.
	if req.Amount.LessThan(property.MinInvestment) || req.Amount.GreaterThan(property.MaxInvestment) {
		return nil, &InvalidAmountError{Min: property.MinInvestment, Max: property.MaxInvestment}
	}

	// 3. Funding capacity: once the target is met, nothing more is accepted.
	if property.IsFullyFunded() {
		return nil, apperrors.ErrAlreadyFunded
	}

	// 4. Headroom: partial fills up to exactly the remaining headroom are
	// fine; overshoot is rejected outright, never clipped.
	if property.FundingRaised.Add(req.Amount).GreaterThan(property.FundingTarget) {
		return nil, apperrors.ErrExceedsFundingTarget
	}

	// 5. Lock the wallet row (always after the property row).
	user, err := s.userRepo.FindUserByIDForUpdate(ctx, tx, req.InvestorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to lock user wallet row", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to read user: %w", apperrors.ErrInternal)
	}

	// 6. Sufficient funds.
	if user.WalletBalance.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientBalance
	}

	// 7. Share and ownership math, pure functions of the locked snapshot.
	shares, err := investmath.SharesOwned(req.Amount, property.TotalValue)
	if err != nil {
		logger.Error("Share calculation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("share calculation: %w", apperrors.ErrInternal)
	}
	ownership, err := investmath.OwnershipPercentage(req.Amount, property.FundingTarget)
	if err != nil {
		logger.Error("Ownership calculation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("ownership calculation: %w", apperrors.ErrInternal)
	}

	now := time.Now().UTC()
	investment := domain.Investment{
		InvestmentID:        uuid.NewString(),
		UserID:              req.InvestorID,
		PropertyID:          req.PropertyID,
		AmountInvested:      req.Amount,
		SharesOwned:         shares,
		OwnershipPercentage: ownership,
		ReturnsEarned:       decimal.Zero,
		CreatedAt:           now,
	}

	// 8. Immutable investment record.
	if err := s.investmentRepo.SaveInvestment(ctx, tx, investment); err != nil {
		logger.Error("Failed to save investment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save investment: %w", apperrors.ErrInternal)
	}

	// 9. Funding counter.
	if err := s.propertyRepo.IncrementFundingRaised(ctx, tx, req.PropertyID, req.Amount, now); err != nil {
		logger.Error("Failed to increment funding raised", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update property funding: %w", apperrors.ErrInternal)
	}

	// 10. Wallet debit.
	if err := s.userRepo.AdjustWalletBalance(ctx, tx, req.InvestorID, req.Amount.Neg(), now); err != nil {
		logger.Error("Failed to debit wallet", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to debit wallet: %w", apperrors.ErrInternal)
	}

	// 11. Best-effort ledger entry: the repository captures and logs its own
	// failures, so a ledger outage never aborts the investment.
	s.ledgerRepo.RecordLedgerEntry(ctx, tx, domain.LedgerEntry{
		LedgerEntryID: uuid.NewString(),
		UserID:        req.InvestorID,
		Amount:        req.Amount,
		Type:          domain.Debit,
		Description:   fmt.Sprintf("Investment in Property #%s", req.PropertyID),
		BalanceAfter:  user.WalletBalance.Sub(req.Amount),
		CreatedAt:     now,
	})

	// 12. Required audit entry; a failure here rolls everything back.
	payload, err := json.Marshal(map[string]any{
		"amount":      req.Amount,
		"property_id": req.PropertyID,
	})
	if err != nil {
		logger.Error("Failed to marshal audit payload", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to marshal audit payload: %w", apperrors.ErrInternal)
	}
	if err := s.auditRepo.RecordAction(ctx, tx, domain.AuditLog{
		AuditLogID: uuid.NewString(),
		UserID:     req.InvestorID,
		Action:     domain.ActionInvestment,
		EntityType: "investment",
		EntityID:   investment.InvestmentID,
		NewValues:  payload,
		IPAddress:  req.IPAddress,
		CreatedAt:  now,
	}); err != nil {
		logger.Error("Failed to record audit log", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record audit log: %w", apperrors.ErrInternal)
	}

	// 13. Commit.
	if err := s.investmentRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit investment transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit transaction: %w", apperrors.ErrInternal)
	}

	logger.Info("Investment committed",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("amount", req.Amount.String()),
	)
	return &investment, nil
}

// GetInvestorPortfolio aggregates all of a user's investments with the display
// fields of each property. A pure read; no locks are taken.
func (s *investmentService) GetInvestorPortfolio(ctx context.Context, investorID string) (*dto.PortfolioSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	investments, err := s.investmentRepo.FindInvestmentsByUser(ctx, investorID)
	if err != nil {
		logger.Error("Failed to list investments for portfolio", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve investments: %w", apperrors.ErrInternal)
	}

	propertyIDs := make([]string, 0, len(investments))
	seen := make(map[string]struct{}, len(investments))
	for _, inv := range investments {
		if _, ok := seen[inv.PropertyID]; !ok {
			seen[inv.PropertyID] = struct{}{}
			propertyIDs = append(propertyIDs, inv.PropertyID)
		}
	}

	propertiesMap, err := s.propertyRepo.FindPropertiesByIDs(ctx, propertyIDs)
	if err != nil {
		logger.Error("Failed to fetch properties for portfolio", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve properties: %w", apperrors.ErrInternal)
	}

	totalInvested := decimal.Zero
	totalReturns := decimal.Zero
	items := make([]dto.PortfolioItem, len(investments))
	for i, inv := range investments {
		totalInvested = totalInvested.Add(inv.AmountInvested)
		totalReturns = totalReturns.Add(inv.ReturnsEarned)

		item := dto.PortfolioItem{InvestmentResponse: dto.ToInvestmentResponse(&investments[i])}
		if prop, ok := propertiesMap[inv.PropertyID]; ok {
			item.Property = dto.PortfolioProperty{
				Title:  prop.Title,
				City:   prop.City,
				Status: string(prop.Status),
			}
		} else {
			// Investments are never deleted, so a missing property means a
			// listing was removed out-of-band. Keep the row, flag the gap.
			logger.Warn("Property missing for portfolio item", slog.String("property_id", inv.PropertyID))
		}
		items[i] = item
	}

	return &dto.PortfolioSummary{
		TotalInvested:   totalInvested,
		TotalReturns:    totalReturns,
		CurrentValue:    totalInvested.Add(totalReturns),
		InvestmentCount: len(investments),
		Portfolio:       items,
	}, nil
}

// GetPropertyFunding sums all investments into a property. TotalRaised is
// recomputed from investment rows rather than read from the funding counter;
// the counter stays authoritative for admission control in Invest.
func (s *investmentService) GetPropertyFunding(ctx context.Context, propertyID string) (*dto.FundingSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		logger.Error("Failed to fetch property for funding summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve property: %w", apperrors.ErrInternal)
	}

	investments, err := s.investmentRepo.FindInvestmentsByProperty(ctx, propertyID)
	if err != nil {
		logger.Error("Failed to list investments for funding summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve investments: %w", apperrors.ErrInternal)
	}

	totalRaised := decimal.Zero
	for _, inv := range investments {
		totalRaised = totalRaised.Add(inv.AmountInvested)
	}

	return &dto.FundingSummary{
		PropertyID:        propertyID,
		InvestorCount:     len(investments),
		TotalRaised:       totalRaised,
		FundingTarget:     property.FundingTarget,
		FundingPercentage: investmath.FundingPercentage(totalRaised, property.FundingTarget),
		Investments:       dto.ToInvestmentResponses(investments),
	}, nil
}

// ListLedgerEntries returns a page of the caller's wallet ledger.
func (s *investmentService) ListLedgerEntries(ctx context.Context, userID string, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.ledgerRepo.ListLedgerEntriesByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}

	return &dto.ListLedgerResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
