package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is the immutable record of a single successful investment
// transaction. It is created exactly once and never updated or deleted by
// this engine; dividends and marketplace features reference it read-only.
//
// SharesOwned is the investment's share of the property's total appraised
// value (amount / totalValue * 100). It is deliberately NOT normalized
// against other investors, so shares across a property need not sum to 100.
// OwnershipPercentage is the investment's share of the funding round
// (amount / fundingTarget * 100).
type Investment struct {
	InvestmentID        string          `json:"investmentID"`
	UserID              string          `json:"userID"`
	PropertyID          string          `json:"propertyID"`
	AmountInvested      decimal.Decimal `json:"amountInvested"`
	SharesOwned         decimal.Decimal `json:"sharesOwned"`
	OwnershipPercentage decimal.Decimal `json:"ownershipPercentage"`
	ReturnsEarned       decimal.Decimal `json:"returnsEarned"`
	CreatedAt           time.Time       `json:"createdAt"`
}
