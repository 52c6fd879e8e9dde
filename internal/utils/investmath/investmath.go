package investmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PercentScale is the decimal scale of stored percentage columns. Results are
// rounded to this scale and no further, so nothing is truncated below what the
// columns can hold.
const PercentScale = 4

var hundred = decimal.NewFromInt(100)

// SharesOwned computes the percentage of the property's total appraised value
// that an investment of amount represents: (amount / totalValue) * 100.
// This is a share of asset value, not of the cap table, and is intentionally
// not normalized against other investors.
func SharesOwned(amount, totalValue decimal.Decimal) (decimal.Decimal, error) {
	if totalValue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("total value must be positive, got %s", totalValue.String())
	}
	return amount.Mul(hundred).DivRound(totalValue, PercentScale), nil
}

// OwnershipPercentage computes the investment's share of the funding round:
// (amount / fundingTarget) * 100.
func OwnershipPercentage(amount, fundingTarget decimal.Decimal) (decimal.Decimal, error) {
	if fundingTarget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("funding target must be positive, got %s", fundingTarget.String())
	}
	return amount.Mul(hundred).DivRound(fundingTarget, PercentScale), nil
}

// FundingPercentage computes how far along a funding round is:
// (raised / fundingTarget) * 100. Used by the read-only funding projection.
func FundingPercentage(raised, fundingTarget decimal.Decimal) decimal.Decimal {
	if fundingTarget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return raised.Mul(hundred).DivRound(fundingTarget, PercentScale)
}
