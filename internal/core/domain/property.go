package domain

import "github.com/shopspring/decimal"

// PropertyStatus is the lifecycle tag of a property offering. The investment
// engine reads it for display only; funding completeness is derived from the
// funding counters, not from this field.
type PropertyStatus string

const (
	PropertyFunding PropertyStatus = "FUNDING"
	PropertyFunded  PropertyStatus = "FUNDED"
	PropertyClosed  PropertyStatus = "CLOSED"
)

// Property represents a listed asset accepting fractional investments.
// FundingRaised is monotonically non-decreasing through this engine and must
// never exceed FundingTarget after commit.
type Property struct {
	PropertyID    string          `json:"propertyID"`
	Title         string          `json:"title"`
	City          string          `json:"city"`
	Status        PropertyStatus  `json:"status"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	FundingTarget decimal.Decimal `json:"fundingTarget"`
	FundingRaised decimal.Decimal `json:"fundingRaised"`
	MinInvestment decimal.Decimal `json:"minInvestment"`
	MaxInvestment decimal.Decimal `json:"maxInvestment"`
	AuditFields
}

// FundingHeadroom returns the currency amount still open in the funding round.
func (p *Property) FundingHeadroom() decimal.Decimal {
	return p.FundingTarget.Sub(p.FundingRaised)
}

// IsFullyFunded reports whether the funding target has been met or exceeded.
// Once true, no further investment is accepted, even by a single unit.
func (p *Property) IsFullyFunded() bool {
	return p.FundingRaised.GreaterThanOrEqual(p.FundingTarget)
}
