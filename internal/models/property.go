package models

import "github.com/shopspring/decimal"

// PropertyStatus mirrors domain.PropertyStatus for DB storage.
type PropertyStatus string

// Property represents a row of the properties table.
type Property struct {
	PropertyID    string          `db:"property_id"`
	Title         string          `db:"title"`
	City          string          `db:"city"`
	Status        PropertyStatus  `db:"status"`
	TotalValue    decimal.Decimal `db:"total_value"`
	FundingTarget decimal.Decimal `db:"funding_target"`
	FundingRaised decimal.Decimal `db:"funding_raised"`
	MinInvestment decimal.Decimal `db:"min_investment"`
	MaxInvestment decimal.Decimal `db:"max_investment"`
	AuditFields
}
