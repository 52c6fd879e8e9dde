package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment represents a row of the append-only investments table.
type Investment struct {
	InvestmentID        string          `db:"investment_id"`
	UserID              string          `db:"user_id"`
	PropertyID          string          `db:"property_id"`
	AmountInvested      decimal.Decimal `db:"amount_invested"`
	SharesOwned         decimal.Decimal `db:"shares_owned"`
	OwnershipPercentage decimal.Decimal `db:"ownership_percentage"`
	ReturnsEarned       decimal.Decimal `db:"returns_earned"`
	CreatedAt           time.Time       `db:"created_at"`
}
