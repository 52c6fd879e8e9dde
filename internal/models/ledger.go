package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents a row of the append-only ledger_entries table.
type LedgerEntry struct {
	LedgerEntryID string          `db:"ledger_entry_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Description   string          `db:"description"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	CreatedAt     time.Time       `db:"created_at"`
}
