package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType distinguishes wallet debits from credits.
type LedgerEntryType string

const (
	Debit  LedgerEntryType = "debit"
	Credit LedgerEntryType = "credit"
)

// LedgerEntry is a best-effort bookkeeping record of a wallet movement with
// the resulting balance snapshot. A failed ledger insert must never abort the
// investment transaction it belongs to.
type LedgerEntry struct {
	LedgerEntryID string          `json:"ledgerEntryID"`
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          LedgerEntryType `json:"type"`
	Description   string          `json:"description"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
}
