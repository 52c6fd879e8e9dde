package dto

import (
	"time"

	"github.com/propstake/propstake_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerParams holds pagination parameters for listing ledger entries.
type ListLedgerParams struct {
	Limit     int
	NextToken *string
}

// LedgerEntryResponse is one wallet ledger row.
type LedgerEntryResponse struct {
	LedgerEntryID string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ListLedgerResponse is a page of ledger entries with a cursor for the next
// page, if any.
type ListLedgerResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"next_token,omitempty"`
}

// ToLedgerEntryResponses converts domain ledger entries to response DTOs.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = LedgerEntryResponse{
			LedgerEntryID: e.LedgerEntryID,
			Amount:        e.Amount,
			Type:          string(e.Type),
			Description:   e.Description,
			BalanceAfter:  e.BalanceAfter,
			CreatedAt:     e.CreatedAt,
		}
	}
	return responses
}
