package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/propstake/propstake_backend/internal/core/domain"
)

// LedgerRepositoryFacade defines the best-effort wallet ledger sink.
//
// RecordLedgerEntry is a non-critical side effect: implementations capture and
// log their own failures instead of returning them, so a call site cannot
// accidentally treat a ledger outage as fatal to the enclosing transaction.
type LedgerRepositoryFacade interface {
	RecordLedgerEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry)
	ListLedgerEntriesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}
