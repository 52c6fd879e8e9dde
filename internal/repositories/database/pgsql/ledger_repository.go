package pgsql

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/propstake/propstake_backend/internal/apperrors"
	"github.com/propstake/propstake_backend/internal/core/domain"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	"github.com/propstake/propstake_backend/internal/models"
	"github.com/propstake/propstake_backend/internal/utils/mapping"
	"github.com/propstake/propstake_backend/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerRepository creates a new repository for wallet ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// RecordLedgerEntry inserts a ledger entry inside the enclosing transaction.
// The insert runs under a savepoint: if it fails, only the savepoint is rolled
// back and the failure is logged, so the enclosing investment transaction
// commits regardless. A plain in-transaction insert would poison the whole
// Postgres transaction on failure.
func (r *PgxLedgerRepository) RecordLedgerEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) {
	m := mapping.ToModelLedgerEntry(entry)

	sp, err := tx.Begin(ctx) // nested Begin issues SAVEPOINT
	if err != nil {
		slog.WarnContext(ctx, "Ledger entry skipped: failed to create savepoint",
			slog.String("user_id", m.UserID), slog.String("error", err.Error()))
		return
	}

	query := `
		INSERT INTO ledger_entries (ledger_entry_id, user_id, amount, type, description, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = sp.Exec(ctx, query,
		m.LedgerEntryID,
		m.UserID,
		m.Amount,
		m.Type,
		m.Description,
		m.BalanceAfter,
		m.CreatedAt,
	)
	if err != nil {
		_ = sp.Rollback(ctx)
		slog.WarnContext(ctx, "Ledger entry insert failed, continuing without it",
			slog.String("user_id", m.UserID), slog.String("error", err.Error()))
		return
	}

	if err := sp.Commit(ctx); err != nil {
		slog.WarnContext(ctx, "Ledger entry savepoint release failed, continuing without it",
			slog.String("user_id", m.UserID), slog.String("error", err.Error()))
	}
}

// ListLedgerEntriesByUser retrieves a page of ledger entries for a user using
// token-based pagination, newest first.
func (r *PgxLedgerRepository) ListLedgerEntriesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ledger_entry_id, user_id, amount, type, description, balance_after, created_at
		FROM ledger_entries
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, ledger_entry_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (created_at, ledger_entry_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for user "+userID, err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.LedgerEntryID,
			&m.UserID,
			&m.Amount,
			&m.Type,
			&m.Description,
			&m.BalanceAfter,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var nextTokenVal *string
	results := entries
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.LedgerEntryID)
		nextTokenVal = &token
		results = entries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}
