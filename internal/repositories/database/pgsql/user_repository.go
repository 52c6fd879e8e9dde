package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/propstake/propstake_backend/internal/apperrors"
	"github.com/propstake/propstake_backend/internal/core/domain"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	"github.com/propstake/propstake_backend/internal/models"
	"github.com/propstake/propstake_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxUserRepository struct {
	pool     *pgxpool.Pool
	lockRows bool
}

// newPgxUserRepository creates a new repository for user wallet data.
func newPgxUserRepository(pool *pgxpool.Pool, lockRows bool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{pool: pool, lockRows: lockRows}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// FindUserByIDForUpdate retrieves a user and acquires an exclusive row lock on
// the wallet row, held for the rest of the transaction. Lock order across the
// engine is always property first, then wallet.
func (r *PgxUserRepository) FindUserByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, wallet_balance, created_at, updated_at
		FROM users
		WHERE user_id = $1`
	if r.lockRows {
		query += ` FOR UPDATE`
	}
	query += `;`

	var m models.User
	err := tx.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.WalletBalance,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID, err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

// AdjustWalletBalance applies delta (negative for an investment debit) to the
// user's wallet within the given transaction. The users table carries a
// CHECK (wallet_balance >= 0), so an underflow that slipped past validation
// surfaces as a constraint violation and rolls the transaction back.
func (r *PgxUserRepository) AdjustWalletBalance(ctx context.Context, tx pgx.Tx, userID string, delta decimal.Decimal, now time.Time) error {
	query := `
		UPDATE users
		SET wallet_balance = wallet_balance + $2, updated_at = $3
		WHERE user_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, userID, delta, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" { // check violation
			return apperrors.NewAppError(500, "wallet balance check violated for user "+userID, apperrors.ErrInsufficientBalance)
		}
		return apperrors.NewAppError(500, "failed to adjust wallet balance for user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
