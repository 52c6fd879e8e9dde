package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/propstake/propstake_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserRepositoryFacade defines the wallet-store operations the investment
// engine needs. The engine only decrements wallet balances; deposits are
// handled elsewhere.
type UserRepositoryFacade interface {
	FindUserByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error)
	AdjustWalletBalance(ctx context.Context, tx pgx.Tx, userID string, delta decimal.Decimal, now time.Time) error
}
