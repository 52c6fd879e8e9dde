package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/propstake/propstake_backend/internal/core/domain"
)

// InvestmentRepositoryWithTx defines persistence for investment records plus
// the transaction control the coordinator builds its atomic unit on.
type InvestmentRepositoryWithTx interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error

	SaveInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error
	FindInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error)
	FindInvestmentsByProperty(ctx context.Context, propertyID string) ([]domain.Investment, error)
}
