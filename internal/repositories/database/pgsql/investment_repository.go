package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/propstake/propstake_backend/internal/apperrors"
	"github.com/propstake/propstake_backend/internal/core/domain"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	"github.com/propstake/propstake_backend/internal/models"
	"github.com/propstake/propstake_backend/internal/utils/mapping"
)

const investmentColumns = `investment_id, user_id, property_id, amount_invested, shares_owned, ownership_percentage, returns_earned, created_at`

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investment records.
func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryWithTx {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvestmentRepository implements portsrepo.InvestmentRepositoryWithTx
var _ portsrepo.InvestmentRepositoryWithTx = (*PgxInvestmentRepository)(nil)

// SaveInvestment inserts the immutable investment record within the given
// transaction. Investments are append-only; there is no update path.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)

	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.PropertyID,
		m.AmountInvested,
		m.SharesOwned,
		m.OwnershipPercentage,
		m.ReturnsEarned,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert investment "+m.InvestmentID, err)
	}
	return nil
}

// FindInvestmentsByUser retrieves all investments made by a user, newest first.
func (r *PgxInvestmentRepository) FindInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY created_at DESC;`
	return r.queryInvestments(ctx, query, userID)
}

// FindInvestmentsByProperty retrieves all investments into a property, newest first.
func (r *PgxInvestmentRepository) FindInvestmentsByProperty(ctx context.Context, propertyID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE property_id = $1 ORDER BY created_at DESC;`
	return r.queryInvestments(ctx, query, propertyID)
}

func (r *PgxInvestmentRepository) queryInvestments(ctx context.Context, query string, arg any) ([]domain.Investment, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query investments", err)
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var m models.Investment
		err := rows.Scan(
			&m.InvestmentID,
			&m.UserID,
			&m.PropertyID,
			&m.AmountInvested,
			&m.SharesOwned,
			&m.OwnershipPercentage,
			&m.ReturnsEarned,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan investment row", err)
		}
		investments = append(investments, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating investment rows", err)
	}

	return mapping.ToDomainInvestmentSlice(investments), nil
}
