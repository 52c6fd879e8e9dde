package pgsql

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/propstake/propstake_backend/internal/apperrors"
	"github.com/propstake/propstake_backend/internal/core/domain"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	"github.com/propstake/propstake_backend/internal/models"
	"github.com/propstake/propstake_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const propertyColumns = `property_id, title, city, status, total_value, funding_target, funding_raised, min_investment, max_investment, created_at, updated_at`

type PgxPropertyRepository struct {
	pool *pgxpool.Pool
	// lockRows is false in degraded mode; reads skip FOR UPDATE and concurrent
	// correctness is forfeited.
	lockRows bool
}

// newPgxPropertyRepository creates a new repository for property data.
func newPgxPropertyRepository(pool *pgxpool.Pool, lockRows bool) portsrepo.PropertyRepositoryFacade {
	return &PgxPropertyRepository{pool: pool, lockRows: lockRows}
}

// Ensure PgxPropertyRepository implements portsrepo.PropertyRepositoryFacade
var _ portsrepo.PropertyRepositoryFacade = (*PgxPropertyRepository)(nil)

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var m models.Property
	err := row.Scan(
		&m.PropertyID,
		&m.Title,
		&m.City,
		&m.Status,
		&m.TotalValue,
		&m.FundingTarget,
		&m.FundingRaised,
		&m.MinInvestment,
		&m.MaxInvestment,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan property row", err)
	}
	prop := mapping.ToDomainProperty(m)
	return &prop, nil
}

// FindPropertyByID retrieves a property by its ID without locking.
func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1;`
	return scanProperty(r.pool.QueryRow(ctx, query, propertyID))
}

// FindPropertyByIDForUpdate retrieves a property and acquires an exclusive row
// lock held for the rest of the transaction. In degraded mode the lock clause
// is skipped and two concurrent investments may both pass validation against
// stale funding counters.
func (r *PgxPropertyRepository) FindPropertyByIDForUpdate(ctx context.Context, tx pgx.Tx, propertyID string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1`
	if r.lockRows {
		query += ` FOR UPDATE`
	} else {
		slog.WarnContext(ctx, "Degraded mode: reading property without row lock", slog.String("property_id", propertyID))
	}
	query += `;`
	return scanProperty(tx.QueryRow(ctx, query, propertyID))
}

// FindPropertiesByIDs retrieves multiple properties keyed by ID.
func (r *PgxPropertyRepository) FindPropertiesByIDs(ctx context.Context, propertyIDs []string) (map[string]domain.Property, error) {
	if len(propertyIDs) == 0 {
		return map[string]domain.Property{}, nil
	}

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = ANY($1);`
	rows, err := r.pool.Query(ctx, query, propertyIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query properties by IDs", err)
	}
	defer rows.Close()

	propertiesMap := make(map[string]domain.Property)
	for rows.Next() {
		var m models.Property
		err := rows.Scan(
			&m.PropertyID,
			&m.Title,
			&m.City,
			&m.Status,
			&m.TotalValue,
			&m.FundingTarget,
			&m.FundingRaised,
			&m.MinInvestment,
			&m.MaxInvestment,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan property row", err)
		}
		propertiesMap[m.PropertyID] = mapping.ToDomainProperty(m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating property rows", err)
	}

	return propertiesMap, nil
}

// IncrementFundingRaised adds amount to the property's funding counter within
// the given transaction. The caller must hold the row lock and have validated
// headroom; the WHERE guard is a backstop, not the admission check.
func (r *PgxPropertyRepository) IncrementFundingRaised(ctx context.Context, tx pgx.Tx, propertyID string, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE properties
		SET funding_raised = funding_raised + $2, updated_at = $3
		WHERE property_id = $1 AND funding_raised + $2 <= funding_target;
	`
	cmdTag, err := tx.Exec(ctx, query, propertyID, amount, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to increment funding for property "+propertyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the property vanished or the increment would overshoot the
		// target; both mean the validated snapshot no longer holds.
		return apperrors.NewAppError(500, "funding increment rejected for property "+propertyID, apperrors.ErrExceedsFundingTarget)
	}
	return nil
}
