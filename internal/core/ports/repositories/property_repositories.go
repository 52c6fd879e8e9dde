package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/propstake/propstake_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PropertyRepositoryFacade defines persistence operations for properties.
// The ForUpdate variant must be called inside a transaction; it acquires an
// exclusive row lock that is held until the transaction ends.
type PropertyRepositoryFacade interface {
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)
	FindPropertiesByIDs(ctx context.Context, propertyIDs []string) (map[string]domain.Property, error)
	FindPropertyByIDForUpdate(ctx context.Context, tx pgx.Tx, propertyID string) (*domain.Property, error)
	IncrementFundingRaised(ctx context.Context, tx pgx.Tx, propertyID string, amount decimal.Decimal, now time.Time) error
}
