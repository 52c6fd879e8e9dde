package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/propstake/propstake_backend/internal/core/domain"
)

// AuditRepositoryFacade defines the required audit-log sink. A failed audit
// insert propagates and rolls back the transaction it is part of.
type AuditRepositoryFacade interface {
	RecordAction(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error
}
