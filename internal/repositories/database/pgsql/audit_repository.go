package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/propstake/propstake_backend/internal/apperrors"
	"github.com/propstake/propstake_backend/internal/core/domain"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	"github.com/propstake/propstake_backend/internal/utils/mapping"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditRepository creates a new repository for audit log entries.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{pool: pool}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// RecordAction inserts an audit log entry within the given transaction.
// Unlike the ledger sink, a failure here propagates: the audit trail is a
// required durability guarantee for money-moving actions.
func (r *PgxAuditRepository) RecordAction(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)

	query := `
		INSERT INTO audit_logs (audit_log_id, user_id, action, entity_type, entity_id, new_values, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.AuditLogID,
		m.UserID,
		m.Action,
		m.EntityType,
		m.EntityID,
		m.NewValues,
		m.IPAddress,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log for entity "+m.EntityID, err)
	}
	return nil
}
