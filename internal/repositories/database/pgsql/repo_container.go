package pgsql

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories. When lockRows is false
// the store runs in degraded mode: property and wallet reads skip FOR UPDATE
// and concurrent invest calls are no longer serialized. This mode is chosen
// explicitly by configuration at startup, never detected per call.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockRows bool) portsrepo.RepositoryProvider {
	if !lockRows {
		slog.Warn("Store running in degraded mode without row locks; concurrent investment correctness is NOT guaranteed")
	}

	propertyRepo := newPgxPropertyRepository(dbPool, lockRows)
	userRepo := newPgxUserRepository(dbPool, lockRows)
	investmentRepo := newPgxInvestmentRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PropertyRepo:   propertyRepo,
		UserRepo:       userRepo,
		InvestmentRepo: investmentRepo,
		LedgerRepo:     ledgerRepo,
		AuditRepo:      auditRepo,
	}
}
