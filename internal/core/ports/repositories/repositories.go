package repositories

// RepositoryProvider holds instances of all repositories, wired once at
// startup and handed to the service layer.
type RepositoryProvider struct {
	PropertyRepo   PropertyRepositoryFacade
	UserRepo       UserRepositoryFacade
	InvestmentRepo InvestmentRepositoryWithTx
	LedgerRepo     LedgerRepositoryFacade
	AuditRepo      AuditRepositoryFacade
}
