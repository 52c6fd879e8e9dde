package domain

import "time"

// AuditAction names a state-changing action recorded in the audit log.
type AuditAction string

const (
	ActionInvestment AuditAction = "investment"
)

// AuditLog is the required compliance record of a state-changing action.
// Unlike the ledger entry, a failed audit insert aborts the whole transaction:
// an investment that cannot be audited must not exist.
type AuditLog struct {
	AuditLogID string      `json:"auditLogID"`
	UserID     string      `json:"userID"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entityType"`
	EntityID   string      `json:"entityID"`
	NewValues  []byte      `json:"newValues"` // JSON payload of the change
	IPAddress  string      `json:"ipAddress"`
	CreatedAt  time.Time   `json:"createdAt"`
}
