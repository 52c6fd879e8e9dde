package models

import "time"

// AuditLog represents a row of the append-only audit_logs table.
type AuditLog struct {
	AuditLogID string    `db:"audit_log_id"`
	UserID     string    `db:"user_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	NewValues  []byte    `db:"new_values"`
	IPAddress  string    `db:"ip_address"`
	CreatedAt  time.Time `db:"created_at"`
}
