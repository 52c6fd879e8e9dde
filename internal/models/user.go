package models

import "github.com/shopspring/decimal"

// User represents a row of the users table. Only the wallet columns are
// touched by this service; profile/KYC columns live elsewhere.
type User struct {
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	WalletBalance decimal.Decimal `db:"wallet_balance"`
	AuditFields
}
