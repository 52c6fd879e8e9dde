package domain

import "github.com/shopspring/decimal"

// User represents an investor with a platform wallet. The investment engine
// only ever decrements WalletBalance; deposits happen elsewhere. The balance
// must stay non-negative after every commit.
type User struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	AuditFields
}
