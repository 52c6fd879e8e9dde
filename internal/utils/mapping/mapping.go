package mapping

import (
	"github.com/propstake/propstake_backend/internal/core/domain"
	"github.com/propstake/propstake_backend/internal/models"
)

// ToDomainProperty converts a DB property model to its domain representation.
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		PropertyID:    m.PropertyID,
		Title:         m.Title,
		City:          m.City,
		Status:        domain.PropertyStatus(m.Status),
		TotalValue:    m.TotalValue,
		FundingTarget: m.FundingTarget,
		FundingRaised: m.FundingRaised,
		MinInvestment: m.MinInvestment,
		MaxInvestment: m.MaxInvestment,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainUser converts a DB user model to its domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		Name:          m.Name,
		Email:         m.Email,
		WalletBalance: m.WalletBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToModelInvestment converts a domain investment for DB storage.
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:        d.InvestmentID,
		UserID:              d.UserID,
		PropertyID:          d.PropertyID,
		AmountInvested:      d.AmountInvested,
		SharesOwned:         d.SharesOwned,
		OwnershipPercentage: d.OwnershipPercentage,
		ReturnsEarned:       d.ReturnsEarned,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainInvestment converts a DB investment model to its domain representation.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:        m.InvestmentID,
		UserID:              m.UserID,
		PropertyID:          m.PropertyID,
		AmountInvested:      m.AmountInvested,
		SharesOwned:         m.SharesOwned,
		OwnershipPercentage: m.OwnershipPercentage,
		ReturnsEarned:       m.ReturnsEarned,
		CreatedAt:           m.CreatedAt,
	}
}

// ToDomainInvestmentSlice converts a slice of DB investment models.
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	out := make([]domain.Investment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainInvestment(m)
	}
	return out
}

// ToModelLedgerEntry converts a domain ledger entry for DB storage.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		LedgerEntryID: d.LedgerEntryID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Type:          string(d.Type),
		Description:   d.Description,
		BalanceAfter:  d.BalanceAfter,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of DB ledger entry models.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = domain.LedgerEntry{
			LedgerEntryID: m.LedgerEntryID,
			UserID:        m.UserID,
			Amount:        m.Amount,
			Type:          domain.LedgerEntryType(m.Type),
			Description:   m.Description,
			BalanceAfter:  m.BalanceAfter,
			CreatedAt:     m.CreatedAt,
		}
	}
	return out
}

// ToModelAuditLog converts a domain audit log entry for DB storage.
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditLogID: d.AuditLogID,
		UserID:     d.UserID,
		Action:     string(d.Action),
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		NewValues:  d.NewValues,
		IPAddress:  d.IPAddress,
		CreatedAt:  d.CreatedAt,
	}
}
