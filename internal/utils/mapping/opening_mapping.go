package mapping

import (
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/models"
)

// ToModelOpeningBalance converts a domain OpeningBalance to its model form.
func ToModelOpeningBalance(d domain.OpeningBalance) models.OpeningBalance {
	return models.OpeningBalance{
		OpeningID:   d.OpeningID,
		TenantID:    d.TenantID,
		Section:     models.OpeningSection(d.Section),
		Description: d.Description,
		DocumentID:  d.DocumentID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOpeningBalance converts a model OpeningBalance to its domain form.
func ToDomainOpeningBalance(m models.OpeningBalance) domain.OpeningBalance {
	return domain.OpeningBalance{
		OpeningID:   m.OpeningID,
		TenantID:    m.TenantID,
		Section:     domain.OpeningSection(m.Section),
		Description: m.Description,
		DocumentID:  m.DocumentID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOpeningItem converts a domain OpeningBalanceItem to its model form.
func ToModelOpeningItem(d domain.OpeningBalanceItem) models.OpeningBalanceItem {
	return models.OpeningBalanceItem{
		ItemID:      d.ItemID,
		OpeningID:   d.OpeningID,
		RefID:       d.RefID,
		Quantity:    d.Quantity,
		Amount:      d.Amount,
		Direction:   models.EntryDirection(d.Direction),
		Posted:      d.Posted,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOpeningItem converts a model OpeningBalanceItem to its domain form.
func ToDomainOpeningItem(m models.OpeningBalanceItem) domain.OpeningBalanceItem {
	return domain.OpeningBalanceItem{
		ItemID:      m.ItemID,
		OpeningID:   m.OpeningID,
		RefID:       m.RefID,
		Quantity:    m.Quantity,
		Amount:      m.Amount,
		Direction:   domain.EntryDirection(m.Direction),
		Posted:      m.Posted,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
