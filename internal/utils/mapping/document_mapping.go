package mapping

import (
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/models"
)

// ToModelDocument converts a domain FinancialDocument to a model FinancialDocument
func ToModelDocument(d domain.FinancialDocument) models.FinancialDocument {
	return models.FinancialDocument{
		DocumentID:    d.DocumentID,
		TenantID:      d.TenantID,
		DocumentNo:    d.DocumentNo,
		DocumentDate:  d.DocumentDate,
		Description:   d.Description,
		Status:        models.DocumentStatus(d.Status),
		DocumentType:  models.DocumentType(d.DocumentType),
		ReferenceID:   d.ReferenceID,
		ReferenceType: d.ReferenceType,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model FinancialDocument to a domain FinancialDocument
func ToDomainDocument(m models.FinancialDocument) domain.FinancialDocument {
	return domain.FinancialDocument{
		DocumentID:    m.DocumentID,
		TenantID:      m.TenantID,
		DocumentNo:    m.DocumentNo,
		DocumentDate:  m.DocumentDate,
		Description:   m.Description,
		Status:        domain.DocumentStatus(m.Status),
		DocumentType:  domain.DocumentType(m.DocumentType),
		ReferenceID:   m.ReferenceID,
		ReferenceType: m.ReferenceType,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntry converts a domain FinancialEntry to a model FinancialEntry
func ToModelEntry(d domain.FinancialEntry) models.FinancialEntry {
	return models.FinancialEntry{
		EntryID:     d.EntryID,
		DocumentID:  d.DocumentID,
		MoeinID:     d.MoeinID,
		TafsiliID:   d.TafsiliID,
		Bed:         d.Bed,
		Bes:         d.Bes,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model FinancialEntry to a domain FinancialEntry
func ToDomainEntry(m models.FinancialEntry) domain.FinancialEntry {
	return domain.FinancialEntry{
		EntryID:     m.EntryID,
		DocumentID:  m.DocumentID,
		MoeinID:     m.MoeinID,
		TafsiliID:   m.TafsiliID,
		Bed:         m.Bed,
		Bes:         m.Bes,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model entries to domain entries.
func ToDomainEntrySlice(ms []models.FinancialEntry) []domain.FinancialEntry {
	entries := make([]domain.FinancialEntry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainEntry(m)
	}
	return entries
}
