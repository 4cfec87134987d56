package mapping

import (
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/models"
)

// ToDomainSubsidiaryAccount converts a model SubsidiaryAccount to its domain form.
func ToDomainSubsidiaryAccount(m models.SubsidiaryAccount) domain.SubsidiaryAccount {
	return domain.SubsidiaryAccount{
		MoeinID:     m.MoeinID,
		GLID:        m.GLID,
		Code:        m.Code,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDetailAccount converts a domain DetailAccount to a model DetailAccount
func ToModelDetailAccount(d domain.DetailAccount) models.DetailAccount {
	return models.DetailAccount{
		TafsiliID:   d.TafsiliID,
		TenantID:    d.TenantID,
		Code:        d.Code,
		Title:       d.Title,
		TafsiliType: models.DetailAccountType(d.TafsiliType),
		RefID:       d.RefID,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDetailAccount converts a model DetailAccount to a domain DetailAccount
func ToDomainDetailAccount(m models.DetailAccount) domain.DetailAccount {
	return domain.DetailAccount{
		TafsiliID:   m.TafsiliID,
		TenantID:    m.TenantID,
		Code:        m.Code,
		Title:       m.Title,
		TafsiliType: domain.DetailAccountType(m.TafsiliType),
		RefID:       m.RefID,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
