package mapping

import (
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/models"
)

// ToModelCheque converts a domain Cheque to a model Cheque
func ToModelCheque(d domain.Cheque) models.Cheque {
	return models.Cheque{
		ChequeID:     d.ChequeID,
		TenantID:     d.TenantID,
		ChequeType:   models.ChequeType(d.ChequeType),
		Amount:       d.Amount,
		SerialNo:     d.SerialNo,
		DueDate:      d.DueDate,
		Status:       models.ChequeStatus(d.Status),
		OwnerID:      d.OwnerID,
		ReceiverID:   d.ReceiverID,
		TargetBankID: d.TargetBankID,
		CheckbookID:  d.CheckbookID,
		Note:         d.Note,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheque converts a model Cheque to a domain Cheque
func ToDomainCheque(m models.Cheque) domain.Cheque {
	return domain.Cheque{
		ChequeID:     m.ChequeID,
		TenantID:     m.TenantID,
		ChequeType:   domain.ChequeType(m.ChequeType),
		Amount:       m.Amount,
		SerialNo:     m.SerialNo,
		DueDate:      m.DueDate,
		Status:       domain.ChequeStatus(m.Status),
		OwnerID:      m.OwnerID,
		ReceiverID:   m.ReceiverID,
		TargetBankID: m.TargetBankID,
		CheckbookID:  m.CheckbookID,
		Note:         m.Note,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCheckbook converts a domain Checkbook to a model Checkbook
func ToModelCheckbook(d domain.Checkbook) models.Checkbook {
	return models.Checkbook{
		CheckbookID: d.CheckbookID,
		TenantID:    d.TenantID,
		BankID:      d.BankID,
		Title:       d.Title,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheckbook converts a model Checkbook to a domain Checkbook
func ToDomainCheckbook(m models.Checkbook) domain.Checkbook {
	return domain.Checkbook{
		CheckbookID: m.CheckbookID,
		TenantID:    m.TenantID,
		BankID:      m.BankID,
		Title:       m.Title,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
