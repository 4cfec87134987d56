package mapping

import (
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/models"
)

// ToDomainCustomer converts a model Customer to its domain form.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Phone:       m.Phone,
		TafsiliID:   m.TafsiliID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCustomer converts a domain Customer to its model form.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		Phone:       d.Phone,
		TafsiliID:   d.TafsiliID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to its domain form.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankID:         m.BankID,
		TenantID:       m.TenantID,
		Title:          m.Title,
		AccountNo:      m.AccountNo,
		InitialBalance: m.InitialBalance,
		TafsiliID:      m.TafsiliID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankAccount converts a domain BankAccount to its model form.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankID:         d.BankID,
		TenantID:       d.TenantID,
		Title:          d.Title,
		AccountNo:      d.AccountNo,
		InitialBalance: d.InitialBalance,
		TafsiliID:      d.TafsiliID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashBox converts a model CashBox to its domain form.
func ToDomainCashBox(m models.CashBox) domain.CashBox {
	return domain.CashBox{
		CashID:         m.CashID,
		TenantID:       m.TenantID,
		Title:          m.Title,
		InitialBalance: m.InitialBalance,
		TafsiliID:      m.TafsiliID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCashBox converts a domain CashBox to its model form.
func ToModelCashBox(d domain.CashBox) models.CashBox {
	return models.CashBox{
		CashID:         d.CashID,
		TenantID:       d.TenantID,
		Title:          d.Title,
		InitialBalance: d.InitialBalance,
		TafsiliID:      d.TafsiliID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPosTerminal converts a model PosTerminal to its domain form.
func ToDomainPosTerminal(m models.PosTerminal) domain.PosTerminal {
	return domain.PosTerminal{
		PosID:       m.PosID,
		TenantID:    m.TenantID,
		Title:       m.Title,
		BankID:      m.BankID,
		TafsiliID:   m.TafsiliID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPosTerminal converts a domain PosTerminal to its model form.
func ToModelPosTerminal(d domain.PosTerminal) models.PosTerminal {
	return models.PosTerminal{
		PosID:       d.PosID,
		TenantID:    d.TenantID,
		Title:       d.Title,
		BankID:      d.BankID,
		TafsiliID:   d.TafsiliID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
