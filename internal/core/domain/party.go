package domain

import "github.com/shopspring/decimal"

// PaymentSourceType tags where a charge was settled from.
type PaymentSourceType string

const (
	SourceBank PaymentSourceType = "BANK"
	SourcePos  PaymentSourceType = "POS"
	SourceCash PaymentSourceType = "CASH"
)

// Customer is the collaborating inventory system's counterparty record. The
// engine only reads it and back-links the lazily provisioned tafsili.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	TenantID   string `json:"tenantID"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	TafsiliID  string `json:"tafsiliID,omitempty"`
	AuditFields
}

// BankAccount is a tenant bank account. Its tafsili is provisioned eagerly on
// creation; InitialBalance is overwritten by the banks opening-balance
// section.
type BankAccount struct {
	BankID         string          `json:"bankID"` // Primary Key (UUID)
	TenantID       string          `json:"tenantID"`
	Title          string          `json:"title"`
	AccountNo      string          `json:"accountNo"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	TafsiliID      string          `json:"tafsiliID,omitempty"`
	AuditFields
}

// CashBox is a tenant cash drawer, tafsili provisioned eagerly.
type CashBox struct {
	CashID         string          `json:"cashID"` // Primary Key (UUID)
	TenantID       string          `json:"tenantID"`
	Title          string          `json:"title"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	TafsiliID      string          `json:"tafsiliID,omitempty"`
	AuditFields
}

// PosTerminal is a card terminal settling into a bank account.
type PosTerminal struct {
	PosID     string `json:"posID"` // Primary Key (UUID)
	TenantID  string `json:"tenantID"`
	Title     string `json:"title"`
	BankID    string `json:"bankID,omitempty"`
	TafsiliID string `json:"tafsiliID,omitempty"`
	AuditFields
}

// FundingSource is the resolved source of funds for an operator-paid charge:
// the moein mapped from the source type plus the tafsili of the concrete
// bank/cash/pos record, when one was found.
type FundingSource struct {
	Moein   SubsidiaryAccount
	Tafsili *DetailAccount // nil when no source record matched
}
