package models

import "github.com/shopspring/decimal"

// Customer maps the customers table.
type Customer struct {
	CustomerID string `json:"customerID"`
	TenantID   string `json:"tenantID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	TafsiliID  string `json:"tafsiliID"`
	AuditFields
}

// BankAccount maps the bank_accounts table.
type BankAccount struct {
	BankID         string          `json:"bankID"`
	TenantID       string          `json:"tenantID"`
	Title          string          `json:"title"`
	AccountNo      string          `json:"accountNo"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	TafsiliID      string          `json:"tafsiliID"`
	AuditFields
}

// CashBox maps the cash_boxes table.
type CashBox struct {
	CashID         string          `json:"cashID"`
	TenantID       string          `json:"tenantID"`
	Title          string          `json:"title"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	TafsiliID      string          `json:"tafsiliID"`
	AuditFields
}

// PosTerminal maps the pos_terminals table.
type PosTerminal struct {
	PosID     string `json:"posID"`
	TenantID  string `json:"tenantID"`
	Title     string `json:"title"`
	BankID    string `json:"bankID"`
	TafsiliID string `json:"tafsiliID"`
	AuditFields
}
