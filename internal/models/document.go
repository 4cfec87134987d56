package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus mirrors domain.DocumentStatus at the storage layer.
type DocumentStatus string

// DocumentType mirrors domain.DocumentType at the storage layer.
type DocumentType string

// FinancialDocument maps the financial_documents table.
type FinancialDocument struct {
	DocumentID    string         `json:"documentID"`
	TenantID      string         `json:"tenantID"`
	DocumentNo    int64          `json:"documentNo"`
	DocumentDate  time.Time      `json:"documentDate"`
	Description   string         `json:"description"`
	Status        DocumentStatus `json:"status"`
	DocumentType  DocumentType   `json:"documentType"`
	ReferenceID   string         `json:"referenceID"`
	ReferenceType string         `json:"referenceType"`
	AuditFields
}

// FinancialEntry maps the financial_entries table.
type FinancialEntry struct {
	EntryID     string          `json:"entryID"`
	DocumentID  string          `json:"documentID"`
	MoeinID     string          `json:"moeinID"`
	TafsiliID   string          `json:"tafsiliID"`
	Bed         decimal.Decimal `json:"bed"`
	Bes         decimal.Decimal `json:"bes"`
	Description string          `json:"description"`
	AuditFields
}
