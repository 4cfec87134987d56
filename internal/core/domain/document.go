package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus indicates the state of a financial document.
type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "DRAFT"
	DocumentConfirmed DocumentStatus = "CONFIRMED"
)

// DocumentType tags the originating process of a financial document.
type DocumentType string

const (
	DocAutoReceipt    DocumentType = "auto_receipt"
	DocAutoExit       DocumentType = "auto_exit"
	DocOpeningBalance DocumentType = "opening_balance"
	DocChequeSpend    DocumentType = "cheque_spend"
	DocChequeDeposit  DocumentType = "cheque_deposit"
	DocChequePass     DocumentType = "cheque_pass"
	DocChequeBounce   DocumentType = "cheque_bounce"
	DocChequeReturn   DocumentType = "cheque_return"
	DocManual         DocumentType = "manual"
)

// FinancialDocument is a tenant-scoped posting header. Documents are created
// atomically with their entries and carry a sequential per-tenant number.
type FinancialDocument struct {
	DocumentID   string         `json:"documentID"` // Primary Key (UUID)
	TenantID     string         `json:"tenantID"`
	DocumentNo   int64          `json:"documentNo"` // sequential per tenant
	DocumentDate time.Time      `json:"documentDate"`
	Description  string         `json:"description"`
	Status       DocumentStatus `json:"status"`
	DocumentType DocumentType   `json:"documentType"`
	// Optional back-reference to the originating operational record.
	ReferenceID   string `json:"referenceID,omitempty"`
	ReferenceType string `json:"referenceType,omitempty"`
	AuditFields
	Entries []FinancialEntry `json:"entries,omitempty"` // loaded on demand
}

// FinancialEntry is one posting line of a document. Exactly one of Bed
// (debit) and Bes (credit) is normally non-zero.
type FinancialEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (UUID)
	DocumentID  string          `json:"documentID"`
	MoeinID     string          `json:"moeinID"`
	TafsiliID   string          `json:"tafsiliID,omitempty"` // optional detail account
	Bed         decimal.Decimal `json:"bed"`                 // debit
	Bes         decimal.Decimal `json:"bes"`                 // credit
	Description string          `json:"description"`
	AuditFields
}

// DebitEntry builds a debit line against moein (and optionally tafsili).
func DebitEntry(moeinID, tafsiliID string, amount decimal.Decimal, description string) FinancialEntry {
	return FinancialEntry{
		MoeinID:     moeinID,
		TafsiliID:   tafsiliID,
		Bed:         amount,
		Bes:         decimal.Zero,
		Description: description,
	}
}

// CreditEntry builds a credit line against moein (and optionally tafsili).
func CreditEntry(moeinID, tafsiliID string, amount decimal.Decimal, description string) FinancialEntry {
	return FinancialEntry{
		MoeinID:     moeinID,
		TafsiliID:   tafsiliID,
		Bed:         decimal.Zero,
		Bes:         amount,
		Description: description,
	}
}
