package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeType distinguishes instruments we hold from instruments we issued.
type ChequeType string

const (
	ChequeReceivable ChequeType = "RECEIVABLE"
	ChequePayable    ChequeType = "PAYABLE"
)

// ChequeStatus is the lifecycle state of an instrument.
type ChequeStatus string

const (
	ChequePending   ChequeStatus = "PENDING"   // receivable, held, not yet moved
	ChequeIssued    ChequeStatus = "ISSUED"    // payable, handed out, not yet cleared
	ChequeSpent     ChequeStatus = "SPENT"     // terminal
	ChequeDeposited ChequeStatus = "DEPOSITED" // sent for collection
	ChequePassed    ChequeStatus = "PASSED"    // terminal
	ChequeBounced   ChequeStatus = "BOUNCED"   // terminal
	ChequeReturned  ChequeStatus = "RETURNED"  // terminal
)

// IsTerminal reports whether no further transition is defined for s.
func (s ChequeStatus) IsTerminal() bool {
	switch s {
	case ChequeSpent, ChequePassed, ChequeBounced, ChequeReturned:
		return true
	}
	return false
}

// Cheque is a negotiable-instrument record tracked through custody and
// clearing states. OwnerID and ReceiverID reference detail accounts of the
// counterparties; TargetBankID is learned on deposit/pass.
type Cheque struct {
	ChequeID     string          `json:"chequeID"` // Primary Key (UUID)
	TenantID     string          `json:"tenantID"`
	ChequeType   ChequeType      `json:"chequeType"`
	Amount       decimal.Decimal `json:"amount"`
	SerialNo     string          `json:"serialNo"`
	DueDate      time.Time       `json:"dueDate"`
	Status       ChequeStatus    `json:"status"`
	OwnerID      string          `json:"ownerID,omitempty"`      // tafsili of the original counterparty
	ReceiverID   string          `json:"receiverID,omitempty"`   // tafsili the instrument was handed to
	TargetBankID string          `json:"targetBankID,omitempty"` // bank record id, once deposited/passed
	CheckbookID  string          `json:"checkbookID,omitempty"`  // payables only
	Note         string          `json:"note,omitempty"`
	AuditFields
}

// Checkbook is the issuing book for payable cheques: serial numbers are
// unique within their checkbook and the book is tied to one bank account.
type Checkbook struct {
	CheckbookID string `json:"checkbookID"` // Primary Key (UUID)
	TenantID    string `json:"tenantID"`
	BankID      string `json:"bankID"` // bank account the cheques draw on
	Title       string `json:"title"`
	AuditFields
}
