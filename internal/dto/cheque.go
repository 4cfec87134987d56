package dto

import (
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateChequeRequest records a receivable cheque handed over by a customer.
type CreateChequeRequest struct {
	CustomerID string          `json:"customerID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	SerialNo   string          `json:"serialNo" binding:"required"`
	DueDate    time.Time       `json:"dueDate" binding:"required"`
	Note       string          `json:"note"`
}

// CreateCheckbookRequest registers a checkbook drawing on a bank account.
type CreateCheckbookRequest struct {
	BankID string `json:"bankID" binding:"required"`
	Title  string `json:"title" binding:"required"`
}

// IssueChequeRequest issues a payable cheque from a checkbook.
type IssueChequeRequest struct {
	CustomerID string          `json:"customerID" binding:"required"` // party the cheque is handed to
	Amount     decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	SerialNo   string          `json:"serialNo" binding:"required"`
	DueDate    time.Time       `json:"dueDate" binding:"required"`
	Note       string          `json:"note"`
}

// SpendChequeRequest endorses a held receivable cheque over to another party.
type SpendChequeRequest struct {
	TargetCustomerID string    `json:"targetCustomerID" binding:"required"`
	Date             time.Time `json:"date" binding:"required"`
	Note             string    `json:"note"`
}

// DepositChequeRequest sends a held cheque to a bank for collection.
type DepositChequeRequest struct {
	BankID string    `json:"bankID" binding:"required"`
	Date   time.Time `json:"date" binding:"required"`
	Note   string    `json:"note"`
}

// CashDepositChequeRequest cashes a held cheque directly into a cash box.
type CashDepositChequeRequest struct {
	CashID string    `json:"cashID" binding:"required"`
	Date   time.Time `json:"date" binding:"required"`
	Note   string    `json:"note"`
}

// PassChequeRequest clears a cheque. BankID is optional: for payables the
// engine falls back to the cheque's recorded target bank, then the issuing
// checkbook's bank.
type PassChequeRequest struct {
	BankID string    `json:"bankID"`
	Date   time.Time `json:"date" binding:"required"`
	Note   string    `json:"note"`
}

// BounceChequeRequest marks a cheque as bounced.
type BounceChequeRequest struct {
	Date time.Time `json:"date" binding:"required"`
	Note string    `json:"note"`
}

// ReturnChequeRequest hands a held cheque back to its original owner.
type ReturnChequeRequest struct {
	Date time.Time `json:"date" binding:"required"`
	Note string    `json:"note"`
}

// TransitionResult reports a lifecycle transition and the posting it emitted.
type TransitionResult struct {
	ChequeID   string `json:"chequeID"`
	NewStatus  string `json:"newStatus"`
	DocumentID string `json:"documentID"`
	DocumentNo int64  `json:"documentNo"`
}

// ChequeResponse defines the data returned for a cheque.
type ChequeResponse struct {
	ChequeID     string          `json:"chequeID"`
	ChequeType   string          `json:"chequeType"`
	Amount       decimal.Decimal `json:"amount"`
	SerialNo     string          `json:"serialNo"`
	DueDate      time.Time       `json:"dueDate"`
	Status       string          `json:"status"`
	OwnerID      string          `json:"ownerID,omitempty"`
	ReceiverID   string          `json:"receiverID,omitempty"`
	TargetBankID string          `json:"targetBankID,omitempty"`
	CheckbookID  string          `json:"checkbookID,omitempty"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToChequeResponse converts a domain.Cheque to ChequeResponse.
func ToChequeResponse(c *domain.Cheque) ChequeResponse {
	return ChequeResponse{
		ChequeID:     c.ChequeID,
		ChequeType:   string(c.ChequeType),
		Amount:       c.Amount,
		SerialNo:     c.SerialNo,
		DueDate:      c.DueDate,
		Status:       string(c.Status),
		OwnerID:      c.OwnerID,
		ReceiverID:   c.ReceiverID,
		TargetBankID: c.TargetBankID,
		CheckbookID:  c.CheckbookID,
		Note:         c.Note,
		CreatedAt:    c.CreatedAt,
	}
}

// ToChequeResponses converts a slice of cheques.
func ToChequeResponses(cheques []domain.Cheque) []ChequeResponse {
	responses := make([]ChequeResponse, len(cheques))
	for i := range cheques {
		responses[i] = ToChequeResponse(&cheques[i])
	}
	return responses
}
