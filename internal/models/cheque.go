package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeType mirrors domain.ChequeType at the storage layer.
type ChequeType string

// ChequeStatus mirrors domain.ChequeStatus at the storage layer.
type ChequeStatus string

// Cheque maps the cheques table.
type Cheque struct {
	ChequeID     string          `json:"chequeID"`
	TenantID     string          `json:"tenantID"`
	ChequeType   ChequeType      `json:"chequeType"`
	Amount       decimal.Decimal `json:"amount"`
	SerialNo     string          `json:"serialNo"`
	DueDate      time.Time       `json:"dueDate"`
	Status       ChequeStatus    `json:"status"`
	OwnerID      string          `json:"ownerID"`
	ReceiverID   string          `json:"receiverID"`
	TargetBankID string          `json:"targetBankID"`
	CheckbookID  string          `json:"checkbookID"`
	Note         string          `json:"note"`
	AuditFields
}

// Checkbook maps the checkbooks table.
type Checkbook struct {
	CheckbookID string `json:"checkbookID"`
	TenantID    string `json:"tenantID"`
	BankID      string `json:"bankID"`
	Title       string `json:"title"`
	AuditFields
}
