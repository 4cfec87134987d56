package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeCosts carries the broken-out monetary fields of an operational event.
// Zero or absent categories contribute nothing to the posting.
type ChargeCosts struct {
	Warehousing   decimal.Decimal `json:"warehousing"`
	Loading       decimal.Decimal `json:"loading"`
	Unloading     decimal.Decimal `json:"unloading"`
	Freight       decimal.Decimal `json:"freight"`
	Tax           decimal.Decimal `json:"tax"`
	ReturnFreight decimal.Decimal `json:"returnFreight"`
	Misc          decimal.Decimal `json:"misc"`
}

// PaymentSourceRef declares where an operator-paid charge was settled from.
// Absent source means the customer owes the total on account.
type PaymentSourceRef struct {
	Type     string `json:"type" binding:"required,oneof=BANK POS CASH"`
	SourceID string `json:"sourceID" binding:"required"`
}

// OperationalChargeRequest is the payload of a goods receipt/exit event.
type OperationalChargeRequest struct {
	Kind          string            `json:"kind" binding:"required,oneof=receipt exit"`
	CustomerID    string            `json:"customerID" binding:"required"`
	Costs         ChargeCosts       `json:"costs"`
	PaymentSource *PaymentSourceRef `json:"paymentSource,omitempty"`
	ReferenceNo   string            `json:"referenceNo" binding:"required"`
	Date          time.Time         `json:"date" binding:"required"`
}

// ChargeResult reports the outcome of an operational-charge posting.
// Posted is false when every cost category was zero and nothing was written.
type ChargeResult struct {
	Posted   bool            `json:"posted"`
	Total    decimal.Decimal `json:"total"`
	Document *DocumentResult `json:"document,omitempty"`
}
