package dto

import "github.com/shopspring/decimal"

// OpeningItemRequest is one seeded quantity or amount. Direction is required
// only for the customers section.
type OpeningItemRequest struct {
	RefID     string          `json:"refID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction" binding:"omitempty,oneof=DEBIT CREDIT"`
}

// OpeningBalanceRequest seeds one section of historical balances.
type OpeningBalanceRequest struct {
	Description string               `json:"description"`
	Items       []OpeningItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OpeningBalanceResult reports a completed registration. Count is the number
// of items actually applied; Skipped counts items dropped for non-positive
// values or (customers/banks/cashes) missing records — the two never overlap.
// Document is set for the customers section only.
type OpeningBalanceResult struct {
	OpeningID string          `json:"openingID"`
	Count     int             `json:"count"`
	Skipped   int             `json:"skipped"`
	Document  *DocumentResult `json:"document,omitempty"`
}
