package models

import "github.com/shopspring/decimal"

// OpeningSection mirrors domain.OpeningSection at the storage layer.
type OpeningSection string

// EntryDirection mirrors domain.EntryDirection at the storage layer.
type EntryDirection string

// OpeningBalance maps the opening_balances table.
type OpeningBalance struct {
	OpeningID   string         `json:"openingID"`
	TenantID    string         `json:"tenantID"`
	Section     OpeningSection `json:"section"`
	Description string         `json:"description"`
	DocumentID  string         `json:"documentID"`
	AuditFields
}

// OpeningBalanceItem maps the opening_balance_items table.
type OpeningBalanceItem struct {
	ItemID    string          `json:"itemID"`
	OpeningID string          `json:"openingID"`
	RefID     string          `json:"refID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Direction EntryDirection  `json:"direction"`
	Posted    bool            `json:"posted"`
	AuditFields
}
