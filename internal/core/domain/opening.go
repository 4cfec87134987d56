package domain

import "github.com/shopspring/decimal"

// OpeningSection is one seedable area of historical balances. Each section
// may be registered at most once per tenant.
type OpeningSection string

const (
	SectionInventory OpeningSection = "inventory"
	SectionCustomers OpeningSection = "customers"
	SectionBanks     OpeningSection = "banks"
	SectionCashes    OpeningSection = "cashes"
)

// ValidOpeningSection reports whether s names a known section.
func ValidOpeningSection(s OpeningSection) bool {
	switch s {
	case SectionInventory, SectionCustomers, SectionBanks, SectionCashes:
		return true
	}
	return false
}

// EntryDirection declares which side of the ledger a customer opening item
// lands on.
type EntryDirection string

const (
	DirectionDebit  EntryDirection = "DEBIT"
	DirectionCredit EntryDirection = "CREDIT"
)

// OpeningBalance is the per-(tenant, section) registration header. For the
// customers section it links the shared opening-balance document.
type OpeningBalance struct {
	OpeningID   string         `json:"openingID"` // Primary Key (UUID)
	TenantID    string         `json:"tenantID"`
	Section     OpeningSection `json:"section"`
	Description string         `json:"description"`
	DocumentID  string         `json:"documentID,omitempty"`
	AuditFields
}

// OpeningBalanceItem is one seeded quantity or amount. RefID points at the
// business record being seeded (goods, customer, bank or cash box).
// Direction is meaningful only for the customers section; Posted records
// whether a ledger line was produced for the item.
type OpeningBalanceItem struct {
	ItemID    string          `json:"itemID"` // Primary Key (UUID)
	OpeningID string          `json:"openingID"`
	RefID     string          `json:"refID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Direction EntryDirection  `json:"direction,omitempty"`
	Posted    bool            `json:"posted"`
	AuditFields
}
