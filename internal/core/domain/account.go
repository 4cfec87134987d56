package domain

// AccountGroup is the top level of the chart-of-accounts hierarchy.
// Groups are global (shared across tenants) and seeded by migration.
type AccountGroup struct {
	GroupID string `json:"groupID"` // Primary Key (UUID)
	Code    string `json:"code"`
	Name    string `json:"name"`
	AuditFields
}

// GeneralLedgerAccount (kol) belongs to exactly one AccountGroup.
// Like groups, GL accounts are global and effectively immutable.
type GeneralLedgerAccount struct {
	GLID    string `json:"glID"` // Primary Key (UUID)
	GroupID string `json:"groupID"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	AuditFields
}

// SubsidiaryAccount (moein) classifies the nature of a posting line:
// cash, bank, customer receivable, VAT, a specific income category.
// Auto-posting rules reference moeins by their fixed code, never by name,
// and never create them at runtime.
type SubsidiaryAccount struct {
	MoeinID string `json:"moeinID"` // Primary Key (UUID)
	GLID    string `json:"glID"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	AuditFields
}

// DetailAccountType identifies which kind of business record a detail
// account represents.
type DetailAccountType string

const (
	DetailCustomer DetailAccountType = "CUSTOMER"
	DetailBank     DetailAccountType = "BANK"
	DetailCash     DetailAccountType = "CASH"
	DetailPos      DetailAccountType = "POS"
)

// DetailAccount (tafsili) is the tenant-scoped leaf of the hierarchy: one per
// customer, bank account, cash box or POS terminal. Codes are sequential per
// (tenant, type), zero padded, and never recycled.
type DetailAccount struct {
	TafsiliID   string            `json:"tafsiliID"` // Primary Key (UUID)
	TenantID    string            `json:"tenantID"`
	Code        string            `json:"code"`
	Title       string            `json:"title"`
	TafsiliType DetailAccountType `json:"tafsiliType"`
	RefID       string            `json:"refID"` // originating business record
	IsActive    bool              `json:"isActive"`
	AuditFields
}
