package models

// AccountGroup maps the account_groups table.
type AccountGroup struct {
	GroupID string `json:"groupID"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	AuditFields
}

// GeneralLedgerAccount maps the general_ledger_accounts table.
type GeneralLedgerAccount struct {
	GLID    string `json:"glID"`
	GroupID string `json:"groupID"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	AuditFields
}

// SubsidiaryAccount maps the subsidiary_accounts (moein) table.
type SubsidiaryAccount struct {
	MoeinID string `json:"moeinID"`
	GLID    string `json:"glID"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	AuditFields
}

// DetailAccountType mirrors domain.DetailAccountType at the storage layer.
type DetailAccountType string

// DetailAccount maps the detail_accounts (tafsili) table.
type DetailAccount struct {
	TafsiliID   string            `json:"tafsiliID"`
	TenantID    string            `json:"tenantID"`
	Code        string            `json:"code"`
	Title       string            `json:"title"`
	TafsiliType DetailAccountType `json:"tafsiliType"`
	RefID       string            `json:"refID"`
	IsActive    bool              `json:"isActive"`
	AuditFields
}
