package repositories

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PartyReader defines read operations on the business records the engine
// provisions detail accounts for. Lookups take an optional tx so funding
// resolution and provisioning can read inside the posting transaction.
type PartyReader interface {
	FindCustomerByID(ctx context.Context, tx pgx.Tx, tenantID, customerID string) (*domain.Customer, error)
	FindBankByID(ctx context.Context, tx pgx.Tx, tenantID, bankID string) (*domain.BankAccount, error)
	FindCashByID(ctx context.Context, tx pgx.Tx, tenantID, cashID string) (*domain.CashBox, error)
	FindPosByID(ctx context.Context, tx pgx.Tx, tenantID, posID string) (*domain.PosTerminal, error)

	ListCustomers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Customer, error)
	ListBanks(ctx context.Context, tenantID string) ([]domain.BankAccount, error)
	ListCashes(ctx context.Context, tenantID string) ([]domain.CashBox, error)
	ListPosTerminals(ctx context.Context, tenantID string) ([]domain.PosTerminal, error)
}

// PartyWriter defines write operations for business records.
type PartyWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	SaveBank(ctx context.Context, bank domain.BankAccount) error
	SaveCash(ctx context.Context, cash domain.CashBox) error
	SavePos(ctx context.Context, pos domain.PosTerminal) error

	// SetBankInitialBalance overwrites the stored opening amount of a bank
	// account inside the registrar's transaction.
	SetBankInitialBalance(ctx context.Context, tx pgx.Tx, tenantID, bankID string, amount decimal.Decimal) error

	// SetCashInitialBalance overwrites the stored opening amount of a cash box.
	SetCashInitialBalance(ctx context.Context, tx pgx.Tx, tenantID, cashID string, amount decimal.Decimal) error
}

// PartyRepositoryFacade combines party repository interfaces plus transaction
// management.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
	TransactionManager
}
