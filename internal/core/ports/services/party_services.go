package services

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
)

// PartySvcFacade manages the business records the engine posts against.
// Banks, cash boxes and POS terminals get their detail account eagerly on
// creation; customers are provisioned lazily by the first posting.
type PartySvcFacade interface {
	CreateCustomer(ctx context.Context, tenantID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Customer, error)

	CreateBank(ctx context.Context, tenantID string, req dto.CreateBankRequest, userID string) (*domain.BankAccount, error)
	ListBanks(ctx context.Context, tenantID string) ([]domain.BankAccount, error)

	CreateCash(ctx context.Context, tenantID string, req dto.CreateCashRequest, userID string) (*domain.CashBox, error)
	ListCashes(ctx context.Context, tenantID string) ([]domain.CashBox, error)

	CreatePos(ctx context.Context, tenantID string, req dto.CreatePosRequest, userID string) (*domain.PosTerminal, error)
	ListPosTerminals(ctx context.Context, tenantID string) ([]domain.PosTerminal, error)
}
