package services

import (
	"context"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type partyService struct {
	partyRepo  portsrepo.PartyRepositoryFacade
	detailRepo portsrepo.DetailAccountRepositoryFacade
	chartSvc   portssvc.ChartSvcFacade
}

// NewPartyService creates the service managing the business records the
// engine posts against.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, detailRepo portsrepo.DetailAccountRepositoryFacade, chartSvc portssvc.ChartSvcFacade) portssvc.PartySvcFacade {
	return &partyService{
		partyRepo:  partyRepo,
		detailRepo: detailRepo,
		chartSvc:   chartSvc,
	}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func newAudit(userID string) domain.AuditFields {
	now := time.Now()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// CreateCustomer registers a counterparty. Its detail account is provisioned
// lazily by the first posting that needs it.
func (s *partyService) CreateCustomer(ctx context.Context, tenantID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		TenantID:    tenantID,
		Name:        req.Name,
		Phone:       req.Phone,
		AuditFields: newAudit(userID),
	}
	if err := s.partyRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCustomers retrieves customers of a tenant.
func (s *partyService) ListCustomers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Customer, error) {
	return s.partyRepo.ListCustomers(ctx, tenantID, limit, offset)
}

// provisionEagerly creates the detail account of a freshly saved bank, cash
// or POS record in its own transaction, returning the tafsili id.
func (s *partyService) provisionEagerly(ctx context.Context, tenantID string, tafsiliType domain.DetailAccountType, refID, title, userID string) (string, error) {
	tx, err := s.detailRepo.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer s.detailRepo.Rollback(ctx, tx)

	acc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, tafsiliType, refID, title, userID)
	if err != nil {
		return "", err
	}
	if err := s.detailRepo.Commit(ctx, tx); err != nil {
		return "", err
	}
	return acc.TafsiliID, nil
}

// CreateBank registers a bank account and provisions its detail account.
func (s *partyService) CreateBank(ctx context.Context, tenantID string, req dto.CreateBankRequest, userID string) (*domain.BankAccount, error) {
	bank := domain.BankAccount{
		BankID:         uuid.NewString(),
		TenantID:       tenantID,
		Title:          req.Title,
		AccountNo:      req.AccountNo,
		InitialBalance: decimal.Zero,
		AuditFields:    newAudit(userID),
	}
	if err := s.partyRepo.SaveBank(ctx, bank); err != nil {
		return nil, err
	}

	tafsiliID, err := s.provisionEagerly(ctx, tenantID, domain.DetailBank, bank.BankID, bank.Title, userID)
	if err != nil {
		return nil, err
	}
	bank.TafsiliID = tafsiliID
	return &bank, nil
}

// ListBanks retrieves bank accounts of a tenant.
func (s *partyService) ListBanks(ctx context.Context, tenantID string) ([]domain.BankAccount, error) {
	return s.partyRepo.ListBanks(ctx, tenantID)
}

// CreateCash registers a cash box and provisions its detail account.
func (s *partyService) CreateCash(ctx context.Context, tenantID string, req dto.CreateCashRequest, userID string) (*domain.CashBox, error) {
	cash := domain.CashBox{
		CashID:         uuid.NewString(),
		TenantID:       tenantID,
		Title:          req.Title,
		InitialBalance: decimal.Zero,
		AuditFields:    newAudit(userID),
	}
	if err := s.partyRepo.SaveCash(ctx, cash); err != nil {
		return nil, err
	}

	tafsiliID, err := s.provisionEagerly(ctx, tenantID, domain.DetailCash, cash.CashID, cash.Title, userID)
	if err != nil {
		return nil, err
	}
	cash.TafsiliID = tafsiliID
	return &cash, nil
}

// ListCashes retrieves cash boxes of a tenant.
func (s *partyService) ListCashes(ctx context.Context, tenantID string) ([]domain.CashBox, error) {
	return s.partyRepo.ListCashes(ctx, tenantID)
}

// CreatePos registers a POS terminal and provisions its detail account.
func (s *partyService) CreatePos(ctx context.Context, tenantID string, req dto.CreatePosRequest, userID string) (*domain.PosTerminal, error) {
	if req.BankID != "" {
		if _, err := s.partyRepo.FindBankByID(ctx, nil, tenantID, req.BankID); err != nil {
			return nil, err
		}
	}

	pos := domain.PosTerminal{
		PosID:       uuid.NewString(),
		TenantID:    tenantID,
		Title:       req.Title,
		BankID:      req.BankID,
		AuditFields: newAudit(userID),
	}
	if err := s.partyRepo.SavePos(ctx, pos); err != nil {
		return nil, err
	}

	tafsiliID, err := s.provisionEagerly(ctx, tenantID, domain.DetailPos, pos.PosID, pos.Title, userID)
	if err != nil {
		return nil, err
	}
	pos.TafsiliID = tafsiliID
	return &pos, nil
}

// ListPosTerminals retrieves POS terminals of a tenant.
func (s *partyService) ListPosTerminals(ctx context.Context, tenantID string) ([]domain.PosTerminal, error) {
	return s.partyRepo.ListPosTerminals(ctx, tenantID)
}
