package services_test

import (
	"context"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// newTestChart builds a chart whose moein ids are derived from their symbol,
// so test assertions can name accounts without fixture bookkeeping.
func newTestChart() *domain.Chart {
	accounts := make(map[domain.ChartSymbol]domain.SubsidiaryAccount, len(domain.RequiredChartSymbols))
	for _, sym := range domain.RequiredChartSymbols {
		accounts[sym] = domain.SubsidiaryAccount{
			MoeinID: "moein-" + string(sym),
			Code:    string(sym),
			Name:    string(sym),
		}
	}
	chart, err := domain.NewChart(accounts)
	if err != nil {
		panic(err)
	}
	return chart
}

func testMoeinID(sym domain.ChartSymbol) string {
	return "moein-" + string(sym)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDocumentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDocumentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.FinancialDocument, error) {
	args := m.Called(ctx, tenantID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialDocument), args.Error(1)
}

func (m *MockDocumentRepository) FindEntriesByDocumentID(ctx context.Context, documentID string) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, tenantID string, limit, offset int) ([]domain.FinancialDocument, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialDocument), args.Error(1)
}

func (m *MockDocumentRepository) NextDocumentNo(ctx context.Context, tx pgx.Tx, tenantID string) (int64, error) {
	args := m.Called(ctx, tx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, tx pgx.Tx, document domain.FinancialDocument, entries []domain.FinancialEntry) error {
	args := m.Called(ctx, tx, document, entries)
	return args.Error(0)
}

// --- Mock MoeinRepository ---
type MockMoeinRepository struct {
	mock.Mock
}

var _ portsrepo.MoeinRepositoryFacade = (*MockMoeinRepository)(nil)

func (m *MockMoeinRepository) FindMoeinByCode(ctx context.Context, code string) (*domain.SubsidiaryAccount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubsidiaryAccount), args.Error(1)
}

func (m *MockMoeinRepository) FindMoeinsByCodes(ctx context.Context, codes []string) (map[string]domain.SubsidiaryAccount, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SubsidiaryAccount), args.Error(1)
}

// --- Mock DetailAccountRepository ---
type MockDetailAccountRepository struct {
	mock.Mock
}

var _ portsrepo.DetailAccountRepositoryFacade = (*MockDetailAccountRepository)(nil)

func (m *MockDetailAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDetailAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDetailAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDetailAccountRepository) FindDetailAccountByID(ctx context.Context, tafsiliID string) (*domain.DetailAccount, error) {
	args := m.Called(ctx, tafsiliID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailAccount), args.Error(1)
}

func (m *MockDetailAccountRepository) FindDetailAccountByTypeAndRef(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID string) (*domain.DetailAccount, error) {
	args := m.Called(ctx, tx, tenantID, tafsiliType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailAccount), args.Error(1)
}

func (m *MockDetailAccountRepository) ListDetailAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.DetailAccount, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DetailAccount), args.Error(1)
}

func (m *MockDetailAccountRepository) NextDetailCode(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType) (int, error) {
	args := m.Called(ctx, tx, tenantID, tafsiliType)
	return args.Int(0), args.Error(1)
}

func (m *MockDetailAccountRepository) SaveDetailAccount(ctx context.Context, tx pgx.Tx, account domain.DetailAccount) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockDetailAccountRepository) BacklinkTafsili(ctx context.Context, tx pgx.Tx, tafsiliType domain.DetailAccountType, refID, tafsiliID string) error {
	args := m.Called(ctx, tx, tafsiliType, refID, tafsiliID)
	return args.Error(0)
}

// --- Mock ChequeRepository ---
type MockChequeRepository struct {
	mock.Mock
}

var _ portsrepo.ChequeRepositoryFacade = (*MockChequeRepository)(nil)

func (m *MockChequeRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockChequeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockChequeRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockChequeRepository) FindChequeByID(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error) {
	args := m.Called(ctx, tenantID, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) FindChequeByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, chequeID string) (*domain.Cheque, error) {
	args := m.Called(ctx, tx, tenantID, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) ListCheques(ctx context.Context, tenantID string, status *domain.ChequeStatus, limit, offset int) ([]domain.Cheque, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) ListChequesDueBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Cheque, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) FindCheckbookByID(ctx context.Context, tenantID, checkbookID string) (*domain.Checkbook, error) {
	args := m.Called(ctx, tenantID, checkbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkbook), args.Error(1)
}

func (m *MockChequeRepository) ListCheckbooks(ctx context.Context, tenantID string) ([]domain.Checkbook, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkbook), args.Error(1)
}

func (m *MockChequeRepository) SaveCheque(ctx context.Context, tx pgx.Tx, cheque domain.Cheque) error {
	args := m.Called(ctx, tx, cheque)
	return args.Error(0)
}

func (m *MockChequeRepository) UpdateChequeTransition(ctx context.Context, tx pgx.Tx, chequeID string, status domain.ChequeStatus, receiverID, targetBankID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, chequeID, status, receiverID, targetBankID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockChequeRepository) DeleteCheque(ctx context.Context, tenantID, chequeID string) error {
	args := m.Called(ctx, tenantID, chequeID)
	return args.Error(0)
}

func (m *MockChequeRepository) SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	args := m.Called(ctx, checkbook)
	return args.Error(0)
}

// --- Mock OpeningRepository ---
type MockOpeningRepository struct {
	mock.Mock
}

var _ portsrepo.OpeningRepositoryFacade = (*MockOpeningRepository)(nil)

func (m *MockOpeningRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockOpeningRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockOpeningRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockOpeningRepository) FindOpeningBalance(ctx context.Context, tenantID string, section domain.OpeningSection) (*domain.OpeningBalance, error) {
	args := m.Called(ctx, tenantID, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningRepository) FindOpeningItems(ctx context.Context, openingID string) ([]domain.OpeningBalanceItem, error) {
	args := m.Called(ctx, openingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpeningBalanceItem), args.Error(1)
}

func (m *MockOpeningRepository) SaveOpeningBalance(ctx context.Context, tx pgx.Tx, opening domain.OpeningBalance) error {
	args := m.Called(ctx, tx, opening)
	return args.Error(0)
}

func (m *MockOpeningRepository) SaveOpeningItems(ctx context.Context, tx pgx.Tx, items []domain.OpeningBalanceItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOpeningRepository) LinkOpeningDocument(ctx context.Context, tx pgx.Tx, openingID, documentID string) error {
	args := m.Called(ctx, tx, openingID, documentID)
	return args.Error(0)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPartyRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPartyRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPartyRepository) FindCustomerByID(ctx context.Context, tx pgx.Tx, tenantID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, tx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockPartyRepository) FindBankByID(ctx context.Context, tx pgx.Tx, tenantID, bankID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, tx, tenantID, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockPartyRepository) FindCashByID(ctx context.Context, tx pgx.Tx, tenantID, cashID string) (*domain.CashBox, error) {
	args := m.Called(ctx, tx, tenantID, cashID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockPartyRepository) FindPosByID(ctx context.Context, tx pgx.Tx, tenantID, posID string) (*domain.PosTerminal, error) {
	args := m.Called(ctx, tx, tenantID, posID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PosTerminal), args.Error(1)
}

func (m *MockPartyRepository) ListCustomers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockPartyRepository) ListBanks(ctx context.Context, tenantID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockPartyRepository) ListCashes(ctx context.Context, tenantID string) ([]domain.CashBox, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBox), args.Error(1)
}

func (m *MockPartyRepository) ListPosTerminals(ctx context.Context, tenantID string) ([]domain.PosTerminal, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PosTerminal), args.Error(1)
}

func (m *MockPartyRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockPartyRepository) SaveBank(ctx context.Context, bank domain.BankAccount) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockPartyRepository) SaveCash(ctx context.Context, cash domain.CashBox) error {
	args := m.Called(ctx, cash)
	return args.Error(0)
}

func (m *MockPartyRepository) SavePos(ctx context.Context, pos domain.PosTerminal) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}

func (m *MockPartyRepository) SetBankInitialBalance(ctx context.Context, tx pgx.Tx, tenantID, bankID string, amount decimal.Decimal) error {
	args := m.Called(ctx, tx, tenantID, bankID, amount)
	return args.Error(0)
}

func (m *MockPartyRepository) SetCashInitialBalance(ctx context.Context, tx pgx.Tx, tenantID, cashID string, amount decimal.Decimal) error {
	args := m.Called(ctx, tx, tenantID, cashID, amount)
	return args.Error(0)
}

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

var _ portssvc.ChartSvcFacade = (*MockChartService)(nil)

func (m *MockChartService) ResolveOrCreateDetailAccountInTx(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID, titleHint, userID string) (*domain.DetailAccount, error) {
	args := m.Called(ctx, tx, tenantID, tafsiliType, refID, titleHint, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailAccount), args.Error(1)
}

func (m *MockChartService) ResolveDetailAccount(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID string) (*domain.DetailAccount, error) {
	args := m.Called(ctx, tx, tenantID, tafsiliType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailAccount), args.Error(1)
}

func (m *MockChartService) ResolveFundingSourceInTx(ctx context.Context, tx pgx.Tx, tenantID string, hint domain.PaymentSourceType, sourceID string) (*domain.FundingSource, error) {
	args := m.Called(ctx, tx, tenantID, hint, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundingSource), args.Error(1)
}

func (m *MockChartService) ListDetailAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.DetailAccount, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DetailAccount), args.Error(1)
}

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) GetDocument(ctx context.Context, tenantID, documentID string) (*domain.FinancialDocument, error) {
	args := m.Called(ctx, tenantID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialDocument), args.Error(1)
}

func (m *MockPostingService) ListDocuments(ctx context.Context, tenantID string, limit, offset int) ([]domain.FinancialDocument, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialDocument), args.Error(1)
}

func (m *MockPostingService) PostDocument(ctx context.Context, tenantID string, req dto.PostDocumentRequest, userID string) (*dto.DocumentResult, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DocumentResult), args.Error(1)
}

func (m *MockPostingService) PostPreparedInTx(ctx context.Context, tx pgx.Tx, document domain.FinancialDocument, entries []domain.FinancialEntry) (*dto.DocumentResult, error) {
	args := m.Called(ctx, tx, document, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DocumentResult), args.Error(1)
}
