package services_test

import (
	"context"
	"testing"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OpeningServiceTestSuite struct {
	suite.Suite
	chart           *domain.Chart
	mockOpeningRepo *MockOpeningRepository
	mockPartyRepo   *MockPartyRepository
	mockChartSvc    *MockChartService
	mockPosting     *MockPostingService
	service         portssvc.OpeningSvcFacade
	tenantID        string
	userID          string
}

func (suite *OpeningServiceTestSuite) SetupTest() {
	suite.chart = newTestChart()
	suite.mockOpeningRepo = new(MockOpeningRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockChartSvc = new(MockChartService)
	suite.mockPosting = new(MockPostingService)
	suite.service = services.NewOpeningService(suite.chart, suite.mockOpeningRepo, suite.mockPartyRepo, suite.mockChartSvc, suite.mockPosting)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *OpeningServiceTestSuite) expectTx() {
	suite.mockOpeningRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockOpeningRepo.On("Rollback", mock.Anything, nil).Return(nil)
}

func (suite *OpeningServiceTestSuite) TestRegister_UnknownSection() {
	ctx := context.Background()

	_, err := suite.service.RegisterOpeningBalance(ctx, suite.tenantID, "vehicles", dto.OpeningBalanceRequest{
		Items: []dto.OpeningItemRequest{{RefID: "x", Amount: decimal.NewFromInt(1)}},
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOpeningRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *OpeningServiceTestSuite) TestRegister_DuplicateSection() {
	ctx := context.Background()

	suite.expectTx()
	suite.mockOpeningRepo.On("SaveOpeningBalance", mock.Anything, nil, mock.AnythingOfType("domain.OpeningBalance")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterOpeningBalance(ctx, suite.tenantID, domain.SectionBanks, dto.OpeningBalanceRequest{
		Items: []dto.OpeningItemRequest{{RefID: "bank-1", Amount: decimal.NewFromInt(5000)}},
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicateSection)
	suite.mockOpeningRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *OpeningServiceTestSuite) TestRegister_NoValidItems() {
	ctx := context.Background()

	suite.expectTx()
	suite.mockOpeningRepo.On("SaveOpeningBalance", mock.Anything, nil, mock.AnythingOfType("domain.OpeningBalance")).
		Return(nil).Once()

	_, err := suite.service.RegisterOpeningBalance(ctx, suite.tenantID, domain.SectionBanks, dto.OpeningBalanceRequest{
		Items: []dto.OpeningItemRequest{
			{RefID: "bank-1", Amount: decimal.Zero},
			{RefID: "bank-2", Amount: decimal.NewFromInt(-10)},
		},
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNoValidItems)
	suite.mockOpeningRepo.AssertNotCalled(suite.T(), "SaveOpeningItems", mock.Anything, mock.Anything, mock.Anything)
	suite.mockOpeningRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *OpeningServiceTestSuite) TestRegister_Banks_SkipsUnknownRecord() {
	ctx := context.Background()

	suite.expectTx()
	suite.mockOpeningRepo.On("SaveOpeningBalance", mock.Anything, nil, mock.AnythingOfType("domain.OpeningBalance")).Return(nil).Once()
	suite.mockPartyRepo.On("SetBankInitialBalance", mock.Anything, nil, suite.tenantID, "bank-1", decimal.NewFromInt(5000)).Return(nil).Once()
	suite.mockPartyRepo.On("SetBankInitialBalance", mock.Anything, nil, suite.tenantID, "bank-ghost", decimal.NewFromInt(700)).Return(apperrors.ErrNotFound).Once()

	var savedItems []domain.OpeningBalanceItem
	suite.mockOpeningRepo.On("SaveOpeningItems", mock.Anything, nil, mock.AnythingOfType("[]domain.OpeningBalanceItem")).
		Run(func(args mock.Arguments) {
			savedItems = args.Get(2).([]domain.OpeningBalanceItem)
		}).
		Return(nil).Once()
	suite.mockOpeningRepo.On("Commit", mock.Anything, nil).Return(nil).Once()

	result, err := suite.service.RegisterOpeningBalance(ctx, suite.tenantID, domain.SectionBanks, dto.OpeningBalanceRequest{
		Items: []dto.OpeningItemRequest{
			{RefID: "bank-1", Amount: decimal.NewFromInt(5000)},
			{RefID: "bank-ghost", Amount: decimal.NewFromInt(700)},
		},
	}, suite.userID)

	suite.Require().NoError(err)
	// The unknown bank's item is persisted but only counts as skipped.
	suite.Equal(1, result.Count)
	suite.Equal(1, result.Skipped)
	suite.Nil(result.Document)

	suite.Require().Len(savedItems, 2)
	suite.True(savedItems[0].Posted)
	suite.False(savedItems[1].Posted)
}

func (suite *OpeningServiceTestSuite) TestRegister_Customers_PostsBalancedDocument() {
	ctx := context.Background()
	debtorAcc := &domain.DetailAccount{TafsiliID: uuid.NewString(), Title: "Debtor Co"}
	creditorAcc := &domain.DetailAccount{TafsiliID: uuid.NewString(), Title: "Creditor Co"}

	suite.expectTx()
	suite.mockOpeningRepo.On("SaveOpeningBalance", mock.Anything, nil, mock.AnythingOfType("domain.OpeningBalance")).Return(nil).Once()
	suite.mockChartSvc.On("ResolveDetailAccount", mock.Anything, nil, suite.tenantID, domain.DetailCustomer, "cust-debit").Return(debtorAcc, nil).Once()
	suite.mockChartSvc.On("ResolveDetailAccount", mock.Anything, nil, suite.tenantID, domain.DetailCustomer, "cust-credit").Return(creditorAcc, nil).Once()

	var postedDoc domain.FinancialDocument
	var postedEntries []domain.FinancialEntry
	suite.mockPosting.On("PostPreparedInTx", mock.Anything, nil, mock.AnythingOfType("domain.FinancialDocument"), mock.AnythingOfType("[]domain.FinancialEntry")).
		Run(func(args mock.Arguments) {
			postedDoc = args.Get(2).(domain.FinancialDocument)
			postedEntries = args.Get(3).([]domain.FinancialEntry)
		}).
		Return(&dto.DocumentResult{DocumentID: uuid.NewString(), DocumentNo: 1}, nil).Once()
	suite.mockOpeningRepo.On("LinkOpeningDocument", mock.Anything, nil, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockOpeningRepo.On("SaveOpeningItems", mock.Anything, nil, mock.AnythingOfType("[]domain.OpeningBalanceItem")).Return(nil).Once()
	suite.mockOpeningRepo.On("Commit", mock.Anything, nil).Return(nil).Once()

	result, err := suite.service.RegisterOpeningBalance(ctx, suite.tenantID, domain.SectionCustomers, dto.OpeningBalanceRequest{
		Items: []dto.OpeningItemRequest{
			{RefID: "cust-debit", Amount: decimal.NewFromInt(1500), Direction: "DEBIT"},
			{RefID: "cust-credit", Amount: decimal.NewFromInt(200), Direction: "CREDIT"},
		},
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Document)
	suite.Equal(2, result.Count)
	suite.Equal(0, result.Skipped)
	suite.Equal(domain.DocOpeningBalance, postedDoc.DocumentType)
	suite.Equal("opening_balance", postedDoc.ReferenceType)

	// Each item posts a receivable line balanced by opening equity.
	suite.Require().Len(postedEntries, 4)
	suite.Equal(testMoeinID(domain.ChartCustomerReceivable), postedEntries[0].MoeinID)
	suite.Equal(debtorAcc.TafsiliID, postedEntries[0].TafsiliID)
	suite.True(postedEntries[0].Bed.Equal(decimal.NewFromInt(1500)))
	suite.Equal(testMoeinID(domain.ChartOpeningEquity), postedEntries[1].MoeinID)
	suite.True(postedEntries[1].Bes.Equal(decimal.NewFromInt(1500)))

	suite.Equal(creditorAcc.TafsiliID, postedEntries[2].TafsiliID)
	suite.True(postedEntries[2].Bes.Equal(decimal.NewFromInt(200)))
	suite.Equal(testMoeinID(domain.ChartOpeningEquity), postedEntries[3].MoeinID)
	suite.True(postedEntries[3].Bed.Equal(decimal.NewFromInt(200)))
}

func (suite *OpeningServiceTestSuite) TestRegister_Customers_SkipsUnprovisioned() {
	ctx := context.Background()
	knownAcc := &domain.DetailAccount{TafsiliID: uuid.NewString(), Title: "Known Co"}

	suite.expectTx()
	suite.mockOpeningRepo.On("SaveOpeningBalance", mock.Anything, nil, mock.AnythingOfType("domain.OpeningBalance")).Return(nil).Once()
	suite.mockChartSvc.On("ResolveDetailAccount", mock.Anything, nil, suite.tenantID, domain.DetailCustomer, "cust-known").Return(knownAcc, nil).Once()
	suite.mockChartSvc.On("ResolveDetailAccount", mock.Anything, nil, suite.tenantID, domain.DetailCustomer, "cust-unknown").Return(nil, apperrors.ErrNotFound).Once()

	var postedEntries []domain.FinancialEntry
	suite.mockPosting.On("PostPreparedInTx", mock.Anything, nil, mock.Anything, mock.AnythingOfType("[]domain.FinancialEntry")).
		Run(func(args mock.Arguments) {
			postedEntries = args.Get(3).([]domain.FinancialEntry)
		}).
		Return(&dto.DocumentResult{DocumentID: uuid.NewString(), DocumentNo: 2}, nil).Once()
	suite.mockOpeningRepo.On("LinkOpeningDocument", mock.Anything, nil, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockOpeningRepo.On("SaveOpeningItems", mock.Anything, nil, mock.AnythingOfType("[]domain.OpeningBalanceItem")).Return(nil).Once()
	suite.mockOpeningRepo.On("Commit", mock.Anything, nil).Return(nil).Once()

	result, err := suite.service.RegisterOpeningBalance(ctx, suite.tenantID, domain.SectionCustomers, dto.OpeningBalanceRequest{
		Items: []dto.OpeningItemRequest{
			{RefID: "cust-known", Amount: decimal.NewFromInt(100), Direction: "DEBIT"},
			{RefID: "cust-unknown", Amount: decimal.NewFromInt(50), Direction: "DEBIT"},
		},
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, result.Count)
	suite.Equal(1, result.Skipped)
	suite.Len(postedEntries, 2)
}

func (suite *OpeningServiceTestSuite) TestRegister_Inventory_QuantitiesOnly() {
	ctx := context.Background()

	suite.expectTx()
	suite.mockOpeningRepo.On("SaveOpeningBalance", mock.Anything, nil, mock.AnythingOfType("domain.OpeningBalance")).Return(nil).Once()
	suite.mockOpeningRepo.On("SaveOpeningItems", mock.Anything, nil, mock.AnythingOfType("[]domain.OpeningBalanceItem")).Return(nil).Once()
	suite.mockOpeningRepo.On("Commit", mock.Anything, nil).Return(nil).Once()

	result, err := suite.service.RegisterOpeningBalance(ctx, suite.tenantID, domain.SectionInventory, dto.OpeningBalanceRequest{
		Items: []dto.OpeningItemRequest{
			{RefID: "goods-1", Quantity: decimal.NewFromInt(30)},
		},
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, result.Count)
	suite.Nil(result.Document)
	suite.mockPosting.AssertNotCalled(suite.T(), "PostPreparedInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "SetBankInitialBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOpeningService(t *testing.T) {
	suite.Run(t, new(OpeningServiceTestSuite))
}
