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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo  *MockPartyRepository
	mockDetailRepo *MockDetailAccountRepository
	mockChartSvc   *MockChartService
	service        portssvc.PartySvcFacade
	tenantID       string
	userID         string
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockDetailRepo = new(MockDetailAccountRepository)
	suite.mockChartSvc = new(MockChartService)
	suite.service = services.NewPartyService(suite.mockPartyRepo, suite.mockDetailRepo, suite.mockChartSvc)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PartyServiceTestSuite) expectProvisioning(tafsiliType domain.DetailAccountType, tafsiliID string) {
	suite.mockDetailRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockDetailRepo.On("Rollback", mock.Anything, nil).Return(nil)
	suite.mockDetailRepo.On("Commit", mock.Anything, nil).Return(nil).Once()
	suite.mockChartSvc.On("ResolveOrCreateDetailAccountInTx", mock.Anything, nil, suite.tenantID, tafsiliType, mock.AnythingOfType("string"), mock.AnythingOfType("string"), suite.userID).
		Return(&domain.DetailAccount{TafsiliID: tafsiliID}, nil).Once()
}

func (suite *PartyServiceTestSuite) TestCreateCustomer_NoEagerProvisioning() {
	ctx := context.Background()

	var saved domain.Customer
	suite.mockPartyRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Customer)
		}).
		Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, suite.tenantID, dto.CreateCustomerRequest{Name: "Hauler Co", Phone: "0912"}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(customer.CustomerID)
	suite.Empty(customer.TafsiliID)
	suite.Equal("Hauler Co", saved.Name)
	suite.mockChartSvc.AssertNotCalled(suite.T(), "ResolveOrCreateDetailAccountInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PartyServiceTestSuite) TestCreateBank_ProvisionsEagerly() {
	ctx := context.Background()
	tafsiliID := uuid.NewString()

	suite.mockPartyRepo.On("SaveBank", ctx, mock.AnythingOfType("domain.BankAccount")).Return(nil).Once()
	suite.expectProvisioning(domain.DetailBank, tafsiliID)

	bank, err := suite.service.CreateBank(ctx, suite.tenantID, dto.CreateBankRequest{Title: "Mellat", AccountNo: "12345"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(tafsiliID, bank.TafsiliID)
	suite.True(bank.InitialBalance.IsZero())
	suite.mockChartSvc.AssertExpectations(suite.T())
	suite.mockDetailRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestCreateCash_ProvisionsEagerly() {
	ctx := context.Background()
	tafsiliID := uuid.NewString()

	suite.mockPartyRepo.On("SaveCash", ctx, mock.AnythingOfType("domain.CashBox")).Return(nil).Once()
	suite.expectProvisioning(domain.DetailCash, tafsiliID)

	cash, err := suite.service.CreateCash(ctx, suite.tenantID, dto.CreateCashRequest{Title: "Main Box"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(tafsiliID, cash.TafsiliID)
}

func (suite *PartyServiceTestSuite) TestCreatePos_VerifiesLinkedBank() {
	ctx := context.Background()

	suite.mockPartyRepo.On("FindBankByID", ctx, nil, suite.tenantID, "bank-gone").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePos(ctx, suite.tenantID, dto.CreatePosRequest{Title: "Gate POS", BankID: "bank-gone"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "SavePos", mock.Anything, mock.Anything)
}

func (suite *PartyServiceTestSuite) TestCreatePos_WithoutBank() {
	ctx := context.Background()
	tafsiliID := uuid.NewString()

	suite.mockPartyRepo.On("SavePos", ctx, mock.AnythingOfType("domain.PosTerminal")).Return(nil).Once()
	suite.expectProvisioning(domain.DetailPos, tafsiliID)

	pos, err := suite.service.CreatePos(ctx, suite.tenantID, dto.CreatePosRequest{Title: "Gate POS"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(tafsiliID, pos.TafsiliID)
	suite.Empty(pos.BankID)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "FindBankByID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPartyService(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
