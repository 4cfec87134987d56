package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

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

type PostingServiceTestSuite struct {
	suite.Suite
	mockDocRepo *MockDocumentRepository
	service     portssvc.PostingSvcFacade
	tenantID    string
	userID      string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.service = services.NewPostingService(suite.mockDocRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PostingServiceTestSuite) TestPostDocument_Success() {
	ctx := context.Background()
	req := dto.PostDocumentRequest{
		Date:        time.Now(),
		Description: "rent settlement",
		Entries: []dto.PostEntryRequest{
			{MoeinID: "moein-a", Bed: decimal.NewFromInt(1200), Bes: decimal.Zero},
			{MoeinID: "moein-b", Bed: decimal.Zero, Bes: decimal.NewFromInt(1200)},
		},
	}

	suite.mockDocRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockDocRepo.On("NextDocumentNo", ctx, nil, suite.tenantID).Return(int64(42), nil).Once()

	var savedDoc domain.FinancialDocument
	var savedEntries []domain.FinancialEntry
	suite.mockDocRepo.On("SaveDocument", ctx, nil, mock.AnythingOfType("domain.FinancialDocument"), mock.AnythingOfType("[]domain.FinancialEntry")).
		Run(func(args mock.Arguments) {
			savedDoc = args.Get(2).(domain.FinancialDocument)
			savedEntries = args.Get(3).([]domain.FinancialEntry)
		}).
		Return(nil).Once()
	suite.mockDocRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockDocRepo.On("Rollback", ctx, nil).Return(nil)

	result, err := suite.service.PostDocument(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(42), result.DocumentNo)
	suite.Equal(2, result.EntriesCount)
	suite.True(result.TotalAmount.Equal(decimal.NewFromInt(1200)))
	suite.NotEmpty(result.DocumentID)

	suite.Equal(domain.DocManual, savedDoc.DocumentType)
	suite.Equal(domain.DocumentConfirmed, savedDoc.Status)
	suite.Equal(suite.userID, savedDoc.CreatedBy)
	suite.Require().Len(savedEntries, 2)
	for _, e := range savedEntries {
		suite.NotEmpty(e.EntryID)
		suite.Equal(savedDoc.DocumentID, e.DocumentID)
	}

	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostDocument_Unbalanced() {
	ctx := context.Background()
	req := dto.PostDocumentRequest{
		Date:        time.Now(),
		Description: "off by two",
		Entries: []dto.PostEntryRequest{
			{MoeinID: "moein-a", Bed: decimal.NewFromInt(100), Bes: decimal.Zero},
			{MoeinID: "moein-b", Bed: decimal.Zero, Bes: decimal.NewFromInt(98)},
		},
	}

	suite.mockDocRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockDocRepo.On("Rollback", ctx, nil).Return(nil)

	_, err := suite.service.PostDocument(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	var unbalanced *services.UnbalancedDocumentError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.True(unbalanced.Bed.Equal(decimal.NewFromInt(100)))
	suite.True(unbalanced.Bes.Equal(decimal.NewFromInt(98)))
	suite.mockDocRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostPreparedInTx_ToleratesSubUnitImbalance() {
	ctx := context.Background()
	entries := []domain.FinancialEntry{
		domain.DebitEntry("moein-a", "", decimal.NewFromInt(100), ""),
		domain.CreditEntry("moein-b", "", decimal.RequireFromString("99.5"), ""),
	}

	suite.mockDocRepo.On("NextDocumentNo", ctx, nil, suite.tenantID).Return(int64(7), nil).Once()
	suite.mockDocRepo.On("SaveDocument", ctx, nil, mock.Anything, mock.Anything).Return(nil).Once()

	result, err := suite.service.PostPreparedInTx(ctx, nil, domain.FinancialDocument{TenantID: suite.tenantID}, entries)

	suite.Require().NoError(err)
	suite.Equal(int64(7), result.DocumentNo)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostPreparedInTx_ToleranceBoundary() {
	ctx := context.Background()
	// A difference of exactly one unit still posts.
	entries := []domain.FinancialEntry{
		domain.DebitEntry("moein-a", "", decimal.NewFromInt(100), ""),
		domain.CreditEntry("moein-b", "", decimal.NewFromInt(99), ""),
	}

	suite.mockDocRepo.On("NextDocumentNo", ctx, nil, suite.tenantID).Return(int64(8), nil).Once()
	suite.mockDocRepo.On("SaveDocument", ctx, nil, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.PostPreparedInTx(ctx, nil, domain.FinancialDocument{TenantID: suite.tenantID}, entries)
	suite.Require().NoError(err)

	// One cent past the unit does not.
	entries = []domain.FinancialEntry{
		domain.DebitEntry("moein-a", "", decimal.RequireFromString("100.01"), ""),
		domain.CreditEntry("moein-b", "", decimal.NewFromInt(99), ""),
	}
	_, err = suite.service.PostPreparedInTx(ctx, nil, domain.FinancialDocument{TenantID: suite.tenantID}, entries)

	var unbalanced *services.UnbalancedDocumentError
	suite.Require().ErrorAs(err, &unbalanced)
}

func (suite *PostingServiceTestSuite) TestPostPreparedInTx_RandomEntrySets() {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))

	suite.mockDocRepo.On("NextDocumentNo", ctx, nil, suite.tenantID).Return(int64(1), nil)
	suite.mockDocRepo.On("SaveDocument", ctx, nil, mock.Anything, mock.Anything).Return(nil)

	cents := func(n int64) decimal.Decimal {
		return decimal.NewFromInt(n).Div(decimal.NewFromInt(100))
	}

	for i := 0; i < 500; i++ {
		// Random debit side, amounts in [100.00, 10100.00].
		entries := make([]domain.FinancialEntry, 0, 12)
		debits := rng.Intn(6) + 1
		for j := 0; j < debits; j++ {
			entries = append(entries, domain.DebitEntry("moein-a", "", cents(int64(rng.Intn(1_000_001)+10_000)), ""))
		}
		debitTotal := decimal.Zero
		for _, e := range entries {
			debitTotal = debitTotal.Add(e.Bed)
		}

		// Even sets land within the tolerance, odd sets are skewed past it.
		var delta decimal.Decimal
		if i%2 == 0 {
			delta = cents(int64(rng.Intn(199) - 99))
		} else {
			delta = cents(int64(rng.Intn(4900) + 101))
			if rng.Intn(2) == 0 {
				delta = delta.Neg()
			}
		}

		// Split the matching credit total across a random number of lines.
		remaining := debitTotal.Sub(delta)
		credits := rng.Intn(4) + 1
		for j := 0; j < credits-1; j++ {
			c := remaining.Mul(decimal.NewFromFloat(rng.Float64() * 0.5)).Round(2)
			entries = append(entries, domain.CreditEntry("moein-b", "", c, ""))
			remaining = remaining.Sub(c)
		}
		entries = append(entries, domain.CreditEntry("moein-b", "", remaining, ""))

		// Re-total independently of the code under test.
		bed, bes := decimal.Zero, decimal.Zero
		for _, e := range entries {
			bed = bed.Add(e.Bed)
			bes = bes.Add(e.Bes)
		}
		diff := bed.Sub(bes).Abs()

		result, err := suite.service.PostPreparedInTx(ctx, nil, domain.FinancialDocument{TenantID: suite.tenantID}, entries)
		if diff.LessThanOrEqual(decimal.NewFromInt(1)) {
			suite.Require().NoError(err, "set %d with diff %s must post", i, diff)
			suite.True(result.TotalAmount.Equal(bed))
		} else {
			var unbalanced *services.UnbalancedDocumentError
			suite.Require().ErrorAs(err, &unbalanced, "set %d with diff %s must be rejected", i, diff)
			suite.True(unbalanced.Bed.Equal(bed), "set %d: reported debit total %s, want %s", i, unbalanced.Bed, bed)
			suite.True(unbalanced.Bes.Equal(bes), "set %d: reported credit total %s, want %s", i, unbalanced.Bes, bes)
		}
	}
}

func (suite *PostingServiceTestSuite) TestPostPreparedInTx_NoEntries() {
	ctx := context.Background()

	_, err := suite.service.PostPreparedInTx(ctx, nil, domain.FinancialDocument{TenantID: suite.tenantID}, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "NextDocumentNo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostPreparedInTx_EntryWithoutMoein() {
	ctx := context.Background()
	entries := []domain.FinancialEntry{
		domain.DebitEntry("moein-a", "", decimal.NewFromInt(50), ""),
		domain.CreditEntry("", "", decimal.NewFromInt(50), ""),
	}

	_, err := suite.service.PostPreparedInTx(ctx, nil, domain.FinancialDocument{TenantID: suite.tenantID}, entries)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestGetDocument_AttachesEntries() {
	ctx := context.Background()
	docID := uuid.NewString()
	header := &domain.FinancialDocument{DocumentID: docID, TenantID: suite.tenantID, DocumentNo: 3}
	entries := []domain.FinancialEntry{
		domain.DebitEntry("moein-a", "", decimal.NewFromInt(10), ""),
		domain.CreditEntry("moein-b", "", decimal.NewFromInt(10), ""),
	}

	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.tenantID, docID).Return(header, nil).Once()
	suite.mockDocRepo.On("FindEntriesByDocumentID", ctx, docID).Return(entries, nil).Once()

	doc, err := suite.service.GetDocument(ctx, suite.tenantID, docID)

	suite.Require().NoError(err)
	suite.Len(doc.Entries, 2)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func TestPostingService(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
