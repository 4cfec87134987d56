package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/hadikeshavarzi/anbar-ledger/internal/handlers"
	"github.com/hadikeshavarzi/anbar-ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

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

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockPosting *MockPostingService
	jwtSecret   string
	tenantID    string
	userID      string
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockPosting = new(MockPostingService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Posting: suite.mockPosting,
	})
}

// generateTestToken creates a signed token carrying the tenant claim.
func (suite *DocumentHandlerTestSuite) generateTestToken() string {
	claims := struct {
		TenantID string `json:"tid"`
		jwt.RegisteredClaims
	}{
		TenantID: suite.tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "anbar-ledger-test",
			Subject:   suite.userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DocumentHandlerTestSuite) serveJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DocumentHandlerTestSuite) TestPostDocument_Success() {
	reqBody := dto.PostDocumentRequest{
		Date:        time.Now(),
		Description: "rent settlement",
		Entries: []dto.PostEntryRequest{
			{MoeinID: "moein-a", Bed: decimal.NewFromInt(1200)},
			{MoeinID: "moein-b", Bes: decimal.NewFromInt(1200)},
		},
	}
	expected := &dto.DocumentResult{
		DocumentID:   uuid.NewString(),
		DocumentNo:   42,
		EntriesCount: 2,
		TotalAmount:  decimal.NewFromInt(1200),
	}

	// The tenant and user must come from the token, not the body.
	suite.mockPosting.On("PostDocument",
		mock.Anything,
		suite.tenantID,
		mock.MatchedBy(func(r dto.PostDocumentRequest) bool {
			return r.Description == "rent settlement" && len(r.Entries) == 2
		}),
		suite.userID,
	).Return(expected, nil).Once()

	w := suite.serveJSON(http.MethodPost, "/api/v1/documents", reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var envelope struct {
		Success bool               `json:"success"`
		Data    dto.DocumentResult `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.True(envelope.Success)
	suite.Equal(expected.DocumentID, envelope.Data.DocumentID)
	suite.Equal(int64(42), envelope.Data.DocumentNo)

	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestPostDocument_Unbalanced() {
	reqBody := dto.PostDocumentRequest{
		Date:        time.Now(),
		Description: "off by two",
		Entries: []dto.PostEntryRequest{
			{MoeinID: "moein-a", Bed: decimal.NewFromInt(100)},
			{MoeinID: "moein-b", Bes: decimal.NewFromInt(98)},
		},
	}

	suite.mockPosting.On("PostDocument", mock.Anything, suite.tenantID, mock.Anything, suite.userID).
		Return(nil, services.NewUnbalancedDocumentError(decimal.NewFromInt(100), decimal.NewFromInt(98))).Once()

	w := suite.serveJSON(http.MethodPost, "/api/v1/documents", reqBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var envelope struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.False(envelope.Success)
	suite.Equal("UNBALANCED_DOCUMENT", envelope.Code)
}

func (suite *DocumentHandlerTestSuite) TestPostDocument_MissingToken() {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(dto.PostDocumentRequest{}))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPosting.AssertNotCalled(suite.T(), "PostDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFound() {
	docID := uuid.NewString()

	suite.mockPosting.On("GetDocument", mock.Anything, suite.tenantID, docID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serveJSON(http.MethodGet, "/api/v1/documents/"+docID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPosting.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
