package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/amphorabeer/pms_backend/internal/core/services"
	"github.com/amphorabeer/pms_backend/internal/dto"
	"github.com/amphorabeer/pms_backend/internal/handlers"
	"github.com/amphorabeer/pms_backend/internal/middleware"
)

// --- Mock FolioService ---
type MockFolioService struct {
	mock.Mock
}

func (m *MockFolioService) GetFolio(ctx context.Context, propertyID, folioID string) (*domain.Folio, error) {
	args := m.Called(ctx, propertyID, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) GetFolioByReservation(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error) {
	args := m.Called(ctx, propertyID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) EnsureFolio(ctx context.Context, reservation domain.Reservation, userID string) (*domain.Folio, error) {
	args := m.Called(ctx, reservation, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) Post(ctx context.Context, propertyID, folioID string, req dto.PostTransactionRequest, postedBy string) (*domain.FolioTransaction, error) {
	args := m.Called(ctx, propertyID, folioID, req, postedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioTransaction), args.Error(1)
}

func (m *MockFolioService) PostEntries(ctx context.Context, folio *domain.Folio, entries []domain.FolioTransaction, postedBy string) error {
	args := m.Called(ctx, folio, entries, postedBy)
	return args.Error(0)
}

func (m *MockFolioService) Close(ctx context.Context, propertyID, folioID, reason, closedBy string) (*domain.Folio, error) {
	args := m.Called(ctx, propertyID, folioID, reason, closedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) Statement(ctx context.Context, propertyID, folioID string) (*domain.FolioStatement, error) {
	args := m.Called(ctx, propertyID, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioStatement), args.Error(1)
}

func (m *MockFolioService) ListTransactions(ctx context.Context, propertyID, folioID string, limit int, nextToken *string) ([]domain.FolioTransaction, *string, error) {
	args := m.Called(ctx, propertyID, folioID, limit, nextToken)
	var txns []domain.FolioTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.FolioTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.FolioSvcFacade = (*MockFolioService)(nil)

type FolioHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockFolioService *MockFolioService
	jwtSecret        string
}

func (suite *FolioHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pms-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *FolioHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockFolioService = new(MockFolioService)

	property := suite.router.Group("/api/v1/properties/:property_id")
	handlers.RegisterFolioRoutes(property, suite.mockFolioService)
}

func (suite *FolioHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FolioHandlerTestSuite) TestGetFolio_Success() {
	folio := &domain.Folio{
		FolioID:       "FOLIO-1",
		FolioNumber:   "F20250830-101",
		PropertyID:    "PROP-1",
		ReservationID: "RES-1",
		Balance:       decimal.RequireFromString("130.00"),
		Status:        domain.FolioOpen,
	}
	suite.mockFolioService.On("GetFolio", mock.Anything, "PROP-1", "FOLIO-1").Return(folio, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/properties/PROP-1/folios/FOLIO-1", "user-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FolioResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("FOLIO-1", resp.FolioID)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("130.00")))
	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestGetFolio_NotFound() {
	suite.mockFolioService.On("GetFolio", mock.Anything, "PROP-1", "FOLIO-MISSING").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/properties/PROP-1/folios/FOLIO-MISSING", "user-1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestGetFolio_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/properties/PROP-1/folios/FOLIO-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFolioService.AssertNotCalled(suite.T(), "GetFolio", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioHandlerTestSuite) TestPostTransaction_Success() {
	txn := &domain.FolioTransaction{
		TransactionID: "TXN-1",
		FolioID:       "FOLIO-1",
		Type:          domain.TxnCharge,
		Category:      "minibar",
		Debit:         decimal.RequireFromString("25.50"),
		Credit:        decimal.Zero,
		Balance:       decimal.RequireFromString("155.50"),
	}
	// The posting user must come from the bearer token, not the payload.
	suite.mockFolioService.On("Post", mock.Anything, "PROP-1", "FOLIO-1",
		mock.MatchedBy(func(req dto.PostTransactionRequest) bool {
			return req.Type == "CHARGE" && req.Category == "minibar"
		}), "user-1").Return(txn, nil).Once()

	body := dto.PostTransactionRequest{
		Type:        "CHARGE",
		Category:    "minibar",
		Description: "Minibar",
		Amount:      decimal.RequireFromString("25.50"),
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/properties/PROP-1/folios/FOLIO-1/transactions", "user-1", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("TXN-1", resp.TransactionID)
	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestPostTransaction_ClosedFolio_Conflict() {
	suite.mockFolioService.On("Post", mock.Anything, "PROP-1", "FOLIO-1", mock.Anything, "user-1").
		Return(nil, fmt.Errorf("%w: folio FOLIO-1", services.ErrFolioClosed)).Once()

	body := dto.PostTransactionRequest{
		Type:        "CHARGE",
		Category:    "minibar",
		Description: "Minibar",
		Amount:      decimal.RequireFromString("25.50"),
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/properties/PROP-1/folios/FOLIO-1/transactions", "user-1", body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestPostTransaction_InvalidBody() {
	w := suite.doRequest(http.MethodPost, "/api/v1/properties/PROP-1/folios/FOLIO-1/transactions", "user-1",
		map[string]string{"type": "NOT_A_TYPE"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFolioService.AssertNotCalled(suite.T(), "Post",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioHandlerTestSuite) TestCloseFolio_Success() {
	closed := &domain.Folio{
		FolioID:     "FOLIO-1",
		PropertyID:  "PROP-1",
		Balance:     decimal.Zero,
		Status:      domain.FolioClosed,
		CloseReason: "Guest departed",
	}
	suite.mockFolioService.On("Close", mock.Anything, "PROP-1", "FOLIO-1", "Guest departed", "user-1").
		Return(closed, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/properties/PROP-1/folios/FOLIO-1/close", "user-1",
		dto.CloseFolioRequest{Reason: "Guest departed"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FolioResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.FolioClosed), resp.Status)
	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestCloseFolio_AlreadyClosed_Conflict() {
	suite.mockFolioService.On("Close", mock.Anything, "PROP-1", "FOLIO-1", "Again", "user-1").
		Return(nil, fmt.Errorf("%w: folio FOLIO-1 is already closed", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/properties/PROP-1/folios/FOLIO-1/close", "user-1",
		dto.CloseFolioRequest{Reason: "Again"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestListTransactions_InvalidToken() {
	badToken := "not-a-token"
	suite.mockFolioService.On("ListTransactions", mock.Anything, "PROP-1", "FOLIO-1", 20, &badToken).
		Return(nil, nil, apperrors.NewAppError(400, "invalid pagination token", nil)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/properties/PROP-1/folios/FOLIO-1/transactions?nextToken=not-a-token", "user-1", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestGetStatement_Success() {
	statement := &domain.FolioStatement{
		FolioNumber:   "F20250830-101",
		GuestName:     "Ada Lovelace",
		TotalCharges:  decimal.RequireFromString("280"),
		TotalPayments: decimal.RequireFromString("150"),
		FinalBalance:  decimal.RequireFromString("130"),
	}
	suite.mockFolioService.On("Statement", mock.Anything, "PROP-1", "FOLIO-1").Return(statement, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/properties/PROP-1/folios/FOLIO-1/statement", "user-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.FinalBalance.Equal(decimal.RequireFromString("130")))
	suite.mockFolioService.AssertExpectations(suite.T())
}

func TestFolioHandler(t *testing.T) {
	suite.Run(t, new(FolioHandlerTestSuite))
}
