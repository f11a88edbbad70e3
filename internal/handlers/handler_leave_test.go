package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Debit(ctx context.Context, requesterID string, req dto.DebitLeaveRequest) (*domain.LeaveTransaction, error) {
	args := m.Called(ctx, requesterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveTransaction), args.Error(1)
}

func (m *MockLedgerService) Void(ctx context.Context, requesterID string, transactionID string) error {
	return m.Called(ctx, requesterID, transactionID).Error(0)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, requesterID string, params dto.ListLeaveTransactionsParams) (*dto.ListLeaveTransactionsResponse, error) {
	args := m.Called(ctx, requesterID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLeaveTransactionsResponse), args.Error(1)
}

func (m *MockLedgerService) GetBalance(ctx context.Context, requesterID string, accountID string) (*dto.BalanceResponse, error) {
	args := m.Called(ctx, requesterID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceResponse), args.Error(1)
}

func (m *MockLedgerService) CurrentPeriod() domain.AccountingPeriod {
	return m.Called().Get(0).(domain.AccountingPeriod)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LeaveHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	accountID  string
}

func (suite *LeaveHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.accountID = "acc-123"
	suite.mockLedger = new(MockLedgerService)

	suite.router = gin.New()
	// Stand-in for AuthMiddleware
	suite.router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithAccountID(c.Request.Context(), suite.accountID))
		c.Next()
	})
	registerLeaveRoutes(suite.router.Group("/api/v1"), suite.mockLedger, nil)
}

func (suite *LeaveHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leave/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LeaveHandlerTestSuite) TestDebit_Success() {
	expected := dto.DebitLeaveRequest{Pool: "sick", Days: 2, Date: "2024-03-14"}
	txn := &domain.LeaveTransaction{TransactionID: "t-1", AccountID: suite.accountID, Pool: domain.PoolSick, Days: 2}
	suite.mockLedger.On("Debit", mock.Anything, suite.accountID, expected).Return(txn, nil).Once()

	w := suite.post(`{"pool":"sick","days":2,"date":"2024-03-14"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"transactionID":"t-1"`)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestDebit_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"insufficient", apperrors.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{"contention", apperrors.ErrBalanceChanged, http.StatusConflict},
		{"store down", apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"unknown", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockLedger.On("Debit", mock.Anything, suite.accountID, mock.Anything).Return(nil, tt.err).Once()
			w := suite.post(`{"pool":"annual","days":1,"date":"2024-03-14"}`)
			suite.Equal(tt.status, w.Code)
		})
	}
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestDebit_BindingRejectsBeforeService() {
	for _, body := range []string{
		`{"pool":"holiday","days":1,"date":"2024-03-14"}`,
		`{"pool":"annual","days":0,"date":"2024-03-14"}`,
		`{"pool":"annual","days":1,"date":"14/03/2024"}`,
		`not json`,
	} {
		w := suite.post(body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "Debit")
}

func (suite *LeaveHandlerTestSuite) TestGetBalance_DefaultsToCaller() {
	resp := &dto.BalanceResponse{AccountID: suite.accountID, AsOf: time.Now()}
	suite.mockLedger.On("GetBalance", mock.Anything, suite.accountID, suite.accountID).Return(resp, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave/balance", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestVoid_Forbidden() {
	suite.mockLedger.On("Void", mock.Anything, suite.accountID, "t-9").Return(apperrors.ErrForbidden).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/leave/transactions/t-9", nil))

	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Run Test Suite ---
func TestLeaveHandler(t *testing.T) {
	suite.Run(t, new(LeaveHandlerTestSuite))
}
