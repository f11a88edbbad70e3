package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/adapters/database/memory"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/core/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/handlers"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/config"
	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// APITestSuite drives the real router and services over the memory store.
type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *memory.Store
	hub    *realtime.Hub
	clock  *clock.FakeClock
	cfg    *config.Config
	svc    *portssvc.ServiceContainer

	admin  domain.Account
	member domain.Account

	adminToken  string
	memberToken string
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.store = memory.NewStore()
	s.hub = realtime.NewHub()
	s.clock = clock.Fake(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
	s.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fieldops-test",
		LoginRateLimit:    "3-M",
		OwnCompanyName:    "Own Co",
	}
	m := metrics.New()
	s.svc = services.NewServiceContainer(s.cfg, s.store.Provider(), s.hub, s.clock, m)

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(handlers.RegisterRoutes(s.router, s.cfg, s.svc, handlers.Deps{Hub: s.hub, Metrics: m}))

	s.admin = s.seed("admin", domain.RoleAdmin)
	s.member = s.seed("member", domain.RoleMember)
	s.adminToken = s.token(s.admin.AccountID)
	s.memberToken = s.token(s.member.AccountID)
}

func (s *APITestSuite) seed(username string, role domain.Role) domain.Account {
	hash, err := utils.HashPassword("pass-" + username)
	s.Require().NoError(err)
	acc := domain.Account{
		AccountID:        uuid.NewString(),
		Username:         username,
		CredentialSecret: hash,
		Role:             role,
		DisplayName:      "Name " + username,
		Grants:           domain.DefaultMemberGrants(),
		Balance:          domain.DefaultLeaveBalance(),
	}
	s.Require().NoError(s.store.SaveAccount(context.Background(), acc))
	return acc
}

func (s *APITestSuite) token(accountID string) string {
	tok, _, err := utils.GenerateJWT(accountID, s.cfg.JWTSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return tok
}

// do performs a request; body is JSON encoded when not nil.
func (s *APITestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *APITestSuite) TestHealthAndMetrics() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())

	w = s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "fieldops_online_accounts")
}

func (s *APITestSuite) TestLogin() {
	w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "member", Password: "pass-member"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	s.decode(w, &resp)
	s.NotEmpty(resp.Token)
	s.Equal(s.member.AccountID, resp.Account.AccountID)

	w = s.do(http.MethodGet, "/api/v1/me", resp.Token, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestLogin_WrongPasswordAndRateLimit() {
	for i := 0; i < 3; i++ {
		w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "member", Password: "nope"})
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid username or password")
	}
	w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "member", Password: "pass-member"})
	s.Equal(http.StatusTooManyRequests, w.Code)
}

func (s *APITestSuite) TestProtectedRoutesNeedToken() {
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/me", "", nil).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/me", "garbage", nil).Code)
}

func (s *APITestSuite) TestMe_ReflectsPolicySwitch() {
	w := s.do(http.MethodGet, "/api/v1/me", s.memberToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var me dto.MeResponse
	s.decode(w, &me)
	s.True(me.Capabilities[string(domain.CapViewSalesLog)])
	s.False(me.Capabilities[string(domain.CapManageAccounts)])

	off := false
	w = s.do(http.MethodPut, "/api/v1/settings", s.adminToken, dto.UpdateSettingsRequest{
		Visibility: &dto.UpdateVisibilityRequest{SalesLog: &off},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/me", s.memberToken, nil)
	s.decode(w, &me)
	s.False(me.Capabilities[string(domain.CapViewSalesLog)])

	// the switch is enforced on the listing as well
	w = s.do(http.MethodGet, "/api/v1/sales", s.memberToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *APITestSuite) TestSettings_PartialUpdateAndForbidden() {
	title := "Field Console"
	w := s.do(http.MethodPut, "/api/v1/settings", s.memberToken, dto.UpdateSettingsRequest{Title: &title})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPut, "/api/v1/settings", s.adminToken, dto.UpdateSettingsRequest{Title: &title})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/settings", s.memberToken, nil)
	var policy domain.GlobalPolicy
	s.decode(w, &policy)
	s.Equal(title, policy.Title)
	s.True(policy.Ticker.Active, "defaults fill fields never saved")
}

func (s *APITestSuite) TestAccounts_AdminOnly() {
	w := s.do(http.MethodGet, "/api/v1/accounts", s.memberToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	req := dto.CreateAccountRequest{Username: "sara", Password: "secret", DisplayName: "Sara"}
	w = s.do(http.MethodPost, "/api/v1/accounts", s.adminToken, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.AccountResponse
	s.decode(w, &created)
	s.Equal(domain.RoleMember, created.Role)
	s.Equal(domain.DefaultLeaveBalance(), created.Balance)
	s.NotContains(w.Body.String(), "credential")

	w = s.do(http.MethodPost, "/api/v1/accounts", s.adminToken, req)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/v1/accounts", s.adminToken, nil)
	var list dto.ListAccountsResponse
	s.decode(w, &list)
	s.Len(list.Accounts, 3)

	w = s.do(http.MethodDelete, "/api/v1/accounts/"+s.admin.AccountID, s.adminToken, nil)
	s.Equal(http.StatusBadRequest, w.Code, "cannot delete yourself")
}

func (s *APITestSuite) TestCustomProducts() {
	w := s.do(http.MethodPost, "/api/v1/me/products", s.memberToken, dto.AddCustomProductRequest{Name: " Rose Gel "})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/me/products", s.memberToken, dto.AddCustomProductRequest{Name: "rose gel"})
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/v1/me/products", s.memberToken, nil)
	var resp dto.CustomProductsResponse
	s.decode(w, &resp)
	s.Equal([]string{"Rose Gel"}, resp.Products)
}

func (s *APITestSuite) TestLeave_DebitListVoid() {
	w := s.do(http.MethodGet, "/api/v1/leave/period", s.memberToken, nil)
	var period dto.PeriodResponse
	s.decode(w, &period)
	s.Equal("2024-02-21_2024-03-20", period.Label)

	debit := dto.DebitLeaveRequest{Pool: "annual", Days: 3, Date: "2024-03-14"}
	w = s.do(http.MethodPost, "/api/v1/leave/transactions", s.memberToken, debit)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var txn domain.LeaveTransaction
	s.decode(w, &txn)
	s.Equal(s.member.AccountID, txn.AccountID)

	debit.Days = 100
	w = s.do(http.MethodPost, "/api/v1/leave/transactions", s.memberToken, debit)
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodGet, "/api/v1/leave/balance", s.memberToken, nil)
	var bal dto.BalanceResponse
	s.decode(w, &bal)
	s.Equal(domain.DefaultLeaveBalance().Annual-3, bal.Balance.Annual)

	w = s.do(http.MethodGet, "/api/v1/leave/transactions", s.memberToken, nil)
	var page dto.ListLeaveTransactionsResponse
	s.decode(w, &page)
	s.Len(page.Transactions, 1)

	w = s.do(http.MethodDelete, "/api/v1/leave/transactions/"+txn.TransactionID, s.memberToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodDelete, "/api/v1/leave/transactions/"+txn.TransactionID, s.adminToken, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/leave/balance", s.memberToken, nil)
	s.decode(w, &bal)
	s.Equal(domain.DefaultLeaveBalance().Annual-3, bal.Balance.Annual, "void does not restore the balance")

	w = s.do(http.MethodGet, "/api/v1/leave/transactions?limit=1000", s.adminToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestRecords_CreateListSummaryDelete() {
	sale := map[string]any{
		"market": "Carrefour",
		"date":   "2024-03-10",
		"items": []map[string]any{
			{"product": "Rose 1L", "price": "12.5", "quantity": 2},
			{"product": "Rose 2L", "price": "13", "quantity": 1},
		},
	}
	w := s.do(http.MethodPost, "/api/v1/sales", s.memberToken, sale)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var rec domain.SaleRecord
	s.decode(w, &rec)
	s.Equal("38", rec.Total.String())

	w = s.do(http.MethodGet, "/api/v1/sales?month=2024-03", s.memberToken, nil)
	var recs []domain.SaleRecord
	s.decode(w, &recs)
	s.Len(recs, 1)

	w = s.do(http.MethodGet, "/api/v1/sales?month=March", s.memberToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/sales/summary", s.memberToken, nil)
	var summary domain.SalesSummary
	s.decode(w, &summary)
	s.Equal("38", summary.GrandTotal.String())

	w = s.do(http.MethodDelete, "/api/v1/sales/"+rec.RecordID, s.memberToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
	w = s.do(http.MethodDelete, "/api/v1/sales/"+rec.RecordID, s.adminToken, nil)
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/api/v1/sales/"+rec.RecordID, s.adminToken, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/v1/inventory", s.memberToken, map[string]any{
		"market": "Carrefour", "date": "2024-03-10",
		"items": []map[string]any{{"product": "Rose 1L", "quantity": 7}},
	})
	s.Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/competitor-prices", s.memberToken, map[string]any{
		"market": "Carrefour", "company": "Other Co", "date": "2024-03-10",
		"items": []map[string]any{{"product": "Their 1L", "price": "-1"}},
	})
	s.Equal(http.StatusBadRequest, w.Code, "negative prices are rejected")
}

func (s *APITestSuite) TestNotifications() {
	w := s.do(http.MethodPost, "/api/v1/notifications", s.memberToken, dto.SendNotificationRequest{TargetAccountID: s.admin.AccountID, Message: "hi"})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/v1/notifications", s.adminToken, dto.SendNotificationRequest{TargetAccountID: s.member.AccountID, Message: "Stock check at 5"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var n domain.Notification
	s.decode(w, &n)
	s.Equal("Name admin", n.SenderName)

	w = s.do(http.MethodGet, "/api/v1/notifications", s.memberToken, nil)
	var list dto.ListNotificationsResponse
	s.decode(w, &list)
	s.Equal(1, list.Unread)

	w = s.do(http.MethodPut, "/api/v1/notifications/"+n.NotificationID+"/read", s.adminToken, nil)
	s.Equal(http.StatusNotFound, w.Code, "only the recipient can mark it read")

	w = s.do(http.MethodPut, "/api/v1/notifications/"+n.NotificationID+"/read", s.memberToken, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/notifications", s.memberToken, nil)
	s.decode(w, &list)
	s.Equal(0, list.Unread)
}

func (s *APITestSuite) TestMarkets() {
	w := s.do(http.MethodPost, "/api/v1/markets", s.memberToken, dto.CreateMarketRequest{Name: "Spinneys Zayed"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var m domain.Market
	s.decode(w, &m)
	s.Equal(s.member.AccountID, m.CreatedBy)

	w = s.do(http.MethodPost, "/api/v1/markets", s.adminToken, dto.CreateMarketRequest{Name: "spinneys zayed"})
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/v1/markets", s.adminToken, dto.CreateMarketRequest{})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/markets", s.memberToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListMarketsResponse
	s.decode(w, &list)
	s.Len(list.Markets, len(domain.BuiltinMarkets())+1)
	s.Equal("Spinneys Zayed", list.Markets[len(list.Markets)-1].Name)
}

func (s *APITestSuite) TestPresence_MemberSeesOnlySelf() {
	w := s.do(http.MethodGet, "/api/v1/presence", s.memberToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var snap map[string]domain.Presence
	s.decode(w, &snap)
	for id := range snap {
		s.Equal(s.member.AccountID, id)
	}
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
