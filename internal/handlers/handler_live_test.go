package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

func (s *APITestSuite) dialLive(ctx context.Context, token string) *websocket.Conn {
	srv := httptest.NewServer(s.router)
	s.T().Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/live"
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPHeader: http.Header{"Authorization": []string{"Bearer " + token}},
	})
	s.Require().NoError(err)
	return conn
}

func (s *APITestSuite) readFrame(ctx context.Context, conn *websocket.Conn) dto.LiveFrame {
	var frame dto.LiveFrame
	s.Require().NoError(wsjson.Read(ctx, conn, &frame))
	return frame
}

func (s *APITestSuite) online(accountID string) bool {
	p, err := s.store.GetPresence(context.Background(), accountID)
	return err == nil && p.Online
}

func (s *APITestSuite) TestLive_SnapshotUpdatesAndPresence() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := s.dialLive(ctx, s.memberToken)

	first := s.readFrame(ctx, conn)
	s.Equal(dto.FrameSnapshot, first.Type)
	s.Equal(s.member.AccountID, first.Account.AccountID)
	s.Equal(domain.DefaultGlobalPolicy().Title, first.Policy.Title)
	s.True(first.Presence[s.member.AccountID].Online, "the connection itself marks the member online")
	s.Len(first.Presence, 1, "members only see themselves")
	s.Len(first.Markets, len(domain.BuiltinMarkets()))

	title := "Night shift"
	w := s.do(http.MethodPut, "/api/v1/settings", s.adminToken, dto.UpdateSettingsRequest{Title: &title})
	s.Require().Equal(http.StatusOK, w.Code)

	next := s.readFrame(ctx, conn)
	s.Equal(title, next.Policy.Title)

	s.Require().NoError(conn.Close(websocket.StatusNormalClosure, "bye"))
	s.Eventually(func() bool { return !s.online(s.member.AccountID) }, 2*time.Second, 20*time.Millisecond,
		"closing the connection marks the member offline")
}

func (s *APITestSuite) TestLive_AccountDeletedRevokes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := s.dialLive(ctx, s.memberToken)
	defer conn.CloseNow()
	s.readFrame(ctx, conn)

	w := s.do(http.MethodDelete, "/api/v1/accounts/"+s.member.AccountID, s.adminToken, nil)
	s.Require().Equal(http.StatusNoContent, w.Code)

	frame := s.readFrame(ctx, conn)
	s.Equal(dto.FrameRevoked, frame.Type)
}

func (s *APITestSuite) TestLive_StaleTokenIsPlainHTTPError() {
	stale := s.token("no-such-account")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/live", nil)
	req.Header.Set("Authorization", "Bearer "+stale)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestLive_NewMarketPushesFrame() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := s.dialLive(ctx, s.memberToken)
	defer conn.CloseNow()
	s.readFrame(ctx, conn)

	w := s.do(http.MethodPost, "/api/v1/markets", s.adminToken, dto.CreateMarketRequest{Name: "Seoudi Sheikh Zayed"})
	s.Require().Equal(http.StatusCreated, w.Code)

	frame := s.readFrame(ctx, conn)
	s.Require().NotEmpty(frame.Markets)
	s.Equal("Seoudi Sheikh Zayed", frame.Markets[len(frame.Markets)-1].Name)
}
