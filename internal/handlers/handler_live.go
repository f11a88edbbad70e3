package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

const (
	liveWriteTimeout = 5 * time.Second
	livePingInterval = 30 * time.Second
	liveBuffer       = 16
)

// liveHandler streams identity, policy, presence and market snapshots over a websocket. The
// connection's lifetime is the caller's presence.
type liveHandler struct {
	hub               *realtime.Hub
	permissionService portssvc.PermissionSvc
	policyService     portssvc.PolicySvc
	presenceService   portssvc.PresenceSvc
	marketService     portssvc.MarketSvc
	originPatterns    []string
}

func registerLiveRoutes(rg *gin.RouterGroup, hub *realtime.Hub, services *portssvc.ServiceContainer, allowedOrigins []string) {
	h := &liveHandler{
		hub:               hub,
		permissionService: services.Permission,
		policyService:     services.Policy,
		presenceService:   services.Presence,
		marketService:     services.Market,
		originPatterns:    originPatterns(allowedOrigins),
	}
	rg.GET("/live", h.live)
}

// originPatterns turns CORS origins ("https://console.example.com") into the host
// patterns the websocket origin check expects.
func originPatterns(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		o = strings.TrimPrefix(o, "https://")
		o = strings.TrimPrefix(o, "http://")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

// live godoc
// @Summary Live feed
// @Description Websocket. Sends a snapshot frame on connect and after every relevant change. The caller is online while connected.
// @Tags live
// @Param token query string false "Session token, for clients that cannot set headers"
// @Success 101
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /live [get]
func (h *liveHandler) live(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := callerID(c, logger)
	if !ok {
		return
	}

	// Resolve before upgrading so a stale token gets a plain HTTP error.
	if _, _, err := h.permissionService.MatrixFor(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		respondError(c, logger, err, "Failed to resolve live feed caller")
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{OriginPatterns: h.originPatterns})
	if err != nil {
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow()

	sub := h.hub.Subscribe(liveBuffer, realtime.TopicPolicy, realtime.TopicPresence, realtime.TopicMarkets, realtime.AccountTopic(accountID))
	defer h.hub.Unsubscribe(sub)

	disconnect, err := h.presenceService.Connect(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to register presence", slog.String("error", err.Error()))
		conn.Close(websocket.StatusInternalError, "presence unavailable")
		return
	}
	defer disconnect()

	// The client never sends anything; CloseRead handles control frames and cancels ctx
	// once the peer goes away.
	ctx := conn.CloseRead(c.Request.Context())
	logger.Info("Live feed connected")

	drain(sub.C) // our own connect event is already in the first snapshot
	frame, err := h.snapshot(ctx, accountID)
	if err != nil {
		logger.Error("Failed to build live snapshot", slog.String("error", err.Error()))
		conn.Close(websocket.StatusInternalError, "snapshot unavailable")
		return
	}

	ping := time.NewTicker(livePingInterval)
	defer ping.Stop()
	for {
		if frame != nil {
			if err := h.write(ctx, conn, frame); err != nil {
				logger.Info("Live feed write failed", slog.String("error", err.Error()))
				return
			}
			if frame.Type == dto.FrameRevoked {
				conn.Close(websocket.StatusPolicyViolation, "account removed")
				return
			}
			frame = nil
		}

		select {
		case <-ctx.Done():
			logger.Info("Live feed disconnected")
			return
		case <-ping.C:
			pingCtx, cancel := context.WithTimeout(ctx, liveWriteTimeout)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Info("Live feed ping failed", slog.String("error", err.Error()))
				return
			}
		case _, open := <-sub.C:
			if !open {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			drain(sub.C)
			frame, err = h.snapshot(ctx, accountID)
			if errors.Is(err, apperrors.ErrNotFound) {
				frame, err = &dto.LiveFrame{Type: dto.FrameRevoked, SentAt: time.Now()}, nil
			}
			if err != nil {
				logger.Error("Failed to refresh live snapshot", slog.String("error", err.Error()))
				frame = nil
			}
		}
	}
}

// drain discards queued events; one refresh covers them all.
func drain(ch <-chan realtime.Event) {
	for {
		select {
		case _, open := <-ch:
			if !open {
				return
			}
		default:
			return
		}
	}
}

func (h *liveHandler) write(ctx context.Context, conn *websocket.Conn, frame *dto.LiveFrame) error {
	writeCtx, cancel := context.WithTimeout(ctx, liveWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, frame)
}

// snapshot re-reads everything the frame carries. It returns ErrNotFound when the account
// no longer exists.
func (h *liveHandler) snapshot(ctx context.Context, accountID string) (*dto.LiveFrame, error) {
	account, matrix, err := h.permissionService.MatrixFor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	policy, err := h.policyService.GetPolicy(ctx)
	if err != nil {
		return nil, err
	}
	presence, err := h.presenceService.Snapshot(ctx, account)
	if err != nil {
		return nil, err
	}
	markets, err := h.marketService.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAccountResponse(account)
	return &dto.LiveFrame{
		Type:         dto.FrameSnapshot,
		Account:      &resp,
		Capabilities: dto.ToCapabilityMap(matrix),
		Policy:       &policy,
		Presence:     presence,
		Markets:      markets,
		SentAt:       time.Now(),
	}, nil
}
