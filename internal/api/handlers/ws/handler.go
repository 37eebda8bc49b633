// Package ws serves the live notification channel over websockets.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/api/respond"
	"github.com/aliskhannn/jobden/internal/config"
	"github.com/aliskhannn/jobden/internal/model"
	"github.com/aliskhannn/jobden/internal/registry"
	"github.com/aliskhannn/jobden/pkg/token"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/ws/mock.go -package=mocks

type tokenParser interface {
	Parse(raw string) (token.Claims, error)
}

type connRegistry interface {
	Register(userID int64, conn registry.Conn)
	Unregister(userID int64, conn registry.Conn)
	OnlineUserCount() int
	ConnectionCount() int
}

type notificationService interface {
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, id int64) (model.Notification, error)
}

// Messages sent to the client.
type (
	connectionMessage struct {
		Type    string `json:"type"`
		Status  string `json:"status"`
		Message string `json:"message"`
		UserID  int64  `json:"user_id"`
	}

	unreadCountMessage struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	}

	pongMessage struct {
		Type      string          `json:"type"`
		Timestamp json.RawMessage `json:"timestamp"`
	}

	notificationReadMessage struct {
		Type           string `json:"type"`
		NotificationID int64  `json:"notification_id"`
	}
)

// clientMessage is any message received from the client.
type clientMessage struct {
	Type           string          `json:"type"`
	Timestamp      json.RawMessage `json:"timestamp,omitempty"`
	NotificationID int64           `json:"notification_id" validate:"omitempty,gt=0"`
}

// Handler upgrades authenticated requests to live notification connections.
type Handler struct {
	tokens    tokenParser
	registry  connRegistry
	service   notificationService
	validator *validator.Validate
	upgrader  websocket.Upgrader
	cfg       config.WebSocket
}

func NewHandler(
	tokens tokenParser,
	reg connRegistry,
	s notificationService,
	v *validator.Validate,
	cfg config.WebSocket,
	allowedOrigins []string,
) *Handler {
	return &Handler{
		tokens:    tokens,
		registry:  reg,
		service:   s,
		validator: v,
		cfg:       cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		for _, o := range allowed {
			if o == origin || o == "*" {
				return true
			}
		}

		return false
	}
}

// Connect serves GET /ws/notifications?token=<access token>.
//
// The upgrade is accepted before the token is checked so that a rejected
// client receives a close frame with code 1008.
func (h *Handler) Connect(c *ginext.Context) {
	wsConn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	cn := newConn(wsConn, h.cfg.WriteWait)

	claims, err := h.tokens.Parse(c.Query("token"))
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, token.ErrTokenExpired) {
			reason = "token expired"
		}

		zlog.Logger.Warn().Err(err).Msg("rejected websocket connection")
		_ = cn.CloseWith(websocket.ClosePolicyViolation, reason)
		return
	}

	userID := claims.UserID
	ctx := c.Request.Context()

	h.registry.Register(userID, cn)
	defer func() {
		h.registry.Unregister(userID, cn)
		_ = cn.Close()
	}()

	expiry := time.AfterFunc(h.lifetime(claims.ExpiresAt), func() {
		zlog.Logger.Info().Int64("user_id", userID).Msg("closing websocket: credentials expired")
		_ = cn.CloseWith(websocket.ClosePolicyViolation, "token expired")
	})
	defer expiry.Stop()

	if err := cn.Send(connectionMessage{
		Type:    "connection",
		Status:  "connected",
		Message: "Successfully connected to notification stream",
		UserID:  userID,
	}); err != nil {
		zlog.Logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to send connection ack")
		return
	}

	if err := h.sendUnreadCount(ctx, cn, userID); err != nil {
		return
	}

	if h.cfg.MaxMessageSize > 0 {
		wsConn.SetReadLimit(h.cfg.MaxMessageSize)
	}

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				zlog.Logger.Warn().Err(err).Int64("user_id", userID).Msg("websocket read failed")
			}
			return
		}

		if err := h.handleMessage(ctx, cn, userID, data); err != nil {
			zlog.Logger.Warn().Err(err).Int64("user_id", userID).Msg("websocket write failed")
			return
		}
	}
}

// lifetime returns how long a connection may stay open: until the token
// expires, capped by the configured maximum.
func (h *Handler) lifetime(expiresAt time.Time) time.Duration {
	d := time.Until(expiresAt)
	if h.cfg.MaxConnectionLifetime > 0 && (expiresAt.IsZero() || h.cfg.MaxConnectionLifetime < d) {
		d = h.cfg.MaxConnectionLifetime
	}
	if d < 0 {
		d = 0
	}

	return d
}

// handleMessage answers one client message. Unknown or malformed messages are
// ignored. Only a failed write is returned.
func (h *Handler) handleMessage(ctx context.Context, cn *conn, userID int64, data []byte) error {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		zlog.Logger.Debug().Err(err).Int64("user_id", userID).Msg("ignoring malformed websocket message")
		return nil
	}

	if err := h.validator.Struct(msg); err != nil {
		zlog.Logger.Debug().Err(err).Int64("user_id", userID).Msg("ignoring invalid websocket message")
		return nil
	}

	switch msg.Type {
	case "ping":
		return cn.Send(pongMessage{Type: "pong", Timestamp: msg.Timestamp})

	case "mark_read":
		if msg.NotificationID == 0 {
			return nil
		}

		if _, err := h.service.MarkRead(ctx, userID, msg.NotificationID); err != nil {
			zlog.Logger.Debug().
				Err(err).
				Int64("user_id", userID).
				Int64("notification_id", msg.NotificationID).
				Msg("ignoring mark_read")
			return nil
		}

		return cn.Send(notificationReadMessage{Type: "notification_read", NotificationID: msg.NotificationID})

	case "get_unread_count":
		return h.sendUnreadCount(ctx, cn, userID)

	default:
		return nil
	}
}

func (h *Handler) sendUnreadCount(ctx context.Context, cn *conn, userID int64) error {
	count, err := h.service.UnreadCount(ctx, userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to count unread notifications")
		return nil
	}

	if err := cn.Send(unreadCountMessage{Type: "unread_count", Count: count}); err != nil {
		return fmt.Errorf("send unread count: %w", err)
	}

	return nil
}

// OnlineStatus reports how many users and connections are live on this node.
func (h *Handler) OnlineStatus(c *ginext.Context) {
	respond.OK(c.Writer, map[string]int{
		"online_users":      h.registry.OnlineUserCount(),
		"total_connections": h.registry.ConnectionCount(),
	})
}
