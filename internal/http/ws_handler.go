package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tuanvumaihuynh/inventory-hub/internal/hub"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsMaxMessage = 4 << 10
)

const (
	wsActionJoin  = "join"
	wsActionLeave = "leave"
)

// wsCommand is sent by clients to change their group memberships.
type wsCommand struct {
	Action string `json:"action"`
	Group  string `json:"group"`
}

// wsConn adapts a websocket connection to a hub subscriber. The hub writer
// is the only caller of Send, which matches gorilla's one-writer rule.
type wsConn struct {
	id   string
	conn *websocket.Conn
}

var _ hub.Conn = (*wsConn)(nil)

func (c *wsConn) ID() string { return c.id }

func (c *wsConn) Send(_ context.Context, msg hub.Message) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func (c *wsConn) Close() error {
	//nolint:errcheck
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(wsWriteWait))
	return c.conn.Close()
}

type wsHandler struct {
	logger   *slog.Logger
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

func newWSHandler(logger *slog.Logger, h *hub.Hub, allowedOrigins []string) *wsHandler {
	return &wsHandler{
		logger: logger,
		hub:    h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	if slices.Contains(allowedOrigins, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowedOrigins, origin)
	}
}

// Subscribe upgrades the request and registers the connection with the hub
// until the client goes away.
func (h *wsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		h.logger.WarnContext(r.Context(), "problem initiating websocket", slog.Any("error", err))
		return
	}

	sub := &wsConn{id: uuid.NewString(), conn: conn}
	if err := h.hub.Subscribe(sub); err != nil {
		h.logger.ErrorContext(r.Context(), "error subscribing websocket", slog.Any("error", err))
		_ = conn.Close()
		return
	}
	defer h.hub.Unsubscribe(sub.id)

	logger := h.logger.With(slog.String("subscriber_id", sub.id))
	logger.InfoContext(r.Context(), "client connected")

	conn.SetReadLimit(wsMaxMessage)
	//nolint:errcheck
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WarnContext(r.Context(), "websocket closed unexpectedly", slog.Any("error", err))
				return
			}
			logger.InfoContext(r.Context(), "client disconnected")
			return
		}

		var cmd wsCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			logger.WarnContext(r.Context(), "malformed websocket command", slog.Any("error", err))
			continue
		}

		if err := h.apply(sub.id, cmd); err != nil {
			logger.WarnContext(r.Context(), "rejected websocket command",
				slog.String("action", cmd.Action),
				slog.String("group", cmd.Group),
				slog.Any("error", err),
			)
			continue
		}

		logger.DebugContext(r.Context(), "websocket command applied",
			slog.String("action", cmd.Action),
			slog.String("group", cmd.Group),
		)
	}
}

func (h *wsHandler) apply(id string, cmd wsCommand) error {
	if cmd.Group == "" {
		return errors.New("group is required")
	}

	switch cmd.Action {
	case wsActionJoin:
		return h.hub.JoinGroup(id, cmd.Group)
	case wsActionLeave:
		return h.hub.LeaveGroup(id, cmd.Group)
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
}

func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
