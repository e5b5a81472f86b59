package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Push event types delivered over the /ws channel.
const (
	EventProfileUpdated     = "profile_updated"
	EventMiningStarted      = "mining_started"
	EventMiningProgress     = "mining_progress"
	EventMiningClaimed      = "mining_claimed"
	EventMiningAutoClaimed  = "mining_auto_claimed"
	EventAchievementClaimed = "achievement_claimed"
	EventBoostActivated     = "boost_activated"
	EventUserUpdated        = "user_updated"
)

const writeWait = 10 * time.Second

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type authMessage struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub tracks live client connections per user and fans state-change
// notifications out to them. Delivery is fire-and-forget: a failed or closed
// connection is skipped, clients reconcile through the request API.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades the connection and serves it until the peer goes away.
// The client must declare its user with an auth message before it receives
// any pushes; the declaration is trusted, identity was established by the
// HTTP auth flow.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn}
	var userID string
	defer func() {
		if userID != "" {
			h.unregister(userID, c)
		}
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg authMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			zap.L().Warn("malformed websocket message", zap.Error(err))
			continue
		}

		if msg.Type == "auth" && msg.UserID != "" && userID == "" {
			userID = msg.UserID
			h.register(userID, c)

			reply, _ := json.Marshal(map[string]string{"type": "auth_success", "userId": userID})
			if err := c.send(reply); err != nil {
				return
			}
		}
	}
}

// ServeHTTP lets the hub be mounted directly as a route handler.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.HandleWS(w, r)
}

func (h *Hub) register(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[userID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[userID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[userID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

// Publish delivers {type, data} to every open connection of the user.
// Best-effort, at-most-once: errors are logged and the sweep goes on.
func (h *Hub) Publish(userID, event string, data any) {
	raw, err := json.Marshal(envelope{Type: event, Data: data})
	if err != nil {
		zap.L().Error("failed to encode push event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(raw); err != nil {
			zap.L().Debug("push delivery skipped",
				zap.String("userID", userID),
				zap.String("event", event),
				zap.Error(err),
			)
		}
	}
}

// Connections reports the number of live connections for a user.
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
