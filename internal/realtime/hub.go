// Package realtime delivers notifications to connected clients over
// websockets. Delivery is best-effort: slow or gone clients are dropped.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/linkhub-net/linkhub/internal/middleware"
	"github.com/linkhub-net/linkhub/internal/storage"
)

var log = logrus.WithField("layer", "realtime")

const (
	writeWait      = 10 * time.Second
	pingPeriod     = 30 * time.Second
	sendBufferSize = 16
)

type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub keeps track of connected clients per user.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	closed  bool
}

// NewHub creates new instance of Hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[string]map[*client]struct{}),
	}
}

// Run blocks until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) error {
	<-ctx.Done()

	h.mu.Lock()
	h.closed = true
	for _, cc := range h.clients {
		for c := range cc {
			close(c.send)
		}
	}
	h.clients = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	return ctx.Err()
}

// Handler upgrades the request to a websocket connection. The request must
// be authenticated.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserID(r.Context())
		if userID == "" {
			http.Error(w, `{"error":"authorization required"}`, http.StatusUnauthorized)
			return
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Debug("failed to upgrade connection")
			return
		}

		c := &client{
			userID: userID,
			conn:   conn,
			send:   make(chan []byte, sendBufferSize),
		}

		if !h.register(c) {
			conn.Close()
			return
		}

		go c.writeLoop()
		go func() {
			c.readLoop()
			h.unregister(c)
		}()
	}
}

// Notify implements service.Notifier.
func (h *Hub) Notify(n *storage.Notification) {
	payload, err := json.Marshal(struct {
		ID        string            `json:"id"`
		Type      string            `json:"type"`
		Title     string            `json:"title"`
		Content   string            `json:"content"`
		Data      map[string]string `json:"data,omitempty"`
		Sender    string            `json:"sender_name"`
		CreatedAt int64             `json:"created_at"`
	}{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Content:   n.Content,
		Data:      n.Data,
		Sender:    n.Sender.Name,
		CreatedAt: n.CreatedAt.Unix(),
	})
	if err != nil {
		log.WithError(err).Error("failed to marshal notification")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[n.RecipientID] {
		select {
		case c.send <- payload:
		default:
			// the client is not keeping up, drop the message
		}
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}

	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	if cc, ok := h.clients[c.userID]; ok {
		if _, ok := cc[c]; ok {
			delete(cc, c)
			close(c.send)
		}
		if len(cc) == 0 {
			delete(h.clients, c.userID)
		}
	}
}

// ConnectionsCount returns the number of open connections.
func (h *Hub) ConnectionsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var n int
	for _, cc := range h.clients {
		n += len(cc)
	}

	return n
}

// Ping implements health.Pinger.
func (h *Hub) Ping(_ context.Context) (interface{}, error) {
	return map[string]interface{}{"connections": h.ConnectionsCount()}, nil
}

// Name implements health.Pinger.
func (h *Hub) Name() string {
	return "realtime"
}

func (c *client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) // nolint:errcheck
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) // nolint:errcheck
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) // nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound messages, the channel is one-way.
func (c *client) readLoop() {
	defer c.conn.Close()

	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
