package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // gorilla allows one concurrent writer
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

// Hub keeps one live connection per user. A new connection replaces the old one.
type Hub struct {
	clients map[int64]*client
	mutex   sync.RWMutex
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients: make(map[int64]*client),
		log:     log,
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) *client {
	c := &client{conn: conn}

	h.mutex.Lock()
	old := h.clients[userID]
	h.clients[userID] = c
	h.mutex.Unlock()

	if old != nil {
		_ = old.conn.Close()
	}
	return c
}

// Unregister drops c if it is still the user's current connection.
func (h *Hub) Unregister(userID int64, c *client) {
	h.mutex.Lock()
	if cur, ok := h.clients[userID]; ok && cur == c {
		delete(h.clients, userID)
	}
	h.mutex.Unlock()
	_ = c.conn.Close()
}

// Deliver writes an encoded event to every listed user that is online.
func (h *Hub) Deliver(userIDs []int64, frame []byte) {
	for _, userID := range userIDs {
		h.mutex.RLock()
		c := h.clients[userID]
		h.mutex.RUnlock()
		if c == nil {
			continue
		}
		if err := c.write(websocket.TextMessage, frame); err != nil {
			h.log.Debug("websocket write failed", zap.Int64("user_id", userID), zap.Error(err))
			h.Unregister(userID, c)
		}
	}
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.clients[userID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.clients {
		_ = c.conn.Close()
		delete(h.clients, userID)
	}
}
