package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// textMessage is the websocket text frame opcode (RFC 6455).
const textMessage = 1

// defaultWriteTimeout bounds each broadcast write. A peer that stopped
// reading must error out and get dropped instead of wedging the hub.
const defaultWriteTimeout = 5 * time.Second

// Conn is the subset of a websocket connection the hub needs. Satisfied by
// *websocket.Conn from gofiber/contrib.
type Conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Event is the payload pushed to open dashboards on order changes.
type Event struct {
	Type  string `json:"type"`
	Order any    `json:"order"`
}

// Hub owns the set of live push connections. Writes are best-effort: a failed
// write drops the connection, nothing is retried or acknowledged.
type Hub struct {
	mu           sync.Mutex
	conns        map[uuid.UUID]Conn
	writeTimeout time.Duration
}

// NewHub creates an empty connection registry.
func NewHub() *Hub {
	return &Hub{
		conns:        make(map[uuid.UUID]Conn),
		writeTimeout: defaultWriteTimeout,
	}
}

// Add registers a connection and returns its id for later removal.
func (h *Hub) Add(c Conn) uuid.UUID {
	id := uuid.New()
	h.mu.Lock()
	h.conns[id] = c
	h.mu.Unlock()
	return id
}

// Remove unregisters a connection. Unknown ids are ignored.
func (h *Hub) Remove(id uuid.UUID) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

// Len reports the number of registered connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast serializes the event once and writes it to every connection.
// Connections whose write fails are closed and dropped.
func (h *Hub) Broadcast(eventType string, order any) {
	data, err := json.Marshal(Event{Type: eventType, Order: order})
	if err != nil {
		log.Printf("[WS] marshal %s event: %v", eventType, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.conns {
		_ = c.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := c.WriteMessage(textMessage, data); err != nil {
			_ = c.Close()
			delete(h.conns, id)
		}
	}
}

// Close shuts every connection and clears the registry. Used on server
// shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.conns {
		_ = c.Close()
		delete(h.conns, id)
	}
}
