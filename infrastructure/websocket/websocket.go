package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"bizmanager/domain/ports"
	"bizmanager/pkg/logger"
)

const broadcastBuffer = 64

// Conn is the part of *websocket.Conn the hub needs
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type client struct {
	conn     Conn
	username string
	// entities the client subscribed to; empty means everything
	topics map[string]bool
}

func (c *client) wants(event *ports.ChangeEvent) bool {
	if len(c.topics) == 0 {
		return true
	}
	entity := event.Type
	for i := 0; i < len(entity); i++ {
		if entity[i] == '.' {
			entity = entity[:i]
			break
		}
	}
	return c.topics[entity]
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub pushes change events to connected browsers. It implements
// ports.EventPublisher so it can sit behind the messaging fanout.
type Hub struct {
	clients    map[Conn]*client
	unregister chan Conn
	broadcast  chan *ports.ChangeEvent
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[Conn]*client),
		unregister: make(chan Conn),
		broadcast:  make(chan *ports.ChangeEvent, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Start() {
	go h.run()
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.unregister:
			h.remove(conn)

		case event := <-h.broadcast:
			var failed []Conn
			h.mutex.RLock()
			for conn, c := range h.clients {
				if !c.wants(event) {
					continue
				}
				if err := conn.WriteJSON(Message{Type: event.Type, Data: event}); err != nil {
					logger.Warn("WebSocket send failed", "username", c.username, "error", err)
					failed = append(failed, conn)
				}
			}
			h.mutex.RUnlock()
			for _, conn := range failed {
				h.remove(conn)
			}

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

func (h *Hub) remove(conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		logger.Debug("WebSocket client disconnected", "username", c.username)
	}
}

// Register adds the connection before returning so its first message finds it
func (h *Hub) Register(conn Conn, username string) {
	h.mutex.Lock()
	h.clients[conn] = &client{conn: conn, username: username, topics: map[string]bool{}}
	h.mutex.Unlock()
	logger.Debug("WebSocket client connected", "username", username)
}

func (h *Hub) Unregister(conn Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Publish queues the event without blocking the request; a full queue drops it
func (h *Hub) Publish(ctx context.Context, event *ports.ChangeEvent) error {
	select {
	case h.broadcast <- event:
	case <-h.done:
	default:
		logger.WarnContext(ctx, "WebSocket broadcast queue full, dropping event", "type", event.Type, "id", event.ID)
	}
	return nil
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// HandleMessage serves the small client protocol: ping, subscribe, unsubscribe.
// subscribe/unsubscribe carry {"entities": ["task", "car"]}.
func (h *Hub) HandleMessage(conn Conn, data []byte) {
	var msg struct {
		Type string `json:"type"`
		Data struct {
			Entities []string `json:"entities"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		logger.Debug("WebSocket message ignored", "error", err)
		return
	}

	// replies hold the write lock so they never interleave with a broadcast
	switch msg.Type {
	case "ping":
		h.mutex.Lock()
		conn.WriteJSON(Message{Type: "pong"})
		h.mutex.Unlock()

	case "subscribe", "unsubscribe":
		h.mutex.Lock()
		c, ok := h.clients[conn]
		if ok {
			for _, e := range msg.Data.Entities {
				if msg.Type == "subscribe" {
					c.topics[e] = true
				} else {
					delete(c.topics, e)
				}
			}
			conn.WriteJSON(Message{Type: msg.Type + "d", Data: msg.Data.Entities})
		}
		h.mutex.Unlock()

	default:
		logger.Debug("Unknown WebSocket message type", "type", msg.Type)
	}
}
