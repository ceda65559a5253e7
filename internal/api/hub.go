// internal/api/hub.go
package api

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type direct struct {
	client *Client
	data   []byte
}

// Hub keeps the set of connected clients and fans messages out to them. Only
// Run touches the client set.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	direct     chan direct
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		direct:     make(chan direct, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations and deliveries until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.logger.Printf("Client connected (%d total)", len(h.clients))
		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
				h.logger.Printf("Client disconnected (%d total)", len(h.clients))
			}
		case data := <-h.broadcast:
			for c := range h.clients {
				h.deliver(c, data)
			}
		case d := <-h.direct:
			if h.clients[d.client] {
				h.deliver(d.client, d.data)
			}
		}
	}
}

// Broadcast queues msg for every client.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Printf("Failed to marshal %s: %v", msg.Type, err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

// SendTo queues msg for a single client. Unknown clients are ignored.
func (h *Hub) SendTo(c *Client, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Printf("Failed to marshal %s: %v", msg.Type, err)
		return
	}
	select {
	case h.direct <- direct{client: c, data: data}:
	case <-h.done:
	}
}

func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// deliver never blocks: a client that cannot keep up is dropped.
func (h *Hub) deliver(c *Client, data []byte) {
	select {
	case c.send <- data:
	default:
		h.logger.Printf("Client too slow, dropping connection")
		h.drop(c)
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
}
