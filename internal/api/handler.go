// internal/api/handler.go
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and pumps the connection: frames from the
// client become intents for the loop owner, frames from the hub are written
// back.
func (s *Server) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("Upgrade failed: %v", err)
		return
	}
	c := &Client{hub: s.hub, conn: conn, send: make(chan []byte, sendBuffer)}
	if !s.hub.add(c) {
		conn.Close()
		return
	}
	go c.writePump()
	// первый кадр: текущее состояние
	s.submit(Intent{Kind: intentHello, client: c})
	s.readPump(c)
}

func (s *Server) readPump(c *Client) {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("Read error: %v", err)
			}
			return
		}
		in, err := decodeIntent(data)
		if err != nil {
			s.logger.Printf("Discarding malformed message: %v", err)
			continue
		}
		in.client = c
		s.submit(in)
	}
}

// writePump exits when the hub closes c.send.
func (c *Client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
