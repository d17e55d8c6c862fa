package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Upgrader accepts spectator connections from any origin; access is gated by tokens.
var Upgrader = websocket.Upgrader{
	HandshakeTimeout: 4 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	CheckOrigin:      func(r *http.Request) bool { return true },
}

type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
	Room *Room
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan []byte, 16),
	}
}
