package ws

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/krishanu7/sea-battle/internal/auth"
	wsPkg "github.com/krishanu7/sea-battle/pkg/websocket"
)

// Handler streams match events to spectators. Spectators only listen;
// anything they send is discarded.
type Handler struct {
	Hub *wsPkg.Hub
}

func NewHandler(hub *wsPkg.Hub) *Handler {
	return &Handler{
		Hub: hub,
	}
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	matchID, ok := auth.MatchFromContext(r.Context())
	if !ok {
		matchID = r.URL.Query().Get("matchId")
	}
	if matchID == "" {
		http.Error(w, "missing matchId", http.StatusBadRequest)
		return
	}

	conn, err := wsPkg.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade failed: %v", err)
		return
	}

	client := wsPkg.NewClient(uuid.NewString(), conn)
	h.Hub.Join(matchID, client)

	go h.read(client)
	go h.write(client)
}

func (h *Handler) read(c *wsPkg.Client) {
	defer func() {
		h.Hub.Leave(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Read error for spectator %s: %v", c.ID, err)
			}
			return
		}
	}
}

func (h *Handler) write(c *wsPkg.Client) {
	defer c.Conn.Close()

	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("Write error for spectator %s: %v", c.ID, err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
