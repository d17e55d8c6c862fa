package websocket

import (
	"log"
	"sync"
)

// Hub keeps one Room per match.
type Hub struct {
	Rooms map[string]*Room
	mu    sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Rooms: make(map[string]*Room),
	}
}

// GetRoom returns the room for roomID, creating it on first use.
func (h *Hub) GetRoom(roomID string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.room(roomID)
}

// Join adds c to the room for roomID, creating the room if needed.
func (h *Hub) Join(roomID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.room(roomID).AddClient(c)
}

// room must be called with h.mu held.
func (h *Hub) room(roomID string) *Room {
	room, exists := h.Rooms[roomID]
	if !exists {
		room = NewRoom(roomID)
		h.Rooms[roomID] = room
	}
	return room
}

// Leave removes c from its room and forgets the room once nobody is left.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := c.Room
	if room == nil {
		return
	}
	room.RemoveClient(c)
	if room.Len() == 0 && h.Rooms[room.ID] == room {
		delete(h.Rooms, room.ID)
		log.Printf("Room %s closed", room.ID)
	}
}

// Len is the number of open rooms.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.Rooms)
}

// Broadcast sends message to the room's clients. Rooms nobody joined are skipped.
func (h *Hub) Broadcast(roomID string, message []byte) {
	h.mu.Lock()
	room, exists := h.Rooms[roomID]
	h.mu.Unlock()

	if exists {
		room.Broadcast(message)
	}
}
