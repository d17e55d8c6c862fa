package websocket

import (
	"log"
	"sync"
)

type Room struct {
	ID      string
	Clients map[string]*Client
	mu      sync.Mutex
}

func NewRoom(id string) *Room {
	return &Room{
		ID:      id,
		Clients: make(map[string]*Client),
	}
}

// Broadcast queues message for every client. A client whose queue is full is
// dropped and its Send channel closed.
func (r *Room) Broadcast(message []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, client := range r.Clients {
		select {
		case client.Send <- message:
		default:
			log.Printf("Dropping slow client %s from room %s", id, r.ID)
			delete(r.Clients, id)
			close(client.Send)
		}
	}
}

func (r *Room) AddClient(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Clients[c.ID] = c
	c.Room = r
	log.Printf("Client %s joined room %s", c.ID, r.ID)
}

// RemoveClient closes the client's Send channel if it is still in the room.
func (r *Room) RemoveClient(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Clients[c.ID]; !ok {
		return
	}
	delete(r.Clients, c.ID)
	close(c.Send)
	log.Printf("Client %s left room %s", c.ID, r.ID)
}

func (r *Room) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Clients)
}
