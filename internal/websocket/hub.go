package websocket

import (
	"encoding/json"
	"log"

	"github.com/KingAsh2/RapidReps/internal/models"
)

// Hub tracks connected clients by user ID and routes chat messages to the
// recipient's live connection when there is one. Persistence happens before
// routing; a recipient who is offline just reads the message later over REST.
type Hub struct {
	clients    map[int64]*Client
	register   chan *Client
	unregister chan *Client
	deliver    chan delivery
}

type delivery struct {
	userID  int64
	payload []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan delivery, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if existing, ok := h.clients[client.userID]; ok {
				close(existing.send)
			}
			h.clients[client.userID] = client
		case client := <-h.unregister:
			if current, ok := h.clients[client.userID]; ok && current == client {
				delete(h.clients, client.userID)
				close(client.send)
			}
		case d := <-h.deliver:
			client, ok := h.clients[d.userID]
			if !ok {
				continue
			}
			select {
			case client.send <- d.payload:
			default:
				delete(h.clients, d.userID)
				close(client.send)
			}
		}
	}
}

// Dispatch pushes a persisted message to both participants' live connections.
func (h *Hub) Dispatch(msg *models.ChatMessage) {
	payload, err := json.Marshal(wsEnvelope{Type: "message", Message: msg})
	if err != nil {
		log.Printf("websocket: marshal message %d: %v", msg.ID, err)
		return
	}
	h.deliver <- delivery{userID: msg.ReceiverID, payload: payload}
	h.deliver <- delivery{userID: msg.SenderID, payload: payload}
}

type wsEnvelope struct {
	Type    string              `json:"type"`
	Message *models.ChatMessage `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
}
