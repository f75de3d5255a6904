package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/KingAsh2/RapidReps/internal/services"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID int64
	send   chan []byte
}

// inboundMessage is what a connected client sends over the socket.
type inboundMessage struct {
	Type       string `json:"type"`
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
}

// Serve registers the connection and runs the read loop until the socket
// closes. It blocks, which is what the fiber websocket handler expects.
func Serve(hub *Hub, chat *services.ChatService, conn *websocket.Conn, userID int64) {
	client := &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 16),
	}
	hub.register <- client

	go client.writePump()
	client.readPump(chat)
}

func (c *Client) readPump(chat *services.ChatService) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket: user %d read: %v", c.userID, err)
			}
			return
		}

		var inbound inboundMessage
		if err := json.Unmarshal(raw, &inbound); err != nil {
			c.sendError("malformed message")
			continue
		}
		if inbound.Type != "message" {
			continue
		}

		msg, err := chat.SendMessage(context.Background(), c.userID, inbound.ReceiverID, inbound.Content)
		if err != nil {
			c.sendError("could not send message")
			continue
		}
		c.hub.Dispatch(msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendError(reason string) {
	payload, err := json.Marshal(wsEnvelope{Type: "error", Error: reason})
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}
