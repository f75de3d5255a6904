package handlers

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/services"
	ws "github.com/KingAsh2/RapidReps/internal/websocket"
	"github.com/KingAsh2/RapidReps/pkg/utils"
)

type Chatter interface {
	SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*models.ChatMessage, error)
	CreateConversation(ctx context.Context, userID, otherID int64) (*models.Conversation, error)
	ListConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
	ListMessages(ctx context.Context, conversationID, userID int64) ([]models.ChatMessage, error)
}

type ChatHandler struct {
	chat      Chatter
	hub       *ws.Hub
	chatSvc   *services.ChatService
	jwtSecret string
}

func NewChatHandler(chat Chatter, hub *ws.Hub, chatSvc *services.ChatService, jwtSecret string) *ChatHandler {
	return &ChatHandler{chat: chat, hub: hub, chatSvc: chatSvc, jwtSecret: jwtSecret}
}

type sendMessageRequest struct {
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	msg, err := h.chat.SendMessage(c.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	if h.hub != nil {
		h.hub.Dispatch(msg)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

type createConversationRequest struct {
	UserID int64 `json:"userId"`
}

func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req createConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	conv, err := h.chat.CreateConversation(c.Context(), userID, req.UserID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(conv)
}

func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	conversations, err := h.chat.ListConversations(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(conversations)
}

func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid conversation id"})
	}
	messages, err := h.chat.ListMessages(c.Context(), conversationID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(messages)
}

// WebSocketAuth authenticates the upgrade request. Browsers cannot set
// headers on websocket connects, so the token rides in the query string.
func (h *ChatHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	claims, err := utils.ValidateToken(c.Query("token"), h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}
	c.Locals("user_id", claims.UserID)
	return c.Next()
}

// HandleWebSocket upgrades and hands the connection to the hub.
func (h *ChatHandler) HandleWebSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("user_id").(int64)
		if !ok {
			conn.Close()
			return
		}
		ws.Serve(h.hub, h.chatSvc, conn, userID)
	})
}
