package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type conversationStore interface {
	CreateOrGet(ctx context.Context, traineeID, trainerID int64) (*models.Conversation, error)
	GetByIDForParticipant(ctx context.Context, conversationID, userID int64) (*models.Conversation, error)
	ListForParticipant(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
}

type messageStore interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListByConversation(ctx context.Context, conversationID int64) ([]models.ChatMessage, error)
	MarkConversationRead(ctx context.Context, conversationID, userID int64) error
	TouchConversation(ctx context.Context, conversationID int64) error
}

type chatUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type ChatService struct {
	conversations conversationStore
	messages      messageStore
	users         chatUserReader
}

func NewChatService(conversations conversationStore, messages messageStore, users chatUserReader) *ChatService {
	return &ChatService{conversations: conversations, messages: messages, users: users}
}

// SendMessage delivers a message from sender to receiver, creating the
// conversation on first contact. The trainee side of the pair is whichever
// user holds the trainee role.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content is empty", ErrInvalidInput)
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrInvalidInput)
	}

	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	traineeID, trainerID := senderID, receiverID
	if !sender.HasRole(models.RoleTrainee) {
		traineeID, trainerID = receiverID, senderID
	}

	conv, err := s.conversations.CreateOrGet(ctx, traineeID, trainerID)
	if err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ConversationID: conv.ID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.messages.TouchConversation(ctx, conv.ID); err != nil {
		return nil, err
	}
	return msg, nil
}

// CreateConversation opens (or returns) the conversation between the caller
// and another user.
func (s *ChatService) CreateConversation(ctx context.Context, userID, otherID int64) (*models.Conversation, error) {
	if userID == otherID {
		return nil, fmt.Errorf("%w: cannot start a conversation with yourself", ErrInvalidInput)
	}

	caller, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		return nil, err
	}

	traineeID, trainerID := userID, otherID
	if !caller.HasRole(models.RoleTrainee) {
		traineeID, trainerID = otherID, userID
	}
	return s.conversations.CreateOrGet(ctx, traineeID, trainerID)
}

func (s *ChatService) ListConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	return s.conversations.ListForParticipant(ctx, userID)
}

// ListMessages returns a conversation's messages oldest first and marks the
// caller's unread messages as read.
func (s *ChatService) ListMessages(ctx context.Context, conversationID, userID int64) ([]models.ChatMessage, error) {
	if _, err := s.conversations.GetByIDForParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	messages, err := s.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkConversationRead(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	return messages, nil
}
