package models

import "time"

type Conversation struct {
	ID        int64     `json:"id"`
	TraineeID int64     `json:"traineeId"`
	TrainerID int64     `json:"trainerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ChatMessage struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	ReceiverID     int64     `json:"receiverId"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ConversationSummary struct {
	Conversation
	LastMessage *ChatMessage `json:"lastMessage,omitempty"`
	UnreadCount int          `json:"unreadCount"`
}
