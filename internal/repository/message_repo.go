package repository

import (
	"context"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type MessageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO messages (conversation_id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`
	return r.db.QueryRow(ctx, query,
		msg.ConversationID,
		msg.SenderID,
		msg.ReceiverID,
		msg.Content,
	).Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt)
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID int64) ([]models.ChatMessage, error) {
	query := `
		SELECT id, conversation_id, sender_id, receiver_id, content, is_read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var msg models.ChatMessage
		err := rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Content,
			&msg.IsRead,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkConversationRead marks every message addressed to the user in this
// conversation as read.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, conversationID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE messages
		SET is_read = TRUE
		WHERE conversation_id = $1 AND receiver_id = $2 AND is_read = FALSE
	`, conversationID, userID)
	return err
}

// TouchConversation bumps updated_at so the conversation list sorts by last
// activity.
func (r *MessageRepository) TouchConversation(ctx context.Context, conversationID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE conversations
		SET updated_at = NOW()
		WHERE id = $1
	`, conversationID)
	return err
}
