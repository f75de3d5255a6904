package repository

import (
	"context"
	"time"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type ConversationRepository struct {
	db DBTX
}

func NewConversationRepository(db DBTX) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// CreateOrGet returns the conversation between a trainee and a trainer,
// creating it on first contact.
func (r *ConversationRepository) CreateOrGet(ctx context.Context, traineeID, trainerID int64) (*models.Conversation, error) {
	query := `
		INSERT INTO conversations (trainee_id, trainer_id)
		VALUES ($1, $2)
		ON CONFLICT (trainee_id, trainer_id) DO UPDATE SET updated_at = NOW()
		RETURNING id, trainee_id, trainer_id, created_at, updated_at
	`
	var conv models.Conversation
	err := r.db.QueryRow(ctx, query, traineeID, trainerID).Scan(
		&conv.ID,
		&conv.TraineeID,
		&conv.TrainerID,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetByIDForParticipant loads a conversation only if the user is one of its
// two sides. A conversation the user is not part of scans as no rows.
func (r *ConversationRepository) GetByIDForParticipant(ctx context.Context, conversationID, userID int64) (*models.Conversation, error) {
	query := `
		SELECT id, trainee_id, trainer_id, created_at, updated_at
		FROM conversations
		WHERE id = $1 AND (trainee_id = $2 OR trainer_id = $2)
	`
	var conv models.Conversation
	err := r.db.QueryRow(ctx, query, conversationID, userID).Scan(
		&conv.ID,
		&conv.TraineeID,
		&conv.TrainerID,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListForParticipant returns every conversation the user takes part in, most
// recently active first, each with its last message and the user's unread
// count.
func (r *ConversationRepository) ListForParticipant(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	query := `
		SELECT
			c.id, c.trainee_id, c.trainer_id, c.created_at, c.updated_at,
			lm.id, lm.conversation_id, lm.sender_id, lm.receiver_id, lm.content, lm.is_read, lm.created_at,
			COALESCE(un.unread, 0)
		FROM conversations c
		LEFT JOIN LATERAL (
			SELECT id, conversation_id, sender_id, receiver_id, content, is_read, created_at
			FROM messages
			WHERE conversation_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) lm ON TRUE
		LEFT JOIN LATERAL (
			SELECT COUNT(*) AS unread
			FROM messages
			WHERE conversation_id = c.id AND receiver_id = $1 AND is_read = FALSE
		) un ON TRUE
		WHERE c.trainee_id = $1 OR c.trainer_id = $1
		ORDER BY c.updated_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]models.ConversationSummary, 0)
	for rows.Next() {
		var summary models.ConversationSummary
		var msgID, msgConvID, msgSenderID, msgReceiverID *int64
		var msgContent *string
		var msgIsRead *bool
		var msgCreatedAt *time.Time

		err := rows.Scan(
			&summary.ID,
			&summary.TraineeID,
			&summary.TrainerID,
			&summary.CreatedAt,
			&summary.UpdatedAt,
			&msgID,
			&msgConvID,
			&msgSenderID,
			&msgReceiverID,
			&msgContent,
			&msgIsRead,
			&msgCreatedAt,
			&summary.UnreadCount,
		)
		if err != nil {
			return nil, err
		}

		if msgID != nil {
			summary.LastMessage = &models.ChatMessage{
				ID:             *msgID,
				ConversationID: *msgConvID,
				SenderID:       *msgSenderID,
				ReceiverID:     *msgReceiverID,
				Content:        *msgContent,
				IsRead:         *msgIsRead,
				CreatedAt:      *msgCreatedAt,
			}
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
