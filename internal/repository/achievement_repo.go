package repository

import (
	"context"
	"time"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type AchievementRepository struct {
	db DBTX
}

func NewAchievementRepository(db DBTX) *AchievementRepository {
	return &AchievementRepository{db: db}
}

const achievementColumns = `
	id, user_id, role, unlocks, discount_sessions_remaining, streak_weeks,
	is_top_trainer, would_train_again_count, created_at, updated_at
`

// GetOrCreate returns the achievement record for a user in a role, creating
// an empty one on first access.
func (r *AchievementRepository) GetOrCreate(ctx context.Context, userID int64, role string) (*models.AchievementRecord, error) {
	query := `
		INSERT INTO achievements (user_id, role, unlocks)
		VALUES ($1, $2, '{}'::jsonb)
		ON CONFLICT (user_id, role) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING` + achievementColumns
	return scanAchievement(r.db.QueryRow(ctx, query, userID, role))
}

// SaveProgress persists the evaluated unlock set and discount balance. The
// discount balance is overwritten, not added to.
func (r *AchievementRepository) SaveProgress(ctx context.Context, userID int64, role string, unlocks map[string]time.Time, discountSessions int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE achievements
		SET unlocks = $3, discount_sessions_remaining = $4, updated_at = NOW()
		WHERE user_id = $1 AND role = $2
	`, userID, role, unlocks, discountSessions)
	return err
}

func scanAchievement(row rowScanner) (*models.AchievementRecord, error) {
	var record models.AchievementRecord
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Role,
		&record.Unlocks,
		&record.DiscountSessionsRemaining,
		&record.StreakWeeks,
		&record.IsTopTrainer,
		&record.WouldTrainAgainCount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
