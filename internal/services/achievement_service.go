package services

import (
	"context"
	"time"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type achievementStore interface {
	GetOrCreate(ctx context.Context, userID int64, role string) (*models.AchievementRecord, error)
	SaveProgress(ctx context.Context, userID int64, role string, unlocks map[string]time.Time, discountSessions int) error
}

type achievementSessionReader interface {
	ListCompletedForTrainer(ctx context.Context, trainerID int64) ([]models.Session, error)
	ListCompletedForTrainee(ctx context.Context, traineeID int64) ([]models.Session, error)
}

type achievementRatingReader interface {
	ListForTrainer(ctx context.Context, trainerID int64) ([]models.Rating, error)
	ListByTrainee(ctx context.Context, traineeID int64) ([]models.Rating, error)
}

type AchievementService struct {
	achievements achievementStore
	sessions     achievementSessionReader
	ratings      achievementRatingReader
}

func NewAchievementService(achievements achievementStore, sessions achievementSessionReader, ratings achievementRatingReader) *AchievementService {
	return &AchievementService{achievements: achievements, sessions: sessions, ratings: ratings}
}

// CheckTrainerBadges re-evaluates the trainer's badges against their full
// completed-session and rating history and persists any new unlocks.
func (s *AchievementService) CheckTrainerBadges(ctx context.Context, trainerID int64) (*models.AchievementSummary, error) {
	record, err := s.achievements.GetOrCreate(ctx, trainerID, models.RoleTrainer)
	if err != nil {
		return nil, err
	}
	completed, err := s.sessions.ListCompletedForTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	received, err := s.ratings.ListForTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	badges, newlyUnlocked := EvaluateTrainerBadges(completed, received, record, time.Now().UTC())
	return s.persist(ctx, record, badges, newlyUnlocked, len(completed))
}

// CheckTraineeBadges is the trainee-side counterpart; the rating history here
// is the reviews the trainee wrote.
func (s *AchievementService) CheckTraineeBadges(ctx context.Context, traineeID int64) (*models.AchievementSummary, error) {
	record, err := s.achievements.GetOrCreate(ctx, traineeID, models.RoleTrainee)
	if err != nil {
		return nil, err
	}
	completed, err := s.sessions.ListCompletedForTrainee(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	written, err := s.ratings.ListByTrainee(ctx, traineeID)
	if err != nil {
		return nil, err
	}

	badges, newlyUnlocked := EvaluateTraineeBadges(completed, written, record, time.Now().UTC())
	return s.persist(ctx, record, badges, newlyUnlocked, len(completed))
}

func (s *AchievementService) persist(ctx context.Context, record *models.AchievementRecord, badges []models.BadgeProgress, newlyUnlocked []string, totalCompleted int) (*models.AchievementSummary, error) {
	if len(newlyUnlocked) > 0 {
		err := s.achievements.SaveProgress(ctx, record.UserID, record.Role, record.Unlocks, record.DiscountSessionsRemaining)
		if err != nil {
			return nil, err
		}
	}
	return &models.AchievementSummary{
		Badges:                    badges,
		TotalCompletedSessions:    totalCompleted,
		DiscountSessionsRemaining: record.DiscountSessionsRemaining,
		NewlyUnlocked:             newlyUnlocked,
	}, nil
}
