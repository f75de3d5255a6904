package services

import (
	"context"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type adminTrainerStore interface {
	ListAll(ctx context.Context) ([]models.TrainerProfile, error)
	SetVerified(ctx context.Context, userID int64, verified bool) error
}

type adminSessionReader interface {
	ListAll(ctx context.Context) ([]models.Session, error)
	ListCompleted(ctx context.Context) ([]models.Session, error)
}

type AdminService struct {
	trainers adminTrainerStore
	sessions adminSessionReader
}

func NewAdminService(trainers adminTrainerStore, sessions adminSessionReader) *AdminService {
	return &AdminService{trainers: trainers, sessions: sessions}
}

func (s *AdminService) ListTrainers(ctx context.Context) ([]models.TrainerProfile, error) {
	return s.trainers.ListAll(ctx)
}

func (s *AdminService) SetTrainerVerified(ctx context.Context, userID int64, verified bool) error {
	return s.trainers.SetVerified(ctx, userID, verified)
}

func (s *AdminService) ListSessions(ctx context.Context) ([]models.Session, error) {
	return s.sessions.ListAll(ctx)
}

// Revenue totals the platform's cut across all completed sessions.
func (s *AdminService) Revenue(ctx context.Context) (*models.PlatformRevenue, error) {
	completed, err := s.sessions.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	revenue := &models.PlatformRevenue{TotalSessions: len(completed)}
	for _, session := range completed {
		revenue.TotalPlatformFeesCents += session.PlatformFeeCents
		revenue.TotalSessionValueCents += session.FinalSessionPriceCents
	}
	if revenue.TotalSessions > 0 {
		revenue.AverageSessionValueCents = revenue.TotalSessionValueCents / revenue.TotalSessions
	}
	return revenue, nil
}
