package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type stubSessionStore struct {
	sessions        map[int64]*models.Session
	created         []*models.Session
	recentPairCount int
	completed       []models.Session
}

func (s *stubSessionStore) Create(ctx context.Context, session *models.Session) error {
	session.ID = int64(len(s.created) + 1)
	s.created = append(s.created, session)
	return nil
}

func (s *stubSessionStore) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return session, nil
}

func (s *stubSessionStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	session.Status = status
	return session, nil
}

func (s *stubSessionStore) ListForTrainer(ctx context.Context, trainerID int64, status string) ([]models.Session, error) {
	return nil, nil
}

func (s *stubSessionStore) ListForTrainee(ctx context.Context, traineeID int64, status string) ([]models.Session, error) {
	return nil, nil
}

func (s *stubSessionStore) CountRecentPair(ctx context.Context, traineeID, trainerID int64) (int, error) {
	return s.recentPairCount, nil
}

func (s *stubSessionStore) ListCompletedForTrainer(ctx context.Context, trainerID int64) ([]models.Session, error) {
	return s.completed, nil
}

type stubTrainerProfiles struct {
	profiles    map[int64]*models.TrainerProfile
	incremented []int64
}

func (s *stubTrainerProfiles) GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return profile, nil
}

func (s *stubTrainerProfiles) IncrementSessionsCompleted(ctx context.Context, userID int64) error {
	s.incremented = append(s.incremented, userID)
	return nil
}

func bookingFixture(status string) (*BookingService, *stubSessionStore, *stubTrainerProfiles) {
	sessions := &stubSessionStore{sessions: map[int64]*models.Session{
		1: {ID: 1, TraineeID: 42, TrainerID: 9, Status: status},
	}}
	trainers := &stubTrainerProfiles{profiles: map[int64]*models.TrainerProfile{
		9: {UserID: 9, RatePerMinuteCents: 100},
	}}
	return NewBookingService(sessions, trainers), sessions, trainers
}

func TestBookSessionPricesFromTrainerRate(t *testing.T) {
	svc, sessions, _ := bookingFixture(models.SessionRequested)

	session, err := svc.BookSession(context.Background(), BookSessionInput{
		TraineeID:       42,
		TrainerID:       9,
		StartsAt:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		LocationType:    models.LocationGym,
	})
	if err != nil {
		t.Fatalf("Expected booking to succeed, got %v", err)
	}

	if session.BaseSessionPriceCents != 6000 {
		t.Errorf("Expected base price 6000, got %d", session.BaseSessionPriceCents)
	}
	if session.DiscountType != nil {
		t.Errorf("Expected no discount on a first booking, got %v", *session.DiscountType)
	}
	if session.FinalSessionPriceCents != 6000 || session.PlatformFeeCents != 600 || session.TrainerEarningsCents != 5400 {
		t.Errorf("Unexpected price split: %+v", session)
	}
	if session.Status != models.SessionRequested {
		t.Errorf("Expected requested status, got %s", session.Status)
	}
	if len(sessions.created) != 1 {
		t.Errorf("Expected one stored session, got %d", len(sessions.created))
	}
}

func TestBookSessionAppliesMultiSessionDiscount(t *testing.T) {
	svc, sessions, _ := bookingFixture(models.SessionRequested)
	sessions.recentPairCount = 2

	session, err := svc.BookSession(context.Background(), BookSessionInput{
		TraineeID:       42,
		TrainerID:       9,
		StartsAt:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		LocationType:    models.LocationGym,
	})
	if err != nil {
		t.Fatalf("Expected booking to succeed, got %v", err)
	}

	if session.DiscountType == nil || *session.DiscountType != discountMultiSession {
		t.Fatalf("Expected multi_session discount, got %+v", session.DiscountType)
	}
	if session.DiscountAmountCents != 300 || session.FinalSessionPriceCents != 5700 {
		t.Errorf("Expected 5%% off 6000, got discount=%d final=%d", session.DiscountAmountCents, session.FinalSessionPriceCents)
	}
}

func TestAcceptSessionTrainerOnly(t *testing.T) {
	svc, _, _ := bookingFixture(models.SessionRequested)

	if _, err := svc.AcceptSession(context.Background(), 1, 42); !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden when the trainee accepts, got %v", err)
	}

	session, err := svc.AcceptSession(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("Expected trainer accept to succeed, got %v", err)
	}
	if session.Status != models.SessionConfirmed {
		t.Errorf("Expected confirmed, got %s", session.Status)
	}
}

func TestAcceptSessionRequiresRequestedStatus(t *testing.T) {
	svc, _, _ := bookingFixture(models.SessionDeclined)

	if _, err := svc.AcceptSession(context.Background(), 1, 9); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition from declined, got %v", err)
	}
}

func TestCompleteSessionTrainerOnly(t *testing.T) {
	svc, sessions, trainers := bookingFixture(models.SessionConfirmed)

	if _, err := svc.CompleteSession(context.Background(), 1, 42); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Expected ErrForbidden when the trainee completes, got %v", err)
	}
	if sessions.sessions[1].Status != models.SessionConfirmed {
		t.Errorf("Expected session untouched after forbidden complete, got %s", sessions.sessions[1].Status)
	}

	session, err := svc.CompleteSession(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("Expected trainer complete to succeed, got %v", err)
	}
	if session.Status != models.SessionCompleted {
		t.Errorf("Expected completed, got %s", session.Status)
	}
	if len(trainers.incremented) != 1 || trainers.incremented[0] != 9 {
		t.Errorf("Expected trainer 9 completed-count bump, got %v", trainers.incremented)
	}
}

func TestCompleteSessionRejectsTerminalStatus(t *testing.T) {
	svc, _, trainers := bookingFixture(models.SessionCancelled)

	if _, err := svc.CompleteSession(context.Background(), 1, 9); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition from cancelled, got %v", err)
	}
	if len(trainers.incremented) != 0 {
		t.Errorf("Expected no completed-count bump, got %v", trainers.incremented)
	}
}

func TestCancelSessionEitherParticipant(t *testing.T) {
	svc, _, _ := bookingFixture(models.SessionRequested)

	if _, err := svc.CancelSession(context.Background(), 1, 7); !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden for an outsider, got %v", err)
	}

	session, err := svc.CancelSession(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("Expected trainee cancel to succeed, got %v", err)
	}
	if session.Status != models.SessionCancelled {
		t.Errorf("Expected cancelled, got %s", session.Status)
	}
}
