package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type stubRatingStore struct {
	ratings []models.Rating
	created []*models.Rating
}

func (s *stubRatingStore) Create(ctx context.Context, rating *models.Rating) error {
	s.created = append(s.created, rating)
	s.ratings = append(s.ratings, *rating)
	return nil
}

func (s *stubRatingStore) GetBySessionID(ctx context.Context, sessionID int64) (*models.Rating, error) {
	for i := range s.ratings {
		if s.ratings[i].SessionID == sessionID {
			return &s.ratings[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubRatingStore) ListForTrainer(ctx context.Context, trainerID int64) ([]models.Rating, error) {
	out := make([]models.Rating, 0)
	for _, r := range s.ratings {
		if r.TrainerID == trainerID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubRatingSessions struct {
	sessions map[int64]*models.Session
}

func (s *stubRatingSessions) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return session, nil
}

type stubAverageSink struct {
	averages map[int64]float64
}

func (s *stubAverageSink) SetAverageRating(ctx context.Context, userID int64, average float64) error {
	if s.averages == nil {
		s.averages = make(map[int64]float64)
	}
	s.averages[userID] = average
	return nil
}

func ratingFixture() (*RatingService, *stubRatingStore, *stubAverageSink) {
	ratings := &stubRatingStore{}
	sessions := &stubRatingSessions{sessions: map[int64]*models.Session{
		1: {ID: 1, TraineeID: 42, TrainerID: 9, Status: models.SessionCompleted},
		2: {ID: 2, TraineeID: 42, TrainerID: 9, Status: models.SessionConfirmed},
		3: {ID: 3, TraineeID: 42, TrainerID: 9, Status: models.SessionCompleted},
		4: {ID: 4, TraineeID: 42, TrainerID: 9, Status: models.SessionCompleted},
	}}
	trainers := &stubAverageSink{}
	return NewRatingService(ratings, sessions, trainers), ratings, trainers
}

func TestCreateRatingRejectsOutOfRange(t *testing.T) {
	svc, _, _ := ratingFixture()

	for _, value := range []int{0, -1, 6, 100} {
		_, err := svc.CreateRating(context.Background(), CreateRatingInput{
			SessionID: 1,
			TraineeID: 42,
			Rating:    value,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("rating=%d: expected ErrInvalidInput, got %v", value, err)
		}
	}
}

func TestCreateRatingRejectsNonCompletedSession(t *testing.T) {
	svc, ratings, _ := ratingFixture()

	_, err := svc.CreateRating(context.Background(), CreateRatingInput{
		SessionID: 2,
		TraineeID: 42,
		Rating:    5,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for a confirmed session, got %v", err)
	}
	if len(ratings.created) != 0 {
		t.Errorf("Expected no rating stored, got %d", len(ratings.created))
	}
}

func TestCreateRatingRejectsSecondRating(t *testing.T) {
	svc, ratings, _ := ratingFixture()

	if _, err := svc.CreateRating(context.Background(), CreateRatingInput{
		SessionID: 1,
		TraineeID: 42,
		Rating:    5,
	}); err != nil {
		t.Fatalf("Expected first rating to succeed, got %v", err)
	}

	_, err := svc.CreateRating(context.Background(), CreateRatingInput{
		SessionID: 1,
		TraineeID: 42,
		Rating:    3,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict on second rating, got %v", err)
	}
	if len(ratings.created) != 1 {
		t.Errorf("Expected only the first rating stored, got %d", len(ratings.created))
	}
}

func TestCreateRatingRejectsOtherTrainee(t *testing.T) {
	svc, _, _ := ratingFixture()

	_, err := svc.CreateRating(context.Background(), CreateRatingInput{
		SessionID: 1,
		TraineeID: 99,
		Rating:    5,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Expected ErrForbidden for a different trainee, got %v", err)
	}
}

func TestCreateRatingRecomputesAverage(t *testing.T) {
	svc, _, trainers := ratingFixture()

	for sessionID, value := range map[int64]int{1: 5, 3: 4, 4: 3} {
		if _, err := svc.CreateRating(context.Background(), CreateRatingInput{
			SessionID: sessionID,
			TraineeID: 42,
			Rating:    value,
		}); err != nil {
			t.Fatalf("session %d: expected rating to succeed, got %v", sessionID, err)
		}
	}

	if got := trainers.averages[9]; got != 4.0 {
		t.Errorf("Expected average exactly 4.0 after ratings 5, 4, 3, got %v", got)
	}
}
