package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type ratingStore interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetBySessionID(ctx context.Context, sessionID int64) (*models.Rating, error)
	ListForTrainer(ctx context.Context, trainerID int64) ([]models.Rating, error)
}

type ratingSessionReader interface {
	GetByID(ctx context.Context, id int64) (*models.Session, error)
}

type ratingTrainerWriter interface {
	SetAverageRating(ctx context.Context, userID int64, average float64) error
}

type RatingService struct {
	ratings  ratingStore
	sessions ratingSessionReader
	trainers ratingTrainerWriter
}

func NewRatingService(ratings ratingStore, sessions ratingSessionReader, trainers ratingTrainerWriter) *RatingService {
	return &RatingService{ratings: ratings, sessions: sessions, trainers: trainers}
}

type CreateRatingInput struct {
	SessionID  int64
	TraineeID  int64
	Rating     int
	ReviewText *string
}

// CreateRating rates a completed session once, then refreshes the trainer's
// average rating (mean of all their ratings, rounded to 2 decimals). The
// exists/completed/not-yet-rated checks run before insert; they are not
// atomic with it.
func (s *RatingService) CreateRating(ctx context.Context, input CreateRatingInput) (*models.Rating, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	session, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionCompleted {
		return nil, fmt.Errorf("%w: can only rate completed sessions", ErrInvalidInput)
	}
	if session.TraineeID != input.TraineeID {
		return nil, ErrForbidden
	}

	if _, err := s.ratings.GetBySessionID(ctx, input.SessionID); err == nil {
		return nil, fmt.Errorf("%w: session already rated", ErrConflict)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	rating := &models.Rating{
		SessionID:  input.SessionID,
		TraineeID:  input.TraineeID,
		TrainerID:  session.TrainerID,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}

	all, err := s.ratings.ListForTrainer(ctx, session.TrainerID)
	if err != nil {
		return nil, err
	}
	if len(all) > 0 {
		sum := 0
		for _, r := range all {
			sum += r.Rating
		}
		average := math.Round(float64(sum)/float64(len(all))*100) / 100
		if err := s.trainers.SetAverageRating(ctx, session.TrainerID, average); err != nil {
			return nil, err
		}
	}
	return rating, nil
}

func (s *RatingService) ListTrainerRatings(ctx context.Context, trainerID int64) ([]models.Rating, error) {
	return s.ratings.ListForTrainer(ctx, trainerID)
}
