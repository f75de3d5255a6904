package repository

import (
	"context"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type RatingRepository struct {
	db DBTX
}

func NewRatingRepository(db DBTX) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (session_id, trainee_id, trainer_id, rating, review_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		rating.SessionID,
		rating.TraineeID,
		rating.TrainerID,
		rating.Rating,
		rating.ReviewText,
	).Scan(&rating.ID, &rating.CreatedAt)
}

func (r *RatingRepository) GetBySessionID(ctx context.Context, sessionID int64) (*models.Rating, error) {
	query := `
		SELECT id, session_id, trainee_id, trainer_id, rating, review_text, created_at
		FROM ratings
		WHERE session_id = $1
	`
	var rating models.Rating
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&rating.ID,
		&rating.SessionID,
		&rating.TraineeID,
		&rating.TrainerID,
		&rating.Rating,
		&rating.ReviewText,
		&rating.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ListForTrainer(ctx context.Context, trainerID int64) ([]models.Rating, error) {
	query := `
		SELECT id, session_id, trainee_id, trainer_id, rating, review_text, created_at
		FROM ratings
		WHERE trainer_id = $1
		ORDER BY created_at DESC
	`
	return r.queryRatings(ctx, query, trainerID)
}

func (r *RatingRepository) ListByTrainee(ctx context.Context, traineeID int64) ([]models.Rating, error) {
	query := `
		SELECT id, session_id, trainee_id, trainer_id, rating, review_text, created_at
		FROM ratings
		WHERE trainee_id = $1
		ORDER BY created_at DESC
	`
	return r.queryRatings(ctx, query, traineeID)
}

func (r *RatingRepository) queryRatings(ctx context.Context, query string, args ...any) ([]models.Rating, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rating models.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.SessionID,
			&rating.TraineeID,
			&rating.TrainerID,
			&rating.Rating,
			&rating.ReviewText,
			&rating.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
