package repository

import (
	"context"
	"fmt"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type TraineeProfileRepository struct {
	db DBTX
}

func NewTraineeProfileRepository(db DBTX) *TraineeProfileRepository {
	return &TraineeProfileRepository{db: db}
}

type UpsertTraineeProfileInput struct {
	UserID                  int64
	FitnessGoals            *string
	CurrentFitnessLevel     string
	ExperienceLevel         *string
	PreferredTrainingStyles []string
	InjuriesOrLimitations   *string
	HomeGymOrZipCode        *string
	PrefersInPerson         bool
	PrefersVirtual          bool
	IsVirtualEnabled        bool
	BudgetMinPerMinuteCents int
	BudgetMaxPerMinuteCents int
	Latitude                *float64
	Longitude               *float64
	LocationAddress         *string
}

const traineeProfileColumns = `
	id, user_id, fitness_goals, current_fitness_level, experience_level,
	preferred_training_styles, injuries_or_limitations, home_gym_or_zip,
	prefers_in_person, prefers_virtual, is_virtual_enabled,
	budget_min_per_minute_cents, budget_max_per_minute_cents,
	latitude, longitude, location_address, created_at, updated_at
`

// Upsert replaces every field except created_at, same as the trainer side.
func (r *TraineeProfileRepository) Upsert(ctx context.Context, input UpsertTraineeProfileInput) (*models.TraineeProfile, error) {
	query := fmt.Sprintf(`
		INSERT INTO trainee_profiles (
			user_id, fitness_goals, current_fitness_level, experience_level,
			preferred_training_styles, injuries_or_limitations, home_gym_or_zip,
			prefers_in_person, prefers_virtual, is_virtual_enabled,
			budget_min_per_minute_cents, budget_max_per_minute_cents,
			latitude, longitude, location_address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id) DO UPDATE SET
			fitness_goals = EXCLUDED.fitness_goals,
			current_fitness_level = EXCLUDED.current_fitness_level,
			experience_level = EXCLUDED.experience_level,
			preferred_training_styles = EXCLUDED.preferred_training_styles,
			injuries_or_limitations = EXCLUDED.injuries_or_limitations,
			home_gym_or_zip = EXCLUDED.home_gym_or_zip,
			prefers_in_person = EXCLUDED.prefers_in_person,
			prefers_virtual = EXCLUDED.prefers_virtual,
			is_virtual_enabled = EXCLUDED.is_virtual_enabled,
			budget_min_per_minute_cents = EXCLUDED.budget_min_per_minute_cents,
			budget_max_per_minute_cents = EXCLUDED.budget_max_per_minute_cents,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			location_address = EXCLUDED.location_address,
			updated_at = NOW()
		RETURNING %s
	`, traineeProfileColumns)

	row := r.db.QueryRow(ctx, query,
		input.UserID,
		input.FitnessGoals,
		input.CurrentFitnessLevel,
		input.ExperienceLevel,
		input.PreferredTrainingStyles,
		input.InjuriesOrLimitations,
		input.HomeGymOrZipCode,
		input.PrefersInPerson,
		input.PrefersVirtual,
		input.IsVirtualEnabled,
		input.BudgetMinPerMinuteCents,
		input.BudgetMaxPerMinuteCents,
		input.Latitude,
		input.Longitude,
		input.LocationAddress,
	)
	return scanTraineeProfile(row)
}

func (r *TraineeProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.TraineeProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trainee_profiles
		WHERE user_id = $1
	`, traineeProfileColumns)
	return scanTraineeProfile(r.db.QueryRow(ctx, query, userID))
}

func scanTraineeProfile(row rowScanner) (*models.TraineeProfile, error) {
	var profile models.TraineeProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FitnessGoals,
		&profile.CurrentFitnessLevel,
		&profile.ExperienceLevel,
		&profile.PreferredTrainingStyles,
		&profile.InjuriesOrLimitations,
		&profile.HomeGymOrZipCode,
		&profile.PrefersInPerson,
		&profile.PrefersVirtual,
		&profile.IsVirtualEnabled,
		&profile.BudgetMinPerMinuteCents,
		&profile.BudgetMaxPerMinuteCents,
		&profile.Latitude,
		&profile.Longitude,
		&profile.LocationAddress,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
