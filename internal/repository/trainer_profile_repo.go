package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type TrainerProfileRepository struct {
	db DBTX
}

func NewTrainerProfileRepository(db DBTX) *TrainerProfileRepository {
	return &TrainerProfileRepository{db: db}
}

type UpsertTrainerProfileInput struct {
	UserID                     int64
	AvatarURL                  *string
	Bio                        *string
	ExperienceYears            int
	Certifications             []string
	TrainingStyles             []string
	GymsWorkedAt               []string
	PrimaryGym                 *string
	OffersInPerson             bool
	OffersVirtual              bool
	SessionDurationsOffered    []int32
	RatePerMinuteCents         int
	TravelRadiusMiles          *int
	CancellationPolicy         *string
	VerificationDocs           []string
	Latitude                   *float64
	Longitude                  *float64
	LocationAddress            *string
	IsAvailable                bool
	IsVirtualTrainingAvailable bool
	VideoCallPreference        *string
}

const trainerProfileColumns = `
	id, user_id, avatar_url, bio, experience_years, certifications, training_styles,
	gyms_worked_at, primary_gym, offers_in_person, offers_virtual, session_durations,
	rate_per_minute_cents, travel_radius_miles, cancellation_policy, verification_docs,
	latitude, longitude, location_address, is_available, is_virtual_training_available,
	video_call_preference, average_rating, total_sessions_completed, is_verified,
	created_at, updated_at
`

// Upsert fully replaces the profile for a user. A resubmit keeps only the row
// identity and created_at; rating, session counter and verification flag go
// back to their first-create defaults.
func (r *TrainerProfileRepository) Upsert(ctx context.Context, input UpsertTrainerProfileInput) (*models.TrainerProfile, error) {
	query := fmt.Sprintf(`
		INSERT INTO trainer_profiles (
			user_id, avatar_url, bio, experience_years, certifications, training_styles,
			gyms_worked_at, primary_gym, offers_in_person, offers_virtual, session_durations,
			rate_per_minute_cents, travel_radius_miles, cancellation_policy, verification_docs,
			latitude, longitude, location_address, is_available, is_virtual_training_available,
			video_call_preference
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (user_id) DO UPDATE SET
			avatar_url = EXCLUDED.avatar_url,
			bio = EXCLUDED.bio,
			experience_years = EXCLUDED.experience_years,
			certifications = EXCLUDED.certifications,
			training_styles = EXCLUDED.training_styles,
			gyms_worked_at = EXCLUDED.gyms_worked_at,
			primary_gym = EXCLUDED.primary_gym,
			offers_in_person = EXCLUDED.offers_in_person,
			offers_virtual = EXCLUDED.offers_virtual,
			session_durations = EXCLUDED.session_durations,
			rate_per_minute_cents = EXCLUDED.rate_per_minute_cents,
			travel_radius_miles = EXCLUDED.travel_radius_miles,
			cancellation_policy = EXCLUDED.cancellation_policy,
			verification_docs = EXCLUDED.verification_docs,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			location_address = EXCLUDED.location_address,
			is_available = EXCLUDED.is_available,
			is_virtual_training_available = EXCLUDED.is_virtual_training_available,
			video_call_preference = EXCLUDED.video_call_preference,
			average_rating = 0,
			total_sessions_completed = 0,
			is_verified = FALSE,
			updated_at = NOW()
		RETURNING %s
	`, trainerProfileColumns)

	row := r.db.QueryRow(ctx, query,
		input.UserID,
		input.AvatarURL,
		input.Bio,
		input.ExperienceYears,
		input.Certifications,
		input.TrainingStyles,
		input.GymsWorkedAt,
		input.PrimaryGym,
		input.OffersInPerson,
		input.OffersVirtual,
		input.SessionDurationsOffered,
		input.RatePerMinuteCents,
		input.TravelRadiusMiles,
		input.CancellationPolicy,
		input.VerificationDocs,
		input.Latitude,
		input.Longitude,
		input.LocationAddress,
		input.IsAvailable,
		input.IsVirtualTrainingAvailable,
		input.VideoCallPreference,
	)
	return scanTrainerProfile(row)
}

func (r *TrainerProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trainer_profiles
		WHERE user_id = $1
	`, trainerProfileColumns)
	return scanTrainerProfile(r.db.QueryRow(ctx, query, userID))
}

type TrainerSearchFilter struct {
	Styles         []string
	MinRateCents   *int
	MaxRateCents   *int
	OffersInPerson *bool
	OffersVirtual  *bool
}

// Search returns available trainers matching the caller-supplied filters.
// Proximity classification happens afterwards, in the matcher.
func (r *TrainerProfileRepository) Search(ctx context.Context, filter TrainerSearchFilter) ([]models.TrainerProfile, error) {
	args := []any{}
	whereParts := []string{"is_available = TRUE"}

	if len(filter.Styles) > 0 {
		args = append(args, filter.Styles)
		whereParts = append(whereParts, fmt.Sprintf("training_styles && $%d", len(args)))
	}
	if filter.MinRateCents != nil {
		args = append(args, *filter.MinRateCents)
		whereParts = append(whereParts, fmt.Sprintf("rate_per_minute_cents >= $%d", len(args)))
	}
	if filter.MaxRateCents != nil {
		args = append(args, *filter.MaxRateCents)
		whereParts = append(whereParts, fmt.Sprintf("rate_per_minute_cents <= $%d", len(args)))
	}
	if filter.OffersInPerson != nil {
		args = append(args, *filter.OffersInPerson)
		whereParts = append(whereParts, fmt.Sprintf("offers_in_person = $%d", len(args)))
	}
	if filter.OffersVirtual != nil {
		args = append(args, *filter.OffersVirtual)
		whereParts = append(whereParts, fmt.Sprintf("offers_virtual = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM trainer_profiles
		WHERE %s
		ORDER BY id ASC
	`, trainerProfileColumns, strings.Join(whereParts, " AND "))

	return r.queryTrainerProfiles(ctx, query, args...)
}

// ListVirtualCandidates returns the auto-match eligible set, best first:
// highest average rating, then most sessions completed.
func (r *TrainerProfileRepository) ListVirtualCandidates(ctx context.Context) ([]models.TrainerProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trainer_profiles
		WHERE is_available = TRUE
		  AND is_virtual_training_available = TRUE
		  AND offers_virtual = TRUE
		ORDER BY average_rating DESC, total_sessions_completed DESC, id ASC
	`, trainerProfileColumns)
	return r.queryTrainerProfiles(ctx, query)
}

func (r *TrainerProfileRepository) ListAll(ctx context.Context) ([]models.TrainerProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trainer_profiles
		ORDER BY id ASC
	`, trainerProfileColumns)
	return r.queryTrainerProfiles(ctx, query)
}

func (r *TrainerProfileRepository) AppendVerificationDocs(ctx context.Context, userID int64, docs []string) (*models.TrainerProfile, error) {
	query := fmt.Sprintf(`
		UPDATE trainer_profiles
		SET verification_docs = verification_docs || $2,
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING %s
	`, trainerProfileColumns)
	return scanTrainerProfile(r.db.QueryRow(ctx, query, userID, docs))
}

func (r *TrainerProfileRepository) SetVerified(ctx context.Context, userID int64, verified bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE trainer_profiles
		SET is_verified = $2, updated_at = NOW()
		WHERE user_id = $1
	`, userID, verified)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *TrainerProfileRepository) SetAverageRating(ctx context.Context, userID int64, average float64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE trainer_profiles
		SET average_rating = $2, updated_at = NOW()
		WHERE user_id = $1
	`, userID, average)
	return err
}

func (r *TrainerProfileRepository) IncrementSessionsCompleted(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE trainer_profiles
		SET total_sessions_completed = total_sessions_completed + 1, updated_at = NOW()
		WHERE user_id = $1
	`, userID)
	return err
}

func (r *TrainerProfileRepository) queryTrainerProfiles(ctx context.Context, query string, args ...any) ([]models.TrainerProfile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.TrainerProfile, 0)
	for rows.Next() {
		profile, err := scanTrainerProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrainerProfile(row rowScanner) (*models.TrainerProfile, error) {
	var profile models.TrainerProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.ExperienceYears,
		&profile.Certifications,
		&profile.TrainingStyles,
		&profile.GymsWorkedAt,
		&profile.PrimaryGym,
		&profile.OffersInPerson,
		&profile.OffersVirtual,
		&profile.SessionDurationsOffered,
		&profile.RatePerMinuteCents,
		&profile.TravelRadiusMiles,
		&profile.CancellationPolicy,
		&profile.VerificationDocs,
		&profile.Latitude,
		&profile.Longitude,
		&profile.LocationAddress,
		&profile.IsAvailable,
		&profile.IsVirtualTrainingAvailable,
		&profile.VideoCallPreference,
		&profile.AverageRating,
		&profile.TotalSessionsCompleted,
		&profile.IsVerified,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
