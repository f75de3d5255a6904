package repository

import (
	"context"
	"fmt"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `
	id, trainee_id, trainer_id, status, session_starts_at, session_ends_at,
	duration_minutes, base_price_per_minute_cents, base_session_price_cents,
	discount_type, discount_amount_cents, final_session_price_cents,
	platform_fee_percent, platform_fee_cents, trainer_earnings_cents,
	location_type, location_name_or_address, meeting_link, notes, payment_ref,
	created_at, updated_at
`

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (
			trainee_id, trainer_id, status, session_starts_at, session_ends_at,
			duration_minutes, base_price_per_minute_cents, base_session_price_cents,
			discount_type, discount_amount_cents, final_session_price_cents,
			platform_fee_percent, platform_fee_cents, trainer_earnings_cents,
			location_type, location_name_or_address, meeting_link, notes, payment_ref
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		session.TraineeID,
		session.TrainerID,
		session.Status,
		session.SessionDateTimeStart,
		session.SessionDateTimeEnd,
		session.DurationMinutes,
		session.BasePricePerMinuteCents,
		session.BaseSessionPriceCents,
		session.DiscountType,
		session.DiscountAmountCents,
		session.FinalSessionPriceCents,
		session.PlatformFeePercent,
		session.PlatformFeeCents,
		session.TrainerEarningsCents,
		session.LocationType,
		session.LocationNameOrAddress,
		session.MeetingLink,
		session.Notes,
		session.PaymentRef,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		WHERE id = $1
	`, sessionColumns)
	return scanSession(r.db.QueryRow(ctx, query, id))
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error) {
	query := fmt.Sprintf(`
		UPDATE sessions
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, sessionColumns)
	return scanSession(r.db.QueryRow(ctx, query, id, status))
}

// ListForTrainer returns a trainer's sessions, newest start first. An empty
// status means no status filter.
func (r *SessionRepository) ListForTrainer(ctx context.Context, trainerID int64, status string) ([]models.Session, error) {
	return r.listForParty(ctx, "trainer_id", trainerID, status)
}

func (r *SessionRepository) ListForTrainee(ctx context.Context, traineeID int64, status string) ([]models.Session, error) {
	return r.listForParty(ctx, "trainee_id", traineeID, status)
}

func (r *SessionRepository) listForParty(ctx context.Context, column string, userID int64, status string) ([]models.Session, error) {
	args := []any{userID}
	where := column + " = $1"
	if status != "" {
		args = append(args, status)
		where += " AND status = $2"
	}
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		WHERE %s
		ORDER BY session_starts_at DESC
	`, sessionColumns, where)
	return r.querySessions(ctx, query, args...)
}

// CountRecentPair counts how many sessions this trainee has booked with this
// trainer in the trailing 30 days, excluding declined ones. The count drives
// the multi-session discount, so it is taken over booking time, not session
// time.
func (r *SessionRepository) CountRecentPair(ctx context.Context, traineeID, trainerID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM sessions
		WHERE trainee_id = $1
		  AND trainer_id = $2
		  AND status <> 'declined'
		  AND created_at >= NOW() - INTERVAL '30 days'
	`, traineeID, trainerID).Scan(&count)
	return count, err
}

func (r *SessionRepository) ListCompletedForTrainer(ctx context.Context, trainerID int64) ([]models.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		WHERE trainer_id = $1 AND status = 'completed'
		ORDER BY session_starts_at ASC
	`, sessionColumns)
	return r.querySessions(ctx, query, trainerID)
}

func (r *SessionRepository) ListCompletedForTrainee(ctx context.Context, traineeID int64) ([]models.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		WHERE trainee_id = $1 AND status = 'completed'
		ORDER BY session_starts_at ASC
	`, sessionColumns)
	return r.querySessions(ctx, query, traineeID)
}

func (r *SessionRepository) ListAll(ctx context.Context) ([]models.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		ORDER BY created_at DESC
	`, sessionColumns)
	return r.querySessions(ctx, query)
}

func (r *SessionRepository) ListCompleted(ctx context.Context) ([]models.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		WHERE status = 'completed'
		ORDER BY created_at DESC
	`, sessionColumns)
	return r.querySessions(ctx, query)
}

func (r *SessionRepository) querySessions(ctx context.Context, query string, args ...any) ([]models.Session, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func scanSession(row rowScanner) (*models.Session, error) {
	var session models.Session
	err := row.Scan(
		&session.ID,
		&session.TraineeID,
		&session.TrainerID,
		&session.Status,
		&session.SessionDateTimeStart,
		&session.SessionDateTimeEnd,
		&session.DurationMinutes,
		&session.BasePricePerMinuteCents,
		&session.BaseSessionPriceCents,
		&session.DiscountType,
		&session.DiscountAmountCents,
		&session.FinalSessionPriceCents,
		&session.PlatformFeePercent,
		&session.PlatformFeeCents,
		&session.TrainerEarningsCents,
		&session.LocationType,
		&session.LocationNameOrAddress,
		&session.MeetingLink,
		&session.Notes,
		&session.PaymentRef,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
