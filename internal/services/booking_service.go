package services

import (
	"context"
	"fmt"
	"time"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type bookingSessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error)
	ListForTrainer(ctx context.Context, trainerID int64, status string) ([]models.Session, error)
	ListForTrainee(ctx context.Context, traineeID int64, status string) ([]models.Session, error)
	CountRecentPair(ctx context.Context, traineeID, trainerID int64) (int, error)
	ListCompletedForTrainer(ctx context.Context, trainerID int64) ([]models.Session, error)
}

type bookingTrainerStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error)
	IncrementSessionsCompleted(ctx context.Context, userID int64) error
}

type BookingService struct {
	sessions bookingSessionStore
	trainers bookingTrainerStore
}

func NewBookingService(sessions bookingSessionStore, trainers bookingTrainerStore) *BookingService {
	return &BookingService{sessions: sessions, trainers: trainers}
}

type BookSessionInput struct {
	TraineeID             int64
	TrainerID             int64
	StartsAt              time.Time
	DurationMinutes       int
	LocationType          string
	LocationNameOrAddress *string
	Notes                 *string
}

// BookSession prices and creates a session request against the trainer's
// current rate. The multi-session discount keys off how many non-declined
// sessions this pair booked in the last 30 days.
func (s *BookingService) BookSession(ctx context.Context, input BookSessionInput) (*models.Session, error) {
	if input.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	switch input.LocationType {
	case models.LocationGym, models.LocationHome, models.LocationVirtual:
	default:
		return nil, fmt.Errorf("%w: unknown locationType %q", ErrInvalidInput, input.LocationType)
	}

	trainer, err := s.trainers.GetByUserID(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}

	priorCount, err := s.sessions.CountRecentPair(ctx, input.TraineeID, input.TrainerID)
	if err != nil {
		return nil, err
	}

	quote := PriceSession(trainer.RatePerMinuteCents, input.DurationMinutes, priorCount)

	session := &models.Session{
		TraineeID:               input.TraineeID,
		TrainerID:               input.TrainerID,
		Status:                  models.SessionRequested,
		SessionDateTimeStart:    input.StartsAt.UTC(),
		SessionDateTimeEnd:      input.StartsAt.UTC().Add(time.Duration(input.DurationMinutes) * time.Minute),
		DurationMinutes:         input.DurationMinutes,
		BasePricePerMinuteCents: trainer.RatePerMinuteCents,
		BaseSessionPriceCents:   quote.BasePriceCents,
		DiscountType:            quote.DiscountType,
		DiscountAmountCents:     quote.DiscountAmountCents,
		FinalSessionPriceCents:  quote.FinalPriceCents,
		PlatformFeePercent:      quote.PlatformFeePercent,
		PlatformFeeCents:        quote.PlatformFeeCents,
		TrainerEarningsCents:    quote.TrainerEarningsCents,
		LocationType:            input.LocationType,
		LocationNameOrAddress:   input.LocationNameOrAddress,
		Notes:                   input.Notes,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *BookingService) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *BookingService) ListTrainerSessions(ctx context.Context, trainerID int64, status string) ([]models.Session, error) {
	return s.sessions.ListForTrainer(ctx, trainerID, status)
}

func (s *BookingService) ListTraineeSessions(ctx context.Context, traineeID int64, status string) ([]models.Session, error) {
	return s.sessions.ListForTrainee(ctx, traineeID, status)
}

// AcceptSession confirms a requested session. Only the trainer on the
// session may accept.
func (s *BookingService) AcceptSession(ctx context.Context, sessionID, trainerID int64) (*models.Session, error) {
	return s.transition(ctx, sessionID, trainerID, models.SessionConfirmed)
}

func (s *BookingService) DeclineSession(ctx context.Context, sessionID, trainerID int64) (*models.Session, error) {
	return s.transition(ctx, sessionID, trainerID, models.SessionDeclined)
}

// CancelSession cancels a non-terminal session. Either participant may
// cancel.
func (s *BookingService) CancelSession(ctx context.Context, sessionID, userID int64) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.TrainerID != userID && session.TraineeID != userID {
		return nil, ErrForbidden
	}
	switch session.Status {
	case models.SessionRequested, models.SessionConfirmed:
	default:
		return nil, fmt.Errorf("%w: cannot cancel a %s session", ErrInvalidTransition, session.Status)
	}
	return s.sessions.UpdateStatus(ctx, sessionID, models.SessionCancelled)
}

// CompleteSession marks a session completed and bumps the trainer's completed
// counter. Only the trainer on the session may complete it.
func (s *BookingService) CompleteSession(ctx context.Context, sessionID, userID int64) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.TrainerID != userID {
		return nil, ErrForbidden
	}
	switch session.Status {
	case models.SessionRequested, models.SessionConfirmed:
	default:
		return nil, fmt.Errorf("%w: cannot complete a %s session", ErrInvalidTransition, session.Status)
	}

	updated, err := s.sessions.UpdateStatus(ctx, sessionID, models.SessionCompleted)
	if err != nil {
		return nil, err
	}
	if err := s.trainers.IncrementSessionsCompleted(ctx, session.TrainerID); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *BookingService) transition(ctx context.Context, sessionID, trainerID int64, status string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.TrainerID != trainerID {
		return nil, ErrForbidden
	}
	if session.Status != models.SessionRequested {
		return nil, fmt.Errorf("%w: session is %s, not %s", ErrInvalidTransition, session.Status, models.SessionRequested)
	}
	return s.sessions.UpdateStatus(ctx, sessionID, status)
}

// Earnings summarizes a trainer's completed sessions: lifetime, calendar
// month to date, and week to date (weeks start Monday).
func (s *BookingService) Earnings(ctx context.Context, trainerID int64, now time.Time) (*models.EarningsSummary, error) {
	completed, err := s.sessions.ListCompletedForTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekday := (int(now.Weekday()) + 6) % 7
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -weekday)

	summary := &models.EarningsSummary{Sessions: completed}
	for _, session := range completed {
		summary.TotalEarningsCents += session.TrainerEarningsCents
		summary.TotalSessions++
		if !session.CreatedAt.Before(monthStart) {
			summary.MonthEarningsCents += session.TrainerEarningsCents
			summary.MonthSessions++
		}
		if !session.CreatedAt.Before(weekStart) {
			summary.WeekEarningsCents += session.TrainerEarningsCents
			summary.WeekSessions++
		}
	}
	return summary, nil
}
