package services

import (
	"context"
	"fmt"
	"time"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type virtualSessionWriter interface {
	Create(ctx context.Context, session *models.Session) error
}

type virtualCandidateLister interface {
	ListVirtualCandidates(ctx context.Context) ([]models.TrainerProfile, error)
}

type virtualUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type VirtualSessionService struct {
	sessions virtualSessionWriter
	trainers virtualCandidateLister
	users    virtualUserReader
}

func NewVirtualSessionService(sessions virtualSessionWriter, trainers virtualCandidateLister, users virtualUserReader) *VirtualSessionService {
	return &VirtualSessionService{sessions: sessions, trainers: trainers, users: users}
}

type VirtualSessionResult struct {
	SessionID              int64     `json:"sessionId"`
	TrainerID              int64     `json:"trainerId"`
	TrainerName            string    `json:"trainerName"`
	TrainerRating          float64   `json:"trainerRating"`
	SessionDateTimeStart   time.Time `json:"sessionDateTimeStart"`
	SessionDateTimeEnd     time.Time `json:"sessionDateTimeEnd"`
	DurationMinutes        int       `json:"durationMinutes"`
	FinalSessionPriceCents int       `json:"finalSessionPriceCents"`
	Status                 string    `json:"status"`
	MeetingLink            string    `json:"zoomMeetingLink"`
}

// PickVirtualTrainer returns the best auto-match candidate: highest average
// rating, most completed sessions as tiebreaker. Nil when nobody is eligible.
func PickVirtualTrainer(candidates []models.TrainerProfile) *models.TrainerProfile {
	var best *models.TrainerProfile
	for i := range candidates {
		c := &candidates[i]
		if !c.IsAvailable || !c.IsVirtualTrainingAvailable || !c.OffersVirtual {
			continue
		}
		if best == nil ||
			c.AverageRating > best.AverageRating ||
			(c.AverageRating == best.AverageRating && c.TotalSessionsCompleted > best.TotalSessionsCompleted) {
			best = c
		}
	}
	return best
}

// RequestVirtualSession auto-matches the trainee with the best available
// virtual trainer and books a fixed-price 30-minute session, confirmed
// immediately with a generated meeting link.
func (s *VirtualSessionService) RequestVirtualSession(ctx context.Context, traineeID int64, notes *string, now time.Time) (*VirtualSessionResult, error) {
	candidates, err := s.trainers.ListVirtualCandidates(ctx)
	if err != nil {
		return nil, err
	}
	trainer := PickVirtualTrainer(candidates)
	if trainer == nil {
		return nil, ErrNoVirtualTrainers
	}

	trainerUser, err := s.users.GetByID(ctx, trainer.UserID)
	if err != nil {
		return nil, err
	}

	quote := PriceVirtualSession()
	start := now.UTC()
	end := start.Add(virtualSessionMinutes * time.Minute)
	meetingLink := fmt.Sprintf("https://zoom.us/j/%d%d", trainer.UserID, start.Unix())
	locationType := models.LocationVirtual

	session := &models.Session{
		TraineeID:               traineeID,
		TrainerID:               trainer.UserID,
		Status:                  models.SessionConfirmed,
		SessionDateTimeStart:    start,
		SessionDateTimeEnd:      end,
		DurationMinutes:         virtualSessionMinutes,
		BasePricePerMinuteCents: virtualSessionPriceCents / virtualSessionMinutes,
		BaseSessionPriceCents:   quote.BasePriceCents,
		DiscountAmountCents:     quote.DiscountAmountCents,
		FinalSessionPriceCents:  quote.FinalPriceCents,
		PlatformFeePercent:      quote.PlatformFeePercent,
		PlatformFeeCents:        quote.PlatformFeeCents,
		TrainerEarningsCents:    quote.TrainerEarningsCents,
		LocationType:            locationType,
		MeetingLink:             &meetingLink,
		Notes:                   notes,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &VirtualSessionResult{
		SessionID:              session.ID,
		TrainerID:              trainer.UserID,
		TrainerName:            trainerUser.FullName,
		TrainerRating:          trainer.AverageRating,
		SessionDateTimeStart:   session.SessionDateTimeStart,
		SessionDateTimeEnd:     session.SessionDateTimeEnd,
		DurationMinutes:        session.DurationMinutes,
		FinalSessionPriceCents: session.FinalSessionPriceCents,
		Status:                 session.Status,
		MeetingLink:            meetingLink,
	}, nil
}
