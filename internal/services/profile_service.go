package services

import (
	"context"
	"fmt"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/repository"
)

type trainerProfileStore interface {
	Upsert(ctx context.Context, input repository.UpsertTrainerProfileInput) (*models.TrainerProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error)
	AppendVerificationDocs(ctx context.Context, userID int64, docs []string) (*models.TrainerProfile, error)
	Search(ctx context.Context, filter repository.TrainerSearchFilter) ([]models.TrainerProfile, error)
}

type traineeProfileStore interface {
	Upsert(ctx context.Context, input repository.UpsertTraineeProfileInput) (*models.TraineeProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.TraineeProfile, error)
}

type profileUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type ProfileService struct {
	trainers trainerProfileStore
	trainees traineeProfileStore
	users    profileUserReader
}

func NewProfileService(trainers trainerProfileStore, trainees traineeProfileStore, users profileUserReader) *ProfileService {
	return &ProfileService{trainers: trainers, trainees: trainees, users: users}
}

// UpsertTrainerProfile creates or fully replaces the caller's trainer
// profile. The caller must hold the trainer role.
func (s *ProfileService) UpsertTrainerProfile(ctx context.Context, input repository.UpsertTrainerProfileInput) (*models.TrainerProfile, error) {
	if err := s.requireRole(ctx, input.UserID, models.RoleTrainer); err != nil {
		return nil, err
	}
	if input.RatePerMinuteCents < 0 {
		return nil, fmt.Errorf("%w: ratePerMinuteCents must not be negative", ErrInvalidInput)
	}
	return s.trainers.Upsert(ctx, input)
}

func (s *ProfileService) GetTrainerProfile(ctx context.Context, userID int64) (*models.TrainerProfile, error) {
	return s.trainers.GetByUserID(ctx, userID)
}

func (s *ProfileService) UpsertTraineeProfile(ctx context.Context, input repository.UpsertTraineeProfileInput) (*models.TraineeProfile, error) {
	if err := s.requireRole(ctx, input.UserID, models.RoleTrainee); err != nil {
		return nil, err
	}
	switch input.CurrentFitnessLevel {
	case models.FitnessLevelBeginner, models.FitnessLevelIntermediate, models.FitnessLevelAdvanced:
	default:
		return nil, fmt.Errorf("%w: unknown currentFitnessLevel %q", ErrInvalidInput, input.CurrentFitnessLevel)
	}
	return s.trainees.Upsert(ctx, input)
}

func (s *ProfileService) GetTraineeProfile(ctx context.Context, userID int64) (*models.TraineeProfile, error) {
	return s.trainees.GetByUserID(ctx, userID)
}

// AddVerificationDocs appends uploaded document references to the trainer's
// profile without resetting anything else.
func (s *ProfileService) AddVerificationDocs(ctx context.Context, userID int64, docs []string) (*models.TrainerProfile, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no documents provided", ErrInvalidInput)
	}
	return s.trainers.AppendVerificationDocs(ctx, userID, docs)
}

// SearchTrainers filters available trainers in storage, then classifies them
// by proximity to the searcher.
func (s *ProfileService) SearchTrainers(ctx context.Context, filter repository.TrainerSearchFilter, searcher *Coordinates, wantsVirtual bool) ([]models.TrainerMatch, error) {
	candidates, err := s.trainers.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return MatchTrainers(searcher, candidates, wantsVirtual), nil
}

func (s *ProfileService) requireRole(ctx context.Context, userID int64, role string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasRole(role) {
		return fmt.Errorf("%w: user lacks the %s role", ErrForbidden, role)
	}
	return nil
}
