package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/repository"
)

// ProfileStore is the slice of the profile service the handlers need.
type ProfileStore interface {
	UpsertTrainerProfile(ctx context.Context, input repository.UpsertTrainerProfileInput) (*models.TrainerProfile, error)
	GetTrainerProfile(ctx context.Context, userID int64) (*models.TrainerProfile, error)
	UpsertTraineeProfile(ctx context.Context, input repository.UpsertTraineeProfileInput) (*models.TraineeProfile, error)
	GetTraineeProfile(ctx context.Context, userID int64) (*models.TraineeProfile, error)
	AddVerificationDocs(ctx context.Context, userID int64, docs []string) (*models.TrainerProfile, error)
}

type ProfileHandler struct {
	profiles ProfileStore
}

func NewProfileHandler(profiles ProfileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Optional booleans default like the mobile clients expect: a trainer who
// says nothing offers in-person sessions and is visible in search.
type trainerProfileRequest struct {
	AvatarURL                  *string  `json:"avatarUrl"`
	Bio                        *string  `json:"bio"`
	ExperienceYears            int      `json:"experienceYears"`
	Certifications             []string `json:"certifications"`
	TrainingStyles             []string `json:"trainingStyles"`
	GymsWorkedAt               []string `json:"gymsWorkedAt"`
	PrimaryGym                 *string  `json:"primaryGym"`
	OffersInPerson             *bool    `json:"offersInPerson"`
	OffersVirtual              bool     `json:"offersVirtual"`
	SessionDurationsOffered    []int32  `json:"sessionDurationsOffered"`
	RatePerMinuteCents         *int     `json:"ratePerMinuteCents"`
	TravelRadiusMiles          *int     `json:"travelRadiusMiles"`
	CancellationPolicy         *string  `json:"cancellationPolicy"`
	VerificationDocs           []string `json:"verificationDocs"`
	Latitude                   *float64 `json:"latitude"`
	Longitude                  *float64 `json:"longitude"`
	LocationAddress            *string  `json:"locationAddress"`
	IsAvailable                *bool    `json:"isAvailable"`
	IsVirtualTrainingAvailable bool     `json:"isVirtualTrainingAvailable"`
	VideoCallPreference        *string  `json:"videoCallPreference"`
}

func (h *ProfileHandler) UpsertTrainerProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req trainerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	durations := req.SessionDurationsOffered
	if len(durations) == 0 {
		durations = []int32{30, 45, 60}
	}

	input := repository.UpsertTrainerProfileInput{
		UserID:                     userID,
		AvatarURL:                  req.AvatarURL,
		Bio:                        req.Bio,
		ExperienceYears:            req.ExperienceYears,
		Certifications:             orEmpty(req.Certifications),
		TrainingStyles:             orEmpty(req.TrainingStyles),
		GymsWorkedAt:               orEmpty(req.GymsWorkedAt),
		PrimaryGym:                 req.PrimaryGym,
		OffersInPerson:             boolOr(req.OffersInPerson, true),
		OffersVirtual:              req.OffersVirtual,
		SessionDurationsOffered:    durations,
		RatePerMinuteCents:         intOr(req.RatePerMinuteCents, 100),
		TravelRadiusMiles:          req.TravelRadiusMiles,
		CancellationPolicy:         req.CancellationPolicy,
		VerificationDocs:           orEmpty(req.VerificationDocs),
		Latitude:                   req.Latitude,
		Longitude:                  req.Longitude,
		LocationAddress:            req.LocationAddress,
		IsAvailable:                boolOr(req.IsAvailable, true),
		IsVirtualTrainingAvailable: req.IsVirtualTrainingAvailable,
		VideoCallPreference:        req.VideoCallPreference,
	}

	profile, err := h.profiles.UpsertTrainerProfile(c.Context(), input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) GetTrainerProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}
	profile, err := h.profiles.GetTrainerProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) GetMyTrainerProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	profile, err := h.profiles.GetTrainerProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

type verificationDocsRequest struct {
	Documents []string `json:"documents"`
}

func (h *ProfileHandler) UploadVerificationDocs(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req verificationDocsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	profile, err := h.profiles.AddVerificationDocs(c.Context(), userID, req.Documents)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

// GetVerificationDocs reports the caller's uploaded documents and whether an
// admin has verified them yet.
func (h *ProfileHandler) GetVerificationDocs(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	profile, err := h.profiles.GetTrainerProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"documents":      profile.VerificationDocs,
		"isVerified":     profile.IsVerified,
		"totalDocuments": len(profile.VerificationDocs),
	})
}

type traineeProfileRequest struct {
	FitnessGoals            *string  `json:"fitnessGoals"`
	CurrentFitnessLevel     string   `json:"currentFitnessLevel"`
	ExperienceLevel         *string  `json:"experienceLevel"`
	PreferredTrainingStyles []string `json:"preferredTrainingStyles"`
	InjuriesOrLimitations   *string  `json:"injuriesOrLimitations"`
	HomeGymOrZipCode        *string  `json:"homeGymOrZipCode"`
	PrefersInPerson         *bool    `json:"prefersInPerson"`
	PrefersVirtual          bool     `json:"prefersVirtual"`
	IsVirtualEnabled        bool     `json:"isVirtualEnabled"`
	BudgetMinPerMinuteCents *int     `json:"budgetMinPerMinuteCents"`
	BudgetMaxPerMinuteCents *int     `json:"budgetMaxPerMinuteCents"`
	Latitude                *float64 `json:"latitude"`
	Longitude               *float64 `json:"longitude"`
	LocationAddress         *string  `json:"locationAddress"`
}

func (h *ProfileHandler) UpsertTraineeProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req traineeProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	level := req.CurrentFitnessLevel
	if level == "" {
		level = models.FitnessLevelBeginner
	}

	input := repository.UpsertTraineeProfileInput{
		UserID:                  userID,
		FitnessGoals:            req.FitnessGoals,
		CurrentFitnessLevel:     level,
		ExperienceLevel:         req.ExperienceLevel,
		PreferredTrainingStyles: orEmpty(req.PreferredTrainingStyles),
		InjuriesOrLimitations:   req.InjuriesOrLimitations,
		HomeGymOrZipCode:        req.HomeGymOrZipCode,
		PrefersInPerson:         boolOr(req.PrefersInPerson, true),
		PrefersVirtual:          req.PrefersVirtual,
		IsVirtualEnabled:        req.IsVirtualEnabled,
		BudgetMinPerMinuteCents: intOr(req.BudgetMinPerMinuteCents, 50),
		BudgetMaxPerMinuteCents: intOr(req.BudgetMaxPerMinuteCents, 200),
		Latitude:                req.Latitude,
		Longitude:               req.Longitude,
		LocationAddress:         req.LocationAddress,
	}

	profile, err := h.profiles.UpsertTraineeProfile(c.Context(), input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) GetTraineeProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}
	profile, err := h.profiles.GetTraineeProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) GetMyTraineeProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	profile, err := h.profiles.GetTraineeProfile(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
