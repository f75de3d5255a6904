package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type BadgeChecker interface {
	CheckTrainerBadges(ctx context.Context, trainerID int64) (*models.AchievementSummary, error)
	CheckTraineeBadges(ctx context.Context, traineeID int64) (*models.AchievementSummary, error)
}

type AchievementHandler struct {
	achievements BadgeChecker
}

func NewAchievementHandler(achievements BadgeChecker) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// GetTrainerAchievements and CheckTrainerBadges both re-evaluate the full
// badge catalog; the check endpoint exists so clients can trigger a refresh
// right after completing a session.
func (h *AchievementHandler) GetTrainerAchievements(c *fiber.Ctx) error {
	return h.evaluate(c, h.achievements.CheckTrainerBadges)
}

func (h *AchievementHandler) CheckTrainerBadges(c *fiber.Ctx) error {
	return h.evaluate(c, h.achievements.CheckTrainerBadges)
}

func (h *AchievementHandler) GetTraineeAchievements(c *fiber.Ctx) error {
	return h.evaluate(c, h.achievements.CheckTraineeBadges)
}

func (h *AchievementHandler) CheckTraineeBadges(c *fiber.Ctx) error {
	return h.evaluate(c, h.achievements.CheckTraineeBadges)
}

func (h *AchievementHandler) evaluate(c *fiber.Ctx, check func(ctx context.Context, userID int64) (*models.AchievementSummary, error)) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	summary, err := check(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}
