package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
)

type AdminStore interface {
	ListTrainers(ctx context.Context) ([]models.TrainerProfile, error)
	SetTrainerVerified(ctx context.Context, userID int64, verified bool) error
	ListSessions(ctx context.Context) ([]models.Session, error)
	Revenue(ctx context.Context) (*models.PlatformRevenue, error)
}

type AdminHandler struct {
	admin AdminStore
}

func NewAdminHandler(admin AdminStore) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListTrainers(c *fiber.Ctx) error {
	trainers, err := h.admin.ListTrainers(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(trainers)
}

type verifyTrainerRequest struct {
	Verified *bool `json:"verified"`
}

func (h *AdminHandler) VerifyTrainer(c *fiber.Ctx) error {
	trainerID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid trainer id"})
	}

	var req verifyTrainerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}

	if err := h.admin.SetTrainerVerified(c.Context(), trainerID, verified); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"userId": trainerID, "isVerified": verified})
}

func (h *AdminHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.admin.ListSessions(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(sessions)
}

func (h *AdminHandler) GetRevenue(c *fiber.Ctx) error {
	revenue, err := h.admin.Revenue(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(revenue)
}
