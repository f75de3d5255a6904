package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/services"
)

type VirtualMatcher interface {
	RequestVirtualSession(ctx context.Context, traineeID int64, notes *string, now time.Time) (*services.VirtualSessionResult, error)
}

type VirtualSessionHandler struct {
	virtual VirtualMatcher
}

func NewVirtualSessionHandler(virtual VirtualMatcher) *VirtualSessionHandler {
	return &VirtualSessionHandler{virtual: virtual}
}

type virtualSessionRequest struct {
	Notes *string `json:"notes"`
}

// RequestVirtualSession auto-matches the caller with the best available
// virtual trainer for an immediate fixed-price 30-minute session.
func (h *VirtualSessionHandler) RequestVirtualSession(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req virtualSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.virtual.RequestVirtualSession(c.Context(), userID, req.Notes, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}
