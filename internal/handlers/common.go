package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/KingAsh2/RapidReps/internal/services"
)

// msgNoVirtualTrainers is the wire message clients show when auto-match finds
// nobody; the sentinel behind it stays lowercase like any other error.
const msgNoVirtualTrainers = "No virtual trainers available at the moment"

// serviceError maps service and storage errors onto HTTP responses. Sentinel
// wrapping keeps the user-facing message in the error itself.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, services.ErrNoVirtualTrainers):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgNoVirtualTrainers})
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized"})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func currentUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := c.Locals("user_id").(int64)
	if !ok {
		return 0, errors.New("no authenticated user on request")
	}
	return userID, nil
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
