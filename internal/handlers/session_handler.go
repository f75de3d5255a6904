package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/services"
)

// Booker is the slice of the booking service the session handler needs.
type Booker interface {
	BookSession(ctx context.Context, input services.BookSessionInput) (*models.Session, error)
	GetSession(ctx context.Context, id int64) (*models.Session, error)
	ListTrainerSessions(ctx context.Context, trainerID int64, status string) ([]models.Session, error)
	ListTraineeSessions(ctx context.Context, traineeID int64, status string) ([]models.Session, error)
	AcceptSession(ctx context.Context, sessionID, trainerID int64) (*models.Session, error)
	DeclineSession(ctx context.Context, sessionID, trainerID int64) (*models.Session, error)
	CancelSession(ctx context.Context, sessionID, userID int64) (*models.Session, error)
	CompleteSession(ctx context.Context, sessionID, userID int64) (*models.Session, error)
	Earnings(ctx context.Context, trainerID int64, now time.Time) (*models.EarningsSummary, error)
}

type SessionHandler struct {
	bookings Booker
}

func NewSessionHandler(bookings Booker) *SessionHandler {
	return &SessionHandler{bookings: bookings}
}

type createSessionRequest struct {
	TrainerID             int64     `json:"trainerId"`
	SessionDateTimeStart  time.Time `json:"sessionDateTimeStart"`
	DurationMinutes       int       `json:"durationMinutes"`
	LocationType          string    `json:"locationType"`
	LocationNameOrAddress *string   `json:"locationNameOrAddress"`
	Notes                 *string   `json:"notes"`
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := h.bookings.BookSession(c.Context(), services.BookSessionInput{
		TraineeID:             userID,
		TrainerID:             req.TrainerID,
		StartsAt:              req.SessionDateTimeStart,
		DurationMinutes:       req.DurationMinutes,
		LocationType:          req.LocationType,
		LocationNameOrAddress: req.LocationNameOrAddress,
		Notes:                 req.Notes,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	session, err := h.bookings.GetSession(c.Context(), sessionID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(session)
}

func (h *SessionHandler) ListTrainerSessions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	sessions, err := h.bookings.ListTrainerSessions(c.Context(), userID, c.Query("status"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) ListTraineeSessions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	sessions, err := h.bookings.ListTraineeSessions(c.Context(), userID, c.Query("status"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) AcceptSession(c *fiber.Ctx) error {
	return h.transition(c, h.bookings.AcceptSession)
}

func (h *SessionHandler) DeclineSession(c *fiber.Ctx) error {
	return h.transition(c, h.bookings.DeclineSession)
}

func (h *SessionHandler) CancelSession(c *fiber.Ctx) error {
	return h.transition(c, h.bookings.CancelSession)
}

func (h *SessionHandler) CompleteSession(c *fiber.Ctx) error {
	return h.transition(c, h.bookings.CompleteSession)
}

func (h *SessionHandler) transition(c *fiber.Ctx, apply func(ctx context.Context, sessionID, userID int64) (*models.Session, error)) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	session, err := apply(c.Context(), sessionID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(session)
}

func (h *SessionHandler) GetEarnings(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	summary, err := h.bookings.Earnings(c.Context(), userID, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}
