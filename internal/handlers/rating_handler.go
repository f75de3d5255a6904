package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/services"
)

type Rater interface {
	CreateRating(ctx context.Context, input services.CreateRatingInput) (*models.Rating, error)
	ListTrainerRatings(ctx context.Context, trainerID int64) ([]models.Rating, error)
}

type RatingHandler struct {
	ratings Rater
}

func NewRatingHandler(ratings Rater) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

type createRatingRequest struct {
	SessionID  int64   `json:"sessionId"`
	Rating     int     `json:"rating"`
	ReviewText *string `json:"reviewText"`
}

func (h *RatingHandler) CreateRating(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req createRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	rating, err := h.ratings.CreateRating(c.Context(), services.CreateRatingInput{
		SessionID:  req.SessionID,
		TraineeID:  userID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

func (h *RatingHandler) ListTrainerRatings(c *fiber.Ctx) error {
	trainerID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid trainer id"})
	}
	ratings, err := h.ratings.ListTrainerRatings(c.Context(), trainerID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(ratings)
}
