package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/repository"
	"github.com/KingAsh2/RapidReps/internal/services"
)

type TrainerSearcher interface {
	SearchTrainers(ctx context.Context, filter repository.TrainerSearchFilter, searcher *services.Coordinates, wantsVirtual bool) ([]models.TrainerMatch, error)
}

type SearchHandler struct {
	search TrainerSearcher
}

func NewSearchHandler(search TrainerSearcher) *SearchHandler {
	return &SearchHandler{search: search}
}

// SearchTrainers handles GET /api/trainers/search. Storage filters come from
// the query string; the proximity matcher orders in-person matches ahead of
// virtual ones.
func (h *SearchHandler) SearchTrainers(c *fiber.Ctx) error {
	filter := repository.TrainerSearchFilter{}

	if styles := c.Query("styles"); styles != "" {
		filter.Styles = strings.Split(styles, ",")
	}
	if v, err := strconv.Atoi(c.Query("minPrice")); err == nil {
		filter.MinRateCents = &v
	}
	if v, err := strconv.Atoi(c.Query("maxPrice")); err == nil {
		filter.MaxRateCents = &v
	}
	if v, err := strconv.ParseBool(c.Query("inPerson")); err == nil {
		filter.OffersInPerson = &v
	}
	if v, err := strconv.ParseBool(c.Query("virtual")); err == nil {
		filter.OffersVirtual = &v
	}

	var searcher *services.Coordinates
	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr == nil && lonErr == nil {
		searcher = &services.Coordinates{Latitude: lat, Longitude: lon}
	}

	wantsVirtual, _ := strconv.ParseBool(c.Query("wantsVirtual"))

	matches, err := h.search.SearchTrainers(c.Context(), filter, searcher, wantsVirtual)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(matches)
}
