package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/repository"
	"github.com/KingAsh2/RapidReps/internal/services"
)

type stubSearcher struct {
	filter       repository.TrainerSearchFilter
	searcher     *services.Coordinates
	wantsVirtual bool
	matches      []models.TrainerMatch
}

func (s *stubSearcher) SearchTrainers(ctx context.Context, filter repository.TrainerSearchFilter, searcher *services.Coordinates, wantsVirtual bool) ([]models.TrainerMatch, error) {
	s.filter = filter
	s.searcher = searcher
	s.wantsVirtual = wantsVirtual
	return s.matches, nil
}

func TestSearchTrainersHandler(t *testing.T) {
	distance := 2.5
	stub := &stubSearcher{
		matches: []models.TrainerMatch{
			{
				TrainerProfile: models.TrainerProfile{UserID: 9},
				DistanceMiles:  &distance,
				MatchType:      models.MatchTypeInPerson,
			},
		},
	}

	app := fiber.New()
	app.Get("/api/trainers/search", NewSearchHandler(stub).SearchTrainers)

	req := httptest.NewRequest("GET",
		"/api/trainers/search?styles=HIIT,Yoga&minPrice=50&maxPrice=200&latitude=39.0993&longitude=-76.8483&wantsVirtual=true", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	if len(stub.filter.Styles) != 2 || stub.filter.Styles[0] != "HIIT" {
		t.Errorf("Expected styles filter parsed, got %v", stub.filter.Styles)
	}
	if stub.filter.MinRateCents == nil || *stub.filter.MinRateCents != 50 {
		t.Errorf("Expected minPrice 50, got %v", stub.filter.MinRateCents)
	}
	if stub.filter.MaxRateCents == nil || *stub.filter.MaxRateCents != 200 {
		t.Errorf("Expected maxPrice 200, got %v", stub.filter.MaxRateCents)
	}
	if stub.searcher == nil || stub.searcher.Latitude != 39.0993 {
		t.Errorf("Expected searcher coordinates parsed, got %v", stub.searcher)
	}
	if !stub.wantsVirtual {
		t.Errorf("Expected wantsVirtual true")
	}

	var matches []models.TrainerMatch
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		t.Fatalf("Expected JSON matches, got %v", err)
	}
	if len(matches) != 1 || matches[0].UserID != 9 || matches[0].MatchType != models.MatchTypeInPerson {
		t.Errorf("Unexpected matches payload: %+v", matches)
	}
}

func TestSearchTrainersHandlerNoLocation(t *testing.T) {
	stub := &stubSearcher{}
	app := fiber.New()
	app.Get("/api/trainers/search", NewSearchHandler(stub).SearchTrainers)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/trainers/search", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if stub.searcher != nil {
		t.Errorf("Expected nil searcher without coordinates, got %v", stub.searcher)
	}
}
