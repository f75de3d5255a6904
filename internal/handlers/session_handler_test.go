package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/models"
	"github.com/KingAsh2/RapidReps/internal/services"
)

type stubBooker struct {
	booked    *services.BookSessionInput
	session   *models.Session
	err       error
	completed []int64
}

func (s *stubBooker) BookSession(ctx context.Context, input services.BookSessionInput) (*models.Session, error) {
	s.booked = &input
	return s.session, s.err
}

func (s *stubBooker) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	return s.session, s.err
}

func (s *stubBooker) ListTrainerSessions(ctx context.Context, trainerID int64, status string) ([]models.Session, error) {
	return []models.Session{*s.session}, s.err
}

func (s *stubBooker) ListTraineeSessions(ctx context.Context, traineeID int64, status string) ([]models.Session, error) {
	return []models.Session{*s.session}, s.err
}

func (s *stubBooker) AcceptSession(ctx context.Context, sessionID, trainerID int64) (*models.Session, error) {
	return s.session, s.err
}

func (s *stubBooker) DeclineSession(ctx context.Context, sessionID, trainerID int64) (*models.Session, error) {
	return s.session, s.err
}

func (s *stubBooker) CancelSession(ctx context.Context, sessionID, userID int64) (*models.Session, error) {
	return s.session, s.err
}

func (s *stubBooker) CompleteSession(ctx context.Context, sessionID, userID int64) (*models.Session, error) {
	s.completed = append(s.completed, sessionID)
	return s.session, s.err
}

func (s *stubBooker) Earnings(ctx context.Context, trainerID int64, now time.Time) (*models.EarningsSummary, error) {
	return &models.EarningsSummary{TotalEarningsCents: 5400, TotalSessions: 1}, s.err
}

func testApp(handler *SessionHandler, userID int64) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Post("/api/sessions", handler.CreateSession)
	app.Patch("/api/sessions/:id/complete", handler.CompleteSession)
	app.Get("/api/trainer/earnings", handler.GetEarnings)
	return app
}

func TestCreateSessionHandler(t *testing.T) {
	stub := &stubBooker{
		session: &models.Session{
			ID:                     7,
			TraineeID:              42,
			TrainerID:              9,
			Status:                 models.SessionRequested,
			FinalSessionPriceCents: 6000,
		},
	}
	app := testApp(NewSessionHandler(stub), 42)

	body, _ := json.Marshal(map[string]any{
		"trainerId":            9,
		"sessionDateTimeStart": "2026-09-01T10:00:00Z",
		"durationMinutes":      60,
		"locationType":         "gym",
	})
	req := httptest.NewRequest("POST", "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	if stub.booked == nil {
		t.Fatal("Expected BookSession to be called")
	}
	if stub.booked.TraineeID != 42 {
		t.Errorf("Expected trainee from auth context, got %d", stub.booked.TraineeID)
	}
	if stub.booked.TrainerID != 9 || stub.booked.DurationMinutes != 60 {
		t.Errorf("Unexpected booking input: %+v", stub.booked)
	}

	var got models.Session
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Expected JSON session body, got %v", err)
	}
	if got.ID != 7 {
		t.Errorf("Expected session 7 in response, got %d", got.ID)
	}
}

func TestCreateSessionHandlerInvalidInput(t *testing.T) {
	stub := &stubBooker{err: services.ErrInvalidInput}
	app := testApp(NewSessionHandler(stub), 42)

	body, _ := json.Marshal(map[string]any{"trainerId": 9, "durationMinutes": 0, "locationType": "gym"})
	req := httptest.NewRequest("POST", "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestCompleteSessionHandlerForbidden(t *testing.T) {
	stub := &stubBooker{err: services.ErrForbidden}
	app := testApp(NewSessionHandler(stub), 42)

	req := httptest.NewRequest("PATCH", "/api/sessions/7/complete", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("Expected 403, got %d", resp.StatusCode)
	}
}

func TestGetEarningsHandler(t *testing.T) {
	stub := &stubBooker{session: &models.Session{}}
	app := testApp(NewSessionHandler(stub), 9)

	req := httptest.NewRequest("GET", "/api/trainer/earnings", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var summary models.EarningsSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("Expected JSON summary, got %v", err)
	}
	if summary.TotalEarningsCents != 5400 {
		t.Errorf("Expected 5400 total earnings, got %d", summary.TotalEarningsCents)
	}
}
