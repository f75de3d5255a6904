package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/services"
)

type stubMatcher struct {
	result *services.VirtualSessionResult
	err    error
}

func (s *stubMatcher) RequestVirtualSession(ctx context.Context, traineeID int64, notes *string, now time.Time) (*services.VirtualSessionResult, error) {
	return s.result, s.err
}

func virtualTestApp(stub *stubMatcher, userID int64) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Post("/api/virtual-sessions", NewVirtualSessionHandler(stub).RequestVirtualSession)
	return app
}

func TestRequestVirtualSessionHandlerNoTrainers(t *testing.T) {
	app := virtualTestApp(&stubMatcher{err: services.ErrNoVirtualTrainers}, 42)

	body, _ := json.Marshal(map[string]any{})
	req := httptest.NewRequest("POST", "/api/virtual-sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Expected JSON error body, got %v", err)
	}
	if payload["error"] != "No virtual trainers available at the moment" {
		t.Errorf("Unexpected error message: %q", payload["error"])
	}
}

func TestRequestVirtualSessionHandlerSuccess(t *testing.T) {
	stub := &stubMatcher{result: &services.VirtualSessionResult{
		SessionID:              3,
		TrainerID:              9,
		TrainerName:            "Jess Cardio",
		Status:                 "confirmed",
		DurationMinutes:        30,
		FinalSessionPriceCents: 1800,
		MeetingLink:            "https://zoom.us/j/9123",
	}}
	app := virtualTestApp(stub, 42)

	body, _ := json.Marshal(map[string]any{"notes": "leg day"})
	req := httptest.NewRequest("POST", "/api/virtual-sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var result services.VirtualSessionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Expected JSON result body, got %v", err)
	}
	if result.SessionID != 3 || result.MeetingLink != "https://zoom.us/j/9123" {
		t.Errorf("Unexpected result: %+v", result)
	}
}
