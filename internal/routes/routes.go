package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/handlers"
	"github.com/KingAsh2/RapidReps/internal/middleware"
	"github.com/KingAsh2/RapidReps/internal/repository"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Search      *handlers.SearchHandler
	Session     *handlers.SessionHandler
	Virtual     *handlers.VirtualSessionHandler
	Rating      *handlers.RatingHandler
	Achievement *handlers.AchievementHandler
	Admin       *handlers.AdminHandler
	Chat        *handlers.ChatHandler
}

// Register wires the full HTTP surface under /api.
func Register(app *fiber.App, h Handlers, users *repository.UserRepository, jwtSecret string) {
	api := app.Group("/api")
	authed := middleware.AuthRequired(jwtSecret)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/signup", h.Auth.Signup)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/me", authed, h.Auth.Me)

	// Trainer profiles. Literal routes go before the :userId catch-all.
	api.Post("/trainer-profiles", authed, h.Profile.UpsertTrainerProfile)
	api.Get("/trainer-profiles/me", authed, h.Profile.GetMyTrainerProfile)
	api.Post("/trainer-profiles/documents", authed, h.Profile.UploadVerificationDocs)
	api.Get("/trainer-profiles/documents", authed, h.Profile.GetVerificationDocs)
	api.Get("/trainer-profiles/:userId", h.Profile.GetTrainerProfile)

	// Trainee profiles
	api.Post("/trainee-profiles", authed, h.Profile.UpsertTraineeProfile)
	api.Get("/trainee-profiles/me", authed, h.Profile.GetMyTraineeProfile)
	api.Get("/trainee-profiles/:userId", h.Profile.GetTraineeProfile)

	// Search
	api.Get("/trainers/search", h.Search.SearchTrainers)
	api.Get("/trainers/:id/ratings", h.Rating.ListTrainerRatings)

	// Sessions
	api.Post("/sessions", authed, h.Session.CreateSession)
	api.Get("/sessions/:id", authed, h.Session.GetSession)
	api.Patch("/sessions/:id/accept", authed, h.Session.AcceptSession)
	api.Patch("/sessions/:id/decline", authed, h.Session.DeclineSession)
	api.Patch("/sessions/:id/cancel", authed, h.Session.CancelSession)
	api.Patch("/sessions/:id/complete", authed, h.Session.CompleteSession)
	api.Get("/trainer/sessions", authed, h.Session.ListTrainerSessions)
	api.Get("/trainee/sessions", authed, h.Session.ListTraineeSessions)
	api.Get("/trainer/earnings", authed, h.Session.GetEarnings)

	// Virtual auto-match
	api.Post("/virtual-sessions/request", authed, h.Virtual.RequestVirtualSession)

	// Ratings
	api.Post("/ratings", authed, h.Rating.CreateRating)

	// Achievements
	api.Get("/trainer/achievements", authed, h.Achievement.GetTrainerAchievements)
	api.Post("/trainer/check-badges", authed, h.Achievement.CheckTrainerBadges)
	api.Get("/trainee/achievements", authed, h.Achievement.GetTraineeAchievements)
	api.Post("/trainee/check-badges", authed, h.Achievement.CheckTraineeBadges)

	// Admin
	admin := api.Group("/admin", authed, middleware.AdminRequired(users))
	admin.Get("/trainers", h.Admin.ListTrainers)
	admin.Patch("/trainers/:userId/verify", h.Admin.VerifyTrainer)
	admin.Get("/sessions", h.Admin.ListSessions)
	admin.Get("/revenue", h.Admin.GetRevenue)

	// Chat
	api.Post("/conversations", authed, h.Chat.CreateConversation)
	api.Get("/conversations", authed, h.Chat.ListConversations)
	api.Get("/conversations/:id/messages", authed, h.Chat.ListMessages)
	api.Post("/messages", authed, h.Chat.SendMessage)
	api.Use("/ws", h.Chat.WebSocketAuth)
	api.Get("/ws", h.Chat.HandleWebSocket())
}
