package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/KingAsh2/RapidReps/internal/config"
	"github.com/KingAsh2/RapidReps/internal/database"
	"github.com/KingAsh2/RapidReps/internal/handlers"
	"github.com/KingAsh2/RapidReps/internal/repository"
	"github.com/KingAsh2/RapidReps/internal/routes"
	"github.com/KingAsh2/RapidReps/internal/services"
	"github.com/KingAsh2/RapidReps/internal/websocket"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool, err := database.Connect(context.Background(), cfg.DBUrl)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	trainerRepo := repository.NewTrainerProfileRepository(pool)
	traineeRepo := repository.NewTraineeProfileRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	achievementRepo := repository.NewAchievementRepository(pool)
	conversationRepo := repository.NewConversationRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)

	profileService := services.NewProfileService(trainerRepo, traineeRepo, userRepo)
	bookingService := services.NewBookingService(sessionRepo, trainerRepo)
	virtualService := services.NewVirtualSessionService(sessionRepo, trainerRepo, userRepo)
	ratingService := services.NewRatingService(ratingRepo, sessionRepo, trainerRepo)
	achievementService := services.NewAchievementService(achievementRepo, sessionRepo, ratingRepo)
	chatService := services.NewChatService(conversationRepo, messageRepo, userRepo)

	hub := websocket.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName: "RapidReps API",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Register(app, routes.Handlers{
		Auth:        handlers.NewAuthHandler(userRepo, cfg.JWTSecret),
		Profile:     handlers.NewProfileHandler(profileService),
		Search:      handlers.NewSearchHandler(profileService),
		Session:     handlers.NewSessionHandler(bookingService),
		Virtual:     handlers.NewVirtualSessionHandler(virtualService),
		Rating:      handlers.NewRatingHandler(ratingService),
		Achievement: handlers.NewAchievementHandler(achievementService),
		Admin:       handlers.NewAdminHandler(services.NewAdminService(trainerRepo, sessionRepo)),
		Chat:        handlers.NewChatHandler(chatService, hub, chatService, cfg.JWTSecret),
	}, userRepo, cfg.JWTSecret)

	log.Printf("listening on :%s (%s)", cfg.Port, cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
