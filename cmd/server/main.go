package main

import (
	"crypto/sha256"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/gbpflow/configs"
	"github.com/maheshrc27/gbpflow/internal/api/handlers"
	"github.com/maheshrc27/gbpflow/internal/api/middleware"
	"github.com/maheshrc27/gbpflow/internal/gbp"
	"github.com/maheshrc27/gbpflow/internal/service"
	"github.com/maheshrc27/gbpflow/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	// Token values are sealed with a key derived from the session secret.
	storeKey := sha256.Sum256([]byte(cfg.SecretKey))
	sessionStore := session.NewInMemoryStore(storeKey[:])

	gbpClient := gbp.NewClient(cfg.GBPAPIBaseURL)

	authService := service.NewAuthService(*cfg, sessionStore)
	profileService := service.NewProfileService(gbpClient)
	postService := service.NewPostService(gbpClient)
	insightsService := service.NewInsightsService(gbpClient)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, sessionStore)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)
	app.Get("/logout", auth.Logout)

	debug := handlers.NewDebugHandler(*cfg)
	app.Get("/debug", debug.GetConfigInfo)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler()
	api.Get("/user/info", user.GetUserInfo)

	profile := handlers.NewProfileHandler(profileService)
	api.Get("/business-profiles", profile.ListProfiles)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)

	insights := handlers.NewInsightsHandler(insightsService)
	api.Get("/insights", insights.GetInsights)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
