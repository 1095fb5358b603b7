package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/database"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/handlers"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/middleware"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/storage"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"

	_ "github.com/Ritik5Prasad/Reelzzz-server/docs/api" // Swagger docs
)

// @title Reelzzz API
// @version 1.0.0
// @description Social short-video backend: reels, follow graph, engagement rewards
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/Ritik5Prasad/Reelzzz-server

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load .env when present; real deployments use the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var mediaStore storage.MediaStore
	if cfg.MediaBucket != "" {
		store, err := storage.NewGCSStore(context.Background(), cfg.MediaBucket, cfg.MediaCredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize media storage: %v", err)
		}
		defer store.Close()
		mediaStore = store
	}

	app := buildApp(db, cfg, services.NewOAuthVerifier(cfg.GoogleClientID), mediaStore)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// buildApp assembles the Fiber app and its route table. Shared with the
// test harness, which passes fakes for the verifier and media store.
func buildApp(db *gorm.DB, cfg *config.Config, verifier services.IdentityVerifier, mediaStore storage.MediaStore) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.APIVersion())

	// Prometheus metrics
	prometheus := fiberprometheus.New("reelzzz")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	authRequired := middleware.RequireAuth(cfg)
	authOptional := middleware.OptionalAuth(cfg)

	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg, Verifier: verifier}
	userHandler := &handlers.UserHandler{DB: db}
	feedHandler := &handlers.FeedHandler{DB: db}
	reelHandler := &handlers.ReelHandler{DB: db}
	commentHandler := &handlers.CommentHandler{DB: db}
	replyHandler := &handlers.ReplyHandler{DB: db}
	likeHandler := &handlers.LikeHandler{DB: db}
	rewardHandler := &handlers.RewardHandler{DB: db}
	healthHandler := &handlers.HealthHandler{DB: db}
	shareHandler := &handlers.ShareHandler{DB: db, BaseURL: cfg.ShareBaseURL}

	auth := app.Group("/auth")
	auth.Post("/check-username", authHandler.CheckUsername)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)
	auth.Post("/refresh-token", authHandler.Refresh)

	user := app.Group("/user")
	user.Get("/profile", authRequired, userHandler.GetOwnProfile)
	user.Patch("/profile", authRequired, userHandler.UpdateProfile)
	user.Get("/profile/:username", authOptional, userHandler.GetProfileByUsername)
	user.Put("/follow/:userId", authRequired, userHandler.ToggleFollow)
	user.Get("/followers/:userId", authOptional, userHandler.GetFollowers)
	user.Get("/following/:userId", authOptional, userHandler.GetFollowing)
	user.Get("/search", authOptional, userHandler.Search)

	feed := app.Group("/feed")
	feed.Get("/home", authRequired, feedHandler.HomeFeed)
	feed.Get("/reel/:userId", authOptional, feedHandler.UserReels)
	feed.Get("/likedreel/:userId", authOptional, feedHandler.LikedReels)
	feed.Get("/watchedreel/:userId", authOptional, feedHandler.WatchedReels)
	feed.Post("/markwatched", authRequired, feedHandler.MarkWatched)

	reel := app.Group("/reel")
	reel.Post("/", authRequired, reelHandler.Create)
	reel.Get("/:reelId", authOptional, reelHandler.Get)
	reel.Patch("/:reelId/caption", authRequired, reelHandler.UpdateCaption)
	reel.Delete("/:reelId", authRequired, reelHandler.Delete)

	comment := app.Group("/comment")
	comment.Get("/", authRequired, commentHandler.List)
	comment.Post("/", authRequired, commentHandler.Create)
	comment.Post("/pin", authRequired, commentHandler.TogglePin)
	comment.Delete("/:commentId", authRequired, commentHandler.Delete)

	reply := app.Group("/reply")
	reply.Get("/", authRequired, replyHandler.List)
	reply.Post("/", authRequired, replyHandler.Create)
	reply.Delete("/:replyId", authRequired, replyHandler.Delete)

	like := app.Group("/like")
	like.Get("/", authRequired, likeHandler.List)
	like.Post("/reel/:reelId", authRequired, likeHandler.ToggleReel)
	like.Post("/comment/:commentId", authRequired, likeHandler.ToggleComment)
	like.Post("/reply/:replyId", authRequired, likeHandler.ToggleReply)

	reward := app.Group("/reward")
	reward.Get("/", authRequired, rewardHandler.Get)
	reward.Post("/redeem", authRequired, rewardHandler.Redeem)
	reward.Post("/withdraw", authRequired, rewardHandler.Withdraw)

	if mediaStore != nil {
		uploadHandler := &handlers.UploadHandler{Store: mediaStore}
		app.Post("/file/upload", authRequired, uploadHandler.Upload)
	}

	app.Get("/share/:type/:id", shareHandler.Share)
	app.Get("/health", healthHandler.Health)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resource not found",
			"url":   c.OriginalURL(),
		})
	})

	return app
}

// customErrorHandler renders every uncaught error as {"error": message}
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var apiErr *types.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
		message = apiErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
