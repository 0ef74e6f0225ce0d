// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"tuiter/internal/cache"
	"tuiter/internal/config"
	"tuiter/internal/database"
	"tuiter/internal/middleware"
	"tuiter/internal/models"
	"tuiter/internal/observability"
	"tuiter/internal/repository"
	"tuiter/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	app             *fiber.App
	promMiddleware  *fiberprometheus.FiberPrometheus
	tracingShutdown func(context.Context) error
	userRepo        repository.UserRepository
	tuitRepo        repository.TuitRepository
	likeRepo        repository.LikeRepository
	followRepo      repository.FollowRepository
	bookmarkRepo    repository.BookmarkRepository
	messageRepo     repository.MessageRepository
	userService     *service.UserService
	tuitService     *service.TuitService
	likeService     *service.LikeService
	followService   *service.FollowService
	bookmarkService *service.BookmarkService
	messageService  *service.MessageService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	server, err := NewServerWithDeps(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}

	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "tuiter-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExport,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing initialization failed: %w", err)
	}
	server.tracingShutdown = shutdown

	return server, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	tuitRepo := repository.NewTuitRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	prom := middleware.InitMetrics("tuiter-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		tuitRepo:       tuitRepo,
		likeRepo:       likeRepo,
		followRepo:     followRepo,
		bookmarkRepo:   bookmarkRepo,
		messageRepo:    messageRepo,
	}
	server.userService = service.NewUserService(userRepo)
	server.tuitService = service.NewTuitService(tuitRepo, userRepo)
	server.likeService = service.NewLikeService(db, tuitRepo, likeRepo, userRepo)
	server.followService = service.NewFollowService(followRepo, userRepo)
	server.bookmarkService = service.NewBookmarkService(bookmarkRepo, tuitRepo, userRepo)
	server.messageService = service.NewMessageService(messageRepo, userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Distributed tracing
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Message-by-id deletion lives outside the /users tree
	api.Delete("/messages/:mid", s.DeleteMessage)

	// Tuit routes
	tuits := api.Group("/tuits")
	tuits.Get("/", s.GetTuits)
	tuits.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_tuit"), s.CreateTuit)
	// Define specific /:tid/:resource routes BEFORE generic /:tid route
	tuits.Get("/:tid/likes", s.GetTuitLikers)
	tuits.Get("/:tid/bookmarks", s.GetTuitBookmarkers)
	tuits.Get("/:tid", s.GetTuit)
	tuits.Put("/:tid", s.UpdateTuit)
	tuits.Delete("/:tid", s.DeleteTuit)

	// User routes
	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "create_user"), s.CreateUser)

	// Specific /:userid/:resource routes before the generic /:userid route
	users.Get("/username/:username", s.GetUserByUsername)
	users.Get("/:userid/tuits", s.GetUserTuits)
	users.Post("/:userid/tuits", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_tuit"), s.CreateUserTuit)

	// Reactions
	users.Get("/:userid/likes/:tid", s.GetReaction)
	users.Get("/:userid/likes", s.GetLikedTuits)
	users.Get("/:userid/dislikes", s.GetDislikedTuits)
	users.Post("/:userid/likes/:tid", s.LikeTuit)
	users.Delete("/:userid/unlikes/:tid", s.UnlikeTuit)
	users.Put("/:userid/likes/:tid", s.ToggleLike)
	users.Put("/:userid/dislikes/:tid", s.ToggleDislike)

	// Follows
	users.Post("/:followerId/follows/:followedId", s.Follow)
	users.Delete("/:followerId/follows/:followedId", s.Unfollow)
	users.Get("/:userid/follows/followers", s.GetFollowers)
	users.Get("/:userid/follows", s.GetFollowing)

	// Bookmarks
	users.Post("/:userid/bookmarks/:tid", s.BookmarkTuit)
	users.Delete("/:userid/bookmarks/:tid", s.UnbookmarkTuit)
	users.Get("/:userid/bookmarks", s.GetBookmarkedTuits)

	// Messages
	users.Post("/:userid/messages/:otherId", middleware.RateLimit(
		s.redis, 15, time.Minute, "send_message"), s.SendMessage)
	users.Get("/:userid/messages/sent", s.GetSentMessages)
	users.Get("/:userid/messages/received", s.GetReceivedMessages)
	users.Delete("/:userid/messages/:otherId", s.DeleteConversation)

	// Generic /:userid routes must be last
	users.Get("/:userid", s.GetUser)
	users.Put("/:userid", s.UpdateUser)
	users.Delete("/:userid", s.DeleteUser)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The API serves without Redis, at reduced capacity
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overallStatus,
		"version": "1.0.0",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Tuiter API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.tracingShutdown != nil {
		if terr := s.tracingShutdown(ctx); terr != nil {
			log.Printf("error shutting down tracing: %v", terr)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
