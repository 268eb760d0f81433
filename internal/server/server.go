// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"log"
	"strings"
	"time"

	"secretely/internal/auth"
	"secretely/internal/cache"
	"secretely/internal/config"
	"secretely/internal/database"
	"secretely/internal/middleware"
	"secretely/internal/models"
	"secretely/internal/repository"
	"secretely/internal/service"

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
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	auth           *auth.Service
	userRepo       repository.UserRepository
	friendRepo     repository.FriendRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	userService    *service.UserService
	friendService  *service.FriendService
	postService    *service.PostService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	prom := middleware.InitMetrics("secretely-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		auth: auth.NewService(cfg.JWTSecret, "secretely-api", "secretely-client",
			time.Duration(cfg.TokenTTLMinutes)*time.Minute),
		userRepo:       userRepo,
		friendRepo:     friendRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
	}
	server.userService = service.NewUserService(userRepo)
	server.friendService = service.NewFriendService(friendRepo, userRepo)
	server.postService = service.NewPostService(postRepo, commentRepo, friendRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
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
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth and registration
	app.Post("/token", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "token"), s.IssueToken)
	app.Post("/users", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.RegisterUser)

	// Friend routes
	friends := app.Group("/friends", s.AuthRequired())
	friends.Get("/", s.GetFriends)
	friends.Post("/:userId", s.SendFriendRequest)
	friends.Post("/:userId/accept", s.AcceptFriendRequest)

	// Post routes
	posts := app.Group("/posts")
	posts.Post("/secrets/signed", s.AuthRequired(), s.CreateSignedSecret)
	posts.Post("/secrets/anon", middleware.RateLimit(
		s.redis, 10, time.Minute, "anon_secret"), s.CreateAnonSecret)
	posts.Get("/public/secrets", s.GetPublicSecrets)
	posts.Get("/friends/secrets", s.AuthRequired(), s.GetFriendsSecrets)
	posts.Post("/wyrs", s.CreateWYR)
	posts.Get("/wyrs", s.GetWYRs)

	// Like and comment routes. Specific /:id/:resource routes only, no
	// generic /:id detail route exists on purpose.
	posts.Put("/:id/likes", s.AuthRequired(), s.LikePost)
	posts.Get("/:id/likes", s.GetLikeCount)
	posts.Post("/:id/comments", s.AuthRequired(), middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.CreateComment)
	posts.Get("/:id/comments", s.GetComments)
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
		// Redis is optional; readiness only degrades, not fails.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It verifies the
// bearer token and stores the subject's user ID in locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return models.RespondWithAppError(c,
				models.NewUnauthenticatedError("Authorization required"))
		}

		userID, err := s.auth.Verify(tokenString)
		if err != nil {
			return models.RespondWithAppError(c, err)
		}

		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Secretely API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithAppError(c, err)
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
