// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"glimpse/internal/cache"
	"glimpse/internal/config"
	"glimpse/internal/database"
	"glimpse/internal/middleware"
	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"
	"glimpse/internal/service"
	"glimpse/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Token issuer/audience claims.
const (
	tokenIssuer   = "glimpse-api"
	tokenAudience = "glimpse-client"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *mongo.Database
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	uploader    storage.Uploader

	relationshipService *service.RelationshipService
	postService         *service.PostService
	commentService      *service.CommentService
	feedService         *service.FeedService
	userService         *service.UserService
	imageService        *service.ImageService

	tracingShutdown func(context.Context) error
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	uploader, err := storage.NewFileStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		return nil, fmt.Errorf("media store init failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, uploader)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the DB and Redis.
func NewServerWithDeps(cfg *config.Config, db *mongo.Database, redisClient *redis.Client, uploader storage.Uploader) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("glimpse-api"),
		uploader:       uploader,
	}

	if db != nil {
		server.userRepo = repository.NewUserRepository(db)
		server.postRepo = repository.NewPostRepository(db)
		server.commentRepo = repository.NewCommentRepository(db)
	}

	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "glimpse-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampler,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}
	server.tracingShutdown = shutdown

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
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

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Uploaded media is served straight from the media directory.
	app.Static("/media", s.config.MediaDir)

	auth := app.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	posts := app.Group("/posts")
	posts.Get("/:username/previews", s.GetPreviews)
	posts.Post("/images", s.AuthRequired(), s.UploadPostImages)
	posts.Post("/", s.AuthRequired(), middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_post"), s.CreatePost)
	posts.Post("/:id/likes", s.AuthRequired(), s.LikePost)
	posts.Post("/:id/save", s.AuthRequired(), s.SavePost)
	posts.Delete("/:id", s.AuthRequired(), s.DeletePost)

	comments := app.Group("/comments")
	comments.Post("/", s.AuthRequired(), middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.CreateComment)
	comments.Delete("/:id", s.AuthRequired(), s.DeleteComment)

	users := app.Group("/users")
	users.Post("/images", s.AuthRequired(), s.UploadProfileImage)
	users.Post("/:username/follow", s.AuthRequired(), s.FollowUser)
	// Feed routes are self-only: identity must match the route subject.
	users.Get("/:username/home", s.AuthRequired(), s.RequireSelf(), s.GetHome)
	users.Get("/:username/explore", s.AuthRequired(), s.RequireSelf(), s.GetExplore)
	users.Get("/:username/suggestions", s.AuthRequired(), s.RequireSelf(), s.GetSuggestions)
	users.Put("/:username", s.AuthRequired(), s.RequireSelf(), s.UpdateProfile)

	search := app.Group("/search")
	search.Get("/users", middleware.RateLimit(
		s.redis, 10, time.Minute, "search"), s.SearchUsers)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.db == nil {
		dbStatus = "unavailable"
	} else if err := s.db.Client().Ping(ctx, nil); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app serves without Redis; readiness only reports it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
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

// AuthRequired returns the authentication middleware. It expects an
// `Authorization: Bearer <token>` header (scheme case-insensitive) and binds
// the authenticated user id and username to the request.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization header is missing or invalid"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}
		userID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		username, ok := claims["username"].(string)
		if !ok || username == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid username claim"))
		}

		c.Locals("userID", userID)
		c.Locals("username", username)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID.Hex())
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// RequireSelf rejects requests whose authenticated username differs from the
// :username route parameter. Must be placed after AuthRequired.
func (s *Server) RequireSelf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Locals("username").(string)
		if username != c.Params("username") {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Can not access someone else's account"))
		}
		return c.Next()
	}
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Glimpse API",
		BodyLimit: 50 * 1024 * 1024, // image batches arrive base64-encoded
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

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.tracingShutdown != nil {
		if err := s.tracingShutdown(ctx); err != nil {
			log.Printf("error shutting down tracing: %v", err)
		}
	}

	if s.db != nil {
		if err := database.Disconnect(s.db); err != nil {
			log.Printf("error closing mongo client: %v", err)
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
