package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nutrimind/backend/config"
	"github.com/nutrimind/backend/internal/api"
	"github.com/nutrimind/backend/internal/middleware"
	"github.com/nutrimind/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance with all routes and middleware wired
func New(cfg *config.Config) (*Server, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := service.NewCompletionClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	aiService := service.NewAIService(client, cfg.Temperature)

	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	if cfg.RateLimitPerMinute > 0 && cfg.RedisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     cfg.RateLimitPerMinute,
			KeyPrefix: "ratelimit",
		})
		router.Use(limiter.Middleware())
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to NutriMind API",
			"version": api.Version,
			"health":  "/api/health",
		})
	})

	api.SetupAPI(router, aiService, string(cfg.Provider))

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}, nil
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
