package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/rsoguitar/api/internal/config"
	"github.com/rsoguitar/api/internal/handler"
	"github.com/rsoguitar/api/internal/middleware"
	"github.com/rsoguitar/api/internal/service"
	ws "github.com/rsoguitar/api/internal/websocket"
	"github.com/rsoguitar/api/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis not available: %v", err)
	}

	// Initialize Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Initialize validator
	validate := validator.New()

	// Initialize WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize services
	patternService := service.NewPatternService(redisClient)
	blockService := service.NewBlockService()
	cagedService := service.NewCAGEDService(redisClient)
	boardService := service.NewBoardService(redisClient, asynqClient)

	// Initialize handlers
	patternHandler := handler.NewPatternHandler(patternService, validate, cfg.Engine.DefaultMaxFret)
	blockHandler := handler.NewBlockHandler(blockService, validate, cfg.Engine.DefaultMaxFret)
	cagedHandler := handler.NewCAGEDHandler(cagedService, validate, cfg.Engine.DefaultMaxFret)
	boardHandler := handler.NewBoardHandler(boardService, validate, cfg.Engine.DefaultMaxFret)
	fretboardHandler := handler.NewFretboardHandler()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/api", authMiddleware.Authenticate())

	// Fretboard tap queries
	api.Get("/fretboard/note", fretboardHandler.Note)

	// Pattern routes (free tier)
	patterns := api.Group("/patterns", rateLimiter.PatternLimit(cfg.RateLimit.PatternsPerMin))
	patterns.Post("/spiral", patternHandler.Spiral)
	patterns.Post("/jumping", patternHandler.Jumping)
	patterns.Post("/chords", patternHandler.Family)
	patterns.Post("/hierarchy", patternHandler.Hierarchy)
	patterns.Post("/modes", patternHandler.ModeShape)

	// Block routes (premium lesson content)
	blocks := api.Group("/blocks", authMiddleware.RequirePremium(), rateLimiter.BlockLimit(cfg.RateLimit.BlocksPerMin))
	blocks.Post("/search", blockHandler.Search)
	blocks.Post("/reanchor", blockHandler.Reanchor)

	// CAGED routes (premium lesson content)
	caged := api.Group("/caged", authMiddleware.RequirePremium(), rateLimiter.CAGEDLimit(cfg.RateLimit.CAGEDPerMin))
	caged.Post("/shapes", cagedHandler.Shapes)

	// Board job routes (premium lesson content)
	boards := api.Group("/boards", authMiddleware.RequirePremium())
	boards.Post("/generate", rateLimiter.BoardLimit(cfg.RateLimit.BoardsPerHour), boardHandler.Generate)
	boards.Get("/status/:jobId", boardHandler.Status)
	boards.Get("/result/:jobId", boardHandler.Result)

	// WebSocket routes
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/boards/:jobId", websocket.New(func(c *websocket.Conn) {
		jobID := c.Params("jobId")
		hub.HandleConnection(c, jobID)
	}))

	// Start Asynq worker server
	go startWorkerServer(cfg, boardService, hub)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func startWorkerServer(cfg *config.Config, boardService *service.BoardService, hub *ws.Hub) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"board": 10,
			},
		},
	)

	boardWorker := worker.NewBoardWorker(boardService, hub)

	mux := asynq.NewServeMux()
	mux.HandleFunc(service.TaskTypeBoard, boardWorker.ProcessTask)

	if err := srv.Run(mux); err != nil {
		log.Printf("Asynq worker error: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "SERVICE_ERROR",
			"message": message,
		},
	})
}
