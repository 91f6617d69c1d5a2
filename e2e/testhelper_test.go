package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/rsoguitar/api/internal/handler"
	"github.com/rsoguitar/api/internal/middleware"
	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/service"
)

const (
	testJWTSecret      = "test-secret-for-e2e"
	testDefaultMaxFret = 24
)

// testApp holds all components needed for testing
type testApp struct {
	app  *fiber.App
	auth *middleware.AuthMiddleware
}

// setupApp creates a Fiber app wired like main.go. Redis points at
// localhost; the caches and rate limiter fail open, so the synchronous
// routes behave identically whether or not Redis is running.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	redisClient := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // use DB 15 for tests to avoid collision
	})

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr: "localhost:6379",
		DB:   15,
	})
	t.Cleanup(func() { asynqClient.Close() })

	validate := validator.New()

	patternService := service.NewPatternService(redisClient)
	blockService := service.NewBlockService()
	cagedService := service.NewCAGEDService(redisClient)
	boardService := service.NewBoardService(redisClient, asynqClient)

	patternHandler := handler.NewPatternHandler(patternService, validate, testDefaultMaxFret)
	blockHandler := handler.NewBlockHandler(blockService, validate, testDefaultMaxFret)
	cagedHandler := handler.NewCAGEDHandler(cagedService, validate, testDefaultMaxFret)
	boardHandler := handler.NewBoardHandler(boardService, validate, testDefaultMaxFret)
	fretboardHandler := handler.NewFretboardHandler()

	authMiddleware := middleware.NewAuthMiddleware(testJWTSecret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", authMiddleware.Authenticate())

	api.Get("/fretboard/note", fretboardHandler.Note)

	patterns := api.Group("/patterns", rateLimiter.PatternLimit(1000))
	patterns.Post("/spiral", patternHandler.Spiral)
	patterns.Post("/jumping", patternHandler.Jumping)
	patterns.Post("/chords", patternHandler.Family)
	patterns.Post("/hierarchy", patternHandler.Hierarchy)
	patterns.Post("/modes", patternHandler.ModeShape)

	blocks := api.Group("/blocks", authMiddleware.RequirePremium(), rateLimiter.BlockLimit(1000))
	blocks.Post("/search", blockHandler.Search)
	blocks.Post("/reanchor", blockHandler.Reanchor)

	caged := api.Group("/caged", authMiddleware.RequirePremium(), rateLimiter.CAGEDLimit(1000))
	caged.Post("/shapes", cagedHandler.Shapes)

	boards := api.Group("/boards", authMiddleware.RequirePremium())
	boards.Post("/generate", boardHandler.Generate)
	boards.Get("/status/:jobId", boardHandler.Status)
	boards.Get("/result/:jobId", boardHandler.Result)

	return &testApp{app: app, auth: authMiddleware}
}

func doRequest(app *fiber.App, method, path, body string, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return app.Test(req, -1)
}

// doAuthRequest performs a request with a premium-tier bearer token.
func doAuthRequest(t *testing.T, ta *testApp, method, path, body string) (*http.Response, error) {
	t.Helper()
	token, err := ta.auth.GenerateToken("test-user", "test@example.com", model.TierPremium)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return doRequest(ta.app, method, path, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// doFreeRequest performs a request with a free-tier bearer token.
func doFreeRequest(t *testing.T, ta *testApp, method, path, body string) (*http.Response, error) {
	t.Helper()
	token, err := ta.auth.GenerateToken("free-user", "free@example.com", model.TierFree)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return doRequest(ta.app, method, path, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d; body: %s", resp.StatusCode, want, body)
	}
}

func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to parse JSON: %v; body: %s", err, data)
	}
	return result
}

func marshalJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return string(data)
}

func assertErrorCode(t *testing.T, resp *http.Response, code string) {
	t.Helper()
	result := parseJSON(t, resp)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object in response")
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}
