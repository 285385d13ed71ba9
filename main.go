package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/Shubhamjh4/airsense360/handlers"
	"github.com/Shubhamjh4/airsense360/middleware"
	"github.com/Shubhamjh4/airsense360/services"

	_ "github.com/Shubhamjh4/airsense360/docs"
)

// @title AirSense360 API
// @version 1.0
// @description Air quality prediction API backed by an external ML model process
// @host localhost:8080
// @BasePath /api
func main() {
	// Config
	serverPort := getEnv("SERVER_PORT", "8080")
	candidates := splitCandidates(getEnv("PYTHON_CANDIDATES", "python,python3,py"))
	timeoutMs, _ := strconv.Atoi(getEnv("PREDICTOR_TIMEOUT_MS", "30000"))

	// Model script config
	modelSource := getEnv("MODEL_SOURCE", "local")
	modelScript := getEnv("MODEL_SCRIPT", "scripts/ml_model.py")
	modelBucket := getEnv("MODEL_BUCKET", "")
	modelKey := getEnv("MODEL_KEY", "ml_model.py")

	// X-Ray segments are optional; without the middleware enabled the SDK
	// must not treat a missing segment as fatal.
	if os.Getenv("AWS_XRAY_CONTEXT_MISSING") == "" {
		os.Setenv("AWS_XRAY_CONTEXT_MISSING", "LOG_ERROR")
	}

	// Materialize the model script
	storage, err := services.NewScriptStorage(modelSource, modelScript, modelBucket, modelKey)
	if err != nil {
		log.Fatalf("Failed to initialize script storage: %v", err)
	}
	scriptPath, err := storage.MaterializeScript(context.Background())
	if err != nil {
		log.Fatalf("Failed to materialize model script: %v", err)
	}
	log.Printf("Model script ready: %s (%s)", scriptPath, modelSource)

	// Initialize services
	runner := services.NewModelRunner(scriptPath, time.Duration(timeoutMs)*time.Millisecond)
	predictor := services.NewPredictorService(candidates, runner)

	// Initialize handlers
	predictHandler := handlers.NewPredictHandler(predictor)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName: "AirSense360",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	if getEnv("XRAY_ENABLED", "false") == "true" {
		app.Use(middleware.XRayMiddleware())
	}

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoints
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "UP"})
	})

	// API routes
	api := app.Group("/api")
	api.Get("/current", predictHandler.GetCurrent)
	api.Get("/forecast", predictHandler.GetForecast)
	api.Get("/nearby", predictHandler.GetNearby)

	log.Printf("AirSense360 server starting on port %s", serverPort)
	log.Printf("Interpreter candidates: %v", candidates)
	log.Fatal(app.Listen(":" + serverPort))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitCandidates(raw string) []string {
	var candidates []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	return candidates
}
