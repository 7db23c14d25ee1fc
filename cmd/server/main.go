// @title         agent-factory API
// @version       1.0
// @description   Backend for the multi-framework AI agent generator: composes framework-specific prompts from templates or free text, calls the selected LLM provider, and validates the returned code.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	_ "github.com/agentfactory/backend/docs"

	// internal imports
	"github.com/agentfactory/backend/api/http"
	"github.com/agentfactory/backend/api/http/handlers"
	"github.com/agentfactory/backend/pkg/config"
	"github.com/agentfactory/backend/pkg/generator"
	"github.com/agentfactory/backend/pkg/health"
	"github.com/agentfactory/backend/pkg/health/checkers"
	"github.com/agentfactory/backend/pkg/llm"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logger := newLogger(cfg)

	app := fiber.New()

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewCatalogChecker())
	healthHandler := handlers.NewHealthHandler(readiness)

	// Catalogs are static; the handler reads them directly.
	catalogHandler := handlers.NewCatalogHandler()

	// Generation pipeline
	genUC := generator.NewService(generator.Options{
		Factory: generator.DefaultFactory(cfg.GeminiBaseURL, cfg.OpenAIBaseURL),
		Retry: llm.RetryOpts{
			MaxRetries: cfg.RetryMax,
			BaseDelay:  time.Duration(cfg.RetryBaseDelayMS) * time.Millisecond,
		},
		Logger: logger,
	})
	generateHandler := handlers.NewGenerateHandler(genUC)
	downloadHandler := handlers.NewDownloadHandler()

	// Register routes
	http.Register(app, healthHandler, catalogHandler, generateHandler, downloadHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.LogPretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}
