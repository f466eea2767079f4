package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/jivsocc/commandcenter/pkg/gemini"
)

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Generator produces assistant replies for assembled conversations.
// Satisfied by *gemini.Client. A nil Generator means no API key is
// configured; the chat handler surfaces that as a 500.
type Generator interface {
	Generate(ctx context.Context, contents []gemini.Content) gemini.Result
}

// Server is the API server for the migration dashboard and chat endpoint.
type Server struct {
	config    Config
	generator Generator
	logger    *slog.Logger
	app       *fiber.App
}

// NewServer creates a new API server.
// The generator is injected so the chat handler can be exercised
// against a stub upstream in tests.
func NewServer(config Config, generator Generator, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:    config,
		generator: generator,
		logger:    logger,
		app:       app,
	}

	app.Get("/ping", s.handlePing)
	app.Get("/api/objects", s.handleObjects)
	app.Get("/api/pipeline", s.handlePipeline)
	app.Get("/api/graph", s.handleGraph)
	app.Get("/api/reconciliation", s.handleReconciliation)
	app.Get("/api/rules", s.handleRules)
	app.Get("/api/health", s.handleHealth)
	app.Post("/api/chat", s.handleChat)

	return s
}

// Mount attaches a net/http handler (e.g. the MCP server) under the
// given path on the same fiber app.
func (s *Server) Mount(path string, h http.Handler) {
	s.app.All(path, adaptor.HTTPHandler(h))
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server", "listen", s.config.ListenAddr)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
