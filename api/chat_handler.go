package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jivsocc/commandcenter/pkg/chat"
	"github.com/jivsocc/commandcenter/pkg/gemini"
	"github.com/jivsocc/commandcenter/pkg/guard"
	"github.com/jivsocc/commandcenter/pkg/sanitize"
)

// Canned replies for guarded requests. These are ordinary 200 bodies
// so clients never special-case "blocked" versus "answered".
const (
	injectionRedirect = "I can only help with SAP migration data analysis. Please ask questions about reconciliation status, test rules, data quality, or migration progress."
	offTopicRedirect  = "I'm specialized in SAP migration data analysis. I can help you with questions about data reconciliation, test rule failures, migration status, and data quality issues. What would you like to know about the migration?"
	safetyRedirect    = "I can only provide information about SAP migration data. Please ask questions related to reconciliation, test rules, or data quality."
)

// chatRequest keeps the messages field raw so envelope validation can
// tell a non-array field from a malformed message apart.
type chatRequest struct {
	Messages json.RawMessage `json:"messages"`
}

type chatResponse struct {
	Message string `json:"message"`
}

// handleChat runs the guard chain for one conversation turn: envelope
// validation, sanitization of the latest message, policy
// classification, then a single upstream call. Every error resolves
// here; nothing propagates past this handler.
func (s *Server) handleChat(c *fiber.Ctx) error {
	logger := s.logger.With("request_id", uuid.NewString())

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: chat.ErrNotArray.Error()})
	}

	if s.generator == nil {
		logger.Error("chat request without configured API key")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Gemini API key not configured"})
	}

	messages, err := chat.ParseMessages(req.Messages)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	latest := messages[len(messages)-1].Content
	sanitized := sanitize.Clean(latest)

	switch verdict := guard.Classify(sanitized); verdict {
	case guard.InjectionAttempt:
		logger.Warn("message blocked", "verdict", verdict.String())
		return c.JSON(chatResponse{Message: injectionRedirect})
	case guard.OffTopic:
		logger.Info("message redirected", "verdict", verdict.String())
		return c.JSON(chatResponse{Message: offTopicRedirect})
	}

	contents := gemini.AssembleContents(messages, sanitized)

	start := time.Now()
	result := s.generator.Generate(c.Context(), contents)
	elapsed := time.Since(start)

	switch result.Status {
	case gemini.StatusOK:
		logger.Debug("chat reply generated",
			"turns", len(contents),
			"elapsed", elapsed,
		)
		return c.JSON(chatResponse{Message: result.Text})

	case gemini.StatusSafetyBlocked:
		logger.Warn("reply blocked by provider safety filter")
		return c.JSON(chatResponse{Message: safetyRedirect})

	case gemini.StatusRateLimited:
		return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
			Error: "Rate limit exceeded. Please wait a moment and try again.",
		})

	case gemini.StatusNotFound:
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Gemini model not found. Please check your API key and model availability.",
		})

	case gemini.StatusProviderError:
		return c.Status(result.Code).JSON(ErrorResponse{
			Error: fmt.Sprintf("Gemini API error: %d", result.Code),
		})

	default:
		logger.Error("chat request failed", "error", result.Err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Internal server error"})
	}
}
