package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jivsocc/commandcenter/pkg/migration"
)

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleObjects returns the migration object inventory with its rollup.
func (s *Server) handleObjects(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"objects": migration.Objects,
		"summary": migration.SummarizeObjects(migration.Objects),
	})
}

// handlePipeline returns the lifecycle steps and overall progress.
func (s *Server) handlePipeline(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"steps":    migration.Steps,
		"progress": migration.SummarizePipeline(migration.Steps),
	})
}

// handleGraph returns the object dependency graph descriptors.
func (s *Server) handleGraph(c *fiber.Ctx) error {
	return c.JSON(migration.BuildGraph(migration.Objects))
}

// handleReconciliation returns the recon rows, their summary, and the
// root-cause and insight blocks shown beside the recon table.
func (s *Server) handleReconciliation(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"rows":       migration.ReconRows,
		"summary":    migration.SummarizeRecon(migration.ReconRows),
		"rootCauses": migration.RootCauses,
		"insights":   migration.Insights,
	})
}

// handleRules returns the test rule results with their pass/fail rollup.
func (s *Server) handleRules(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"rules":   migration.TestRules,
		"summary": migration.SummarizeRules(migration.TestRules),
	})
}

// handleHealth returns the data health scorecard.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(migration.HealthReport)
}
