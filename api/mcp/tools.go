package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jivsocc/commandcenter/pkg/migration"
)

var (
	reconToolName    = "reconciliation_status"
	reconDescription = "Get source-vs-target reconciliation results for the SAP migration, optionally filtered to a single object. Returns row-level counts, per-status totals, and the overall match rate."

	rulesToolName    = "test_rules"
	rulesDescription = "Get validation test rule results for the migrated data, optionally restricted to failing rules. Returns each rule's SQL, flagged record count, and the pass/fail rollup."

	overviewToolName    = "migration_overview"
	overviewDescription = "Get a high-level overview of the SAP migration: object inventory rollup, pipeline progress, and the data health scorecard."
)

// ReconInput represents the input arguments for the reconciliation tool.
type ReconInput struct {
	Object string `json:"object,omitempty" jsonschema:"optional source object name to filter by (e.g. CUSTOMER_2)"`
}

// ReconOutput represents the output of the reconciliation tool.
type ReconOutput struct {
	Rows    []migration.ReconRow   `json:"rows"`
	Summary migration.ReconSummary `json:"summary"`
}

// RulesInput represents the input arguments for the test rules tool.
type RulesInput struct {
	FailingOnly bool `json:"failing_only,omitempty" jsonschema:"when true, return only rules that flagged records"`
}

// RulesOutput represents the output of the test rules tool.
type RulesOutput struct {
	Rules   []migration.TestRule  `json:"rules"`
	Summary migration.RuleSummary `json:"summary"`
}

// OverviewInput represents the (empty) input of the overview tool.
type OverviewInput struct{}

// OverviewOutput represents the output of the overview tool.
type OverviewOutput struct {
	Objects  migration.ObjectSummary    `json:"objects"`
	Pipeline migration.PipelineProgress `json:"pipeline"`
	Health   migration.Health           `json:"health"`
}

// handleReconciliationStatus serves reconciliation rows and their summary.
func (s *Server) handleReconciliationStatus(_ context.Context, _ *mcp.CallToolRequest, input ReconInput) (*mcp.CallToolResult, ReconOutput, error) {
	s.config.Logger.Debug("MCP reconciliation request", "object", input.Object)

	rows := migration.ReconRows
	if input.Object != "" {
		filtered := make([]migration.ReconRow, 0, len(rows))
		for _, row := range rows {
			if strings.EqualFold(row.SourceObject, input.Object) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	output := ReconOutput{
		Rows:    rows,
		Summary: migration.SummarizeRecon(rows),
	}
	return toolResult(output)
}

// handleTestRules serves the validation rule results.
func (s *Server) handleTestRules(_ context.Context, _ *mcp.CallToolRequest, input RulesInput) (*mcp.CallToolResult, RulesOutput, error) {
	s.config.Logger.Debug("MCP test rules request", "failing_only", input.FailingOnly)

	rules := migration.TestRules
	if input.FailingOnly {
		filtered := make([]migration.TestRule, 0, len(rules))
		for _, r := range rules {
			if r.NotOKCount > 0 {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	output := RulesOutput{
		Rules:   rules,
		Summary: migration.SummarizeRules(rules),
	}
	return toolResult(output)
}

// handleMigrationOverview serves the cross-dataset rollup.
func (s *Server) handleMigrationOverview(_ context.Context, _ *mcp.CallToolRequest, _ OverviewInput) (*mcp.CallToolResult, OverviewOutput, error) {
	s.config.Logger.Debug("MCP overview request")

	output := OverviewOutput{
		Objects:  migration.SummarizeObjects(migration.Objects),
		Pipeline: migration.SummarizePipeline(migration.Steps),
		Health:   migration.HealthReport,
	}
	return toolResult(output)
}

// toolResult wraps a structured output in a CallToolResult.
// Per MCP spec: tools returning structured content should also return
// serialized JSON in a TextContent block for backwards compatibility.
func toolResult[T any](output T) (*mcp.CallToolResult, T, error) {
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		var zero T
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize results: %v", err)},
			},
		}, zero, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}
