package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/creditlens/creditlens/core"
	"github.com/creditlens/creditlens/internal/commentary"
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.DataSource
}

// resolveInstitution matches a name against the available institutions:
// exact first, then a unique case-insensitive substring.
func (h *toolHandler) resolveInstitution(name string) (string, error) {
	names := h.source.ListInstitutions()
	for _, candidate := range names {
		if candidate == name {
			return candidate, nil
		}
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	var matches []string
	for _, candidate := range names {
		if strings.Contains(strings.ToLower(candidate), needle) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("unknown institution %q", name)
	default:
		return "", fmt.Errorf("ambiguous institution %q matches %s", name, strings.Join(matches, ", "))
	}
}

// fetchReport resolves a name and builds its credit report with local commentary.
func (h *toolHandler) fetchReport(ctx context.Context, name string) (*schema.InstitutionData, *schema.CreditReport, error) {
	resolved, err := h.resolveInstitution(name)
	if err != nil {
		return nil, nil, err
	}

	data, err := h.source.FetchInstitution(ctx, resolved)
	if err != nil {
		return nil, nil, err
	}

	report, err := core.BuildReport(data, h.baseCfg)
	if err != nil {
		return nil, nil, err
	}

	// MCP responses stay deterministic, so the local summarizer is used
	// regardless of the configured commentary backend.
	if text, err := commentary.NewLocal().Summarize(ctx, commentary.Context{
		Kind:   commentary.OverallKind,
		Data:   data,
		Report: report,
	}); err == nil {
		report.Commentary = text
	}
	return data, report, nil
}

func (h *toolHandler) handleScoreInstitution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("institution", "")
	if name == "" {
		return mcp.NewToolResultError("institution is required"), nil
	}

	_, report, err := h.fetchReport(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListInstitutions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.source.ListInstitutions(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleInterpretScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	score := request.GetFloat("score", -1)
	if score < 1 || score > 10 {
		return mcp.NewToolResultError("score must be between 1 and 10"), nil
	}

	band := core.InterpretScore(score)
	output := struct {
		Score       float64 `json:"score"`
		Rating      string  `json:"rating"`
		Description string  `json:"description"`
	}{
		Score:       score,
		Rating:      band.Rating,
		Description: band.Description,
	}
	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleStressTest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("institution", "")
	if name == "" {
		return mcp.NewToolResultError("institution is required"), nil
	}

	data, report, err := h.fetchReport(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stress test failed: %v", err)), nil
	}

	lcr, _ := data.Latest(schema.MetricLCR)
	output := struct {
		Institution string                   `json:"institution"`
		RunwayDays  int                      `json:"runway_days"`
		Scenarios   []schema.StressResult    `json:"scenarios"`
		Buffer      []schema.BufferComponent `json:"buffer_composition"`
		CashFlow    []schema.CashFlowPoint   `json:"cash_flow_projection"`
	}{
		Institution: report.Institution,
		RunwayDays:  report.RunwayDays,
		Scenarios:   report.Stress,
		Buffer:      core.BufferComposition(lcr),
		CashFlow:    core.CashFlowProjection(12),
	}
	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleLiquidityRunway(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lcr := request.GetFloat("lcr", -1)
	cashRatio := request.GetFloat("cash_ratio", -1)
	if lcr < 0 {
		return mcp.NewToolResultError("lcr must be a non-negative percentage"), nil
	}
	if cashRatio < 0 {
		return mcp.NewToolResultError("cash_ratio must be a non-negative percentage"), nil
	}

	output := struct {
		LCR        float64 `json:"lcr"`
		CashRatio  float64 `json:"cash_ratio"`
		RunwayDays int     `json:"runway_days"`
	}{
		LCR:        lcr,
		CashRatio:  cashRatio,
		RunwayDays: core.LiquidityRunwayDays(lcr, cashRatio),
	}
	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
