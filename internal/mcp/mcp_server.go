// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the CreditLens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.DataSource) *server.MCPServer {
	s := server.NewMCPServer(
		"CreditLens Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
	}

	// --- 1. Tool: score_institution ---
	s.AddTool(mcp.NewTool("score_institution",
		mcp.WithDescription("Score a financial institution across capitalization, asset quality, profitability and liquidity, returning the full credit report."),
		mcp.WithString("institution", mcp.Description("Institution name. Partial names are matched case-insensitively, e.g. 'schwab'."), mcp.Required()),
	), h.handleScoreInstitution)

	// --- 2. Tool: list_institutions ---
	s.AddTool(mcp.NewTool("list_institutions",
		mcp.WithDescription("List the institutions available for credit analysis."),
	), h.handleListInstitutions)

	// --- 3. Tool: interpret_score ---
	s.AddTool(mcp.NewTool("interpret_score",
		mcp.WithDescription("Map a 1-10 credit score to its letter rating band."),
		mcp.WithNumber("score", mcp.Description("Credit score between 1 and 10."), mcp.Required()),
	), h.handleInterpretScore)

	// --- 4. Tool: stress_test ---
	s.AddTool(mcp.NewTool("stress_test",
		mcp.WithDescription("Run the liquidity stress scenarios for an institution, including runway and buffer composition."),
		mcp.WithString("institution", mcp.Description("Institution name. Partial names are matched case-insensitively."), mcp.Required()),
	), h.handleStressTest)

	// --- 5. Tool: liquidity_runway ---
	s.AddTool(mcp.NewTool("liquidity_runway",
		mcp.WithDescription("Estimate the liquidity runway in days from an LCR and cash ratio pair."),
		mcp.WithNumber("lcr", mcp.Description("Liquidity coverage ratio in percent, e.g. 125."), mcp.Required()),
		mcp.WithNumber("cash_ratio", mcp.Description("Cash ratio in percent, e.g. 10."), mcp.Required()),
	), h.handleLiquidityRunway)

	return s
}

// StartMCPServer starts the CreditLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.DataSource) error {
	s := NewMCPServer(baseCfg, source)
	return server.ServeStdio(s)
}
