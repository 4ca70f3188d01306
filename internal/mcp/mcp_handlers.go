package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/streakhq/streak/core"
	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/internal/registry"
	"github.com/streakhq/streak/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// toolConfig clones the base config for one tool call. Output is forced to
// plain text because stdio carries the protocol itself.
func (h *toolHandler) toolConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	cfg.UseColors = false
	cfg.UseEmojis = false
	if e := request.GetString("email", ""); e != "" {
		cfg.Email = e
	}
	return cfg
}

func (h *toolHandler) handleGetContributionGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.toolConfig(request)
	client := contract.NewLocalGitClient()
	reg := registry.NewFileRegistry(cfg.RegistryPath)

	var buf bytes.Buffer
	if err := core.Generate(ctx, cfg, client, reg, h.mgr, &buf); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// contributionDays is the payload returned by get_contribution_days.
type contributionDays struct {
	Email string                   `json:"email"`
	Total int                      `json:"total"`
	Days  []schema.DayContribution `json:"days"`
}

func (h *toolHandler) handleGetContributionDays(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.toolConfig(request)
	minCount := request.GetInt("min_count", 0)

	client := contract.NewLocalGitClient()
	reg := registry.NewFileRegistry(cfg.RegistryPath)

	data, err := core.BuildGraphData(ctx, cfg, client, reg, h.mgr, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}
	if data == nil {
		return mcp.NewToolResultError("no repositories registered. Run 'streak scan <path>' or 'streak repos add <path>' first"), nil
	}

	days := core.DayBreakdown(data)
	if minCount > 0 {
		kept := days[:0]
		for _, day := range days {
			if day.Count >= minCount {
				kept = append(kept, day)
			}
		}
		days = kept
	}

	payload := contributionDays{Email: data.Email, Total: data.Total, Days: days}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRepositories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reg := registry.NewFileRegistry(h.baseCfg.RegistryPath)
	repos, err := reg.List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("registry read failed: %v", err)), nil
	}
	if repos == nil {
		repos = []string{}
	}
	jsonData, _ := json.MarshalIndent(repos, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
