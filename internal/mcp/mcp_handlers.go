package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/debtmap/debtmap/core"
	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// metricsToolRow mirrors the JSON output rows; maintainability is a pointer
// so unset values marshal as null instead of failing on +Inf.
type metricsToolRow struct {
	Path            string   `json:"path"`
	Kind            string   `json:"kind"`
	Maintainability *float64 `json:"maintainability"`
	Changes         int      `json:"changes"`
	HotspotIndex    float64  `json:"hotspot_index"`
}

func toToolRows(results []*schema.PathMetrics) []metricsToolRow {
	rows := make([]metricsToolRow, len(results))
	for i, r := range results {
		row := metricsToolRow{
			Path:         r.Path,
			Kind:         string(r.Kind),
			Changes:      r.Changes,
			HotspotIndex: r.HotspotIndex(),
		}
		if !r.IsDeleted() {
			mi := r.Maintainability
			row.Maintainability = &mi
		}
		rows[i] = row
	}
	return rows
}

func (h *toolHandler) handleGetDebtReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("target_dir", ""); d != "" {
		cfg.TargetDir = d
	}
	if s := request.GetString("since", ""); s != "" {
		t, err := time.Parse(schema.SinceDateFormat, s)
		if err != nil || t.Format(schema.SinceDateFormat) != s {
			return mcp.NewToolResultError(fmt.Sprintf("invalid since date %q. expected YYYY-MM-DD", s)), nil
		}
		cfg.Since = s
	}
	if s := request.GetString("sort", ""); s != "" {
		field := schema.SortField(strings.ToLower(s))
		if !schema.ValidSortFields[field] {
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort field %q. must be path, kind, maintainability, changes, hotspot", s)), nil
		}
		cfg.SortBy = field
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.Limit = l
	}
	cfg.Deleted = request.GetBool("deleted", cfg.Deleted)

	client := contract.NewLocalGitClient()
	scorer := core.NewMaintainabilityScorer()
	results, err := core.RunReportCore(core.WithSuppressHeader(ctx, true), cfg, client, scorer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(toToolRows(results), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetMaintainability(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("target_dir", ""); d != "" {
		cfg.TargetDir = d
	}

	files, err := core.DiscoverModules(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("discovery failed: %v", err)), nil
	}
	measurements, err := core.ScoreModules(ctx, cfg, core.NewMaintainabilityScorer(), files)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	sort.SliceStable(measurements, func(i, j int) bool {
		if measurements[i].Score != measurements[j].Score {
			return measurements[i].Score < measurements[j].Score
		}
		return measurements[i].Path < measurements[j].Path
	})

	type row struct {
		Path  string  `json:"path"`
		Score float64 `json:"maintainability"`
	}
	rows := make([]row, len(measurements))
	for i, m := range measurements {
		rows[i] = row{Path: m.Path, Score: m.Score}
	}
	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetChanges(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("target_dir", ""); d != "" {
		cfg.TargetDir = d
	}
	if s := request.GetString("since", ""); s != "" {
		t, err := time.Parse(schema.SinceDateFormat, s)
		if err != nil || t.Format(schema.SinceDateFormat) != s {
			return mcp.NewToolResultError(fmt.Sprintf("invalid since date %q. expected YYYY-MM-DD", s)), nil
		}
		cfg.Since = s
	}

	client := contract.NewLocalGitClient()
	changes, err := core.CountChanges(ctx, cfg, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("change counting failed: %v", err)), nil
	}
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].Count != changes[j].Count {
			return changes[i].Count > changes[j].Count
		}
		return changes[i].Path < changes[j].Path
	})

	type row struct {
		Path  string `json:"path"`
		Count int    `json:"changes"`
	}
	rows := make([]row, len(changes))
	for i, c := range changes {
		rows[i] = row{Path: c.Path, Count: c.Count}
	}
	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
