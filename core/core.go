// Package core has core logic for discovery, scoring and aggregation.
package core

import (
	"context"
	"sort"
	"time"

	"github.com/debtmap/debtmap/core/agg"
	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/internal/outwriter"
	"github.com/debtmap/debtmap/schema"
)

// ExecutorFunc defines the function signature for executing analysis commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteReport runs the full pipeline and renders the aggregated hotspot
// report. It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	scorer := NewMaintainabilityScorer()
	results, err := RunReportCore(ctx, cfg, client, scorer)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintMetricsResults(results, cfg, duration)
}

// ExecuteMI runs only the maintainability pass and renders the per-file
// listing. It serves as the main entry point for the 'mi' command.
func ExecuteMI(ctx context.Context, cfg *contract.Config) error {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg)
	}
	files, err := DiscoverModules(cfg)
	if err != nil {
		return err
	}
	measurements, err := ScoreModules(ctx, cfg, NewMaintainabilityScorer(), files)
	if err != nil {
		return err
	}
	// Worst files first
	sortMeasurements(measurements)
	return outwriter.PrintMeasurements(measurements, cfg)
}

// ExecuteChanges runs only the change-count pass and renders the per-path
// listing. It serves as the main entry point for the 'changes' command.
func ExecuteChanges(ctx context.Context, cfg *contract.Config) error {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg)
	}
	client := contract.NewLocalGitClient()
	changes, err := CountChanges(ctx, cfg, client)
	if err != nil {
		return err
	}
	sortChanges(changes)
	return outwriter.PrintChanges(changes, cfg)
}

// RunReportCore performs the shared discovery, scoring, change-count, and
// aggregation steps, returning sorted and limited results. It is reused by
// both the CLI and the MCP server.
func RunReportCore(ctx context.Context, cfg *contract.Config, client contract.GitClient, scorer contract.Scorer) ([]*schema.PathMetrics, error) {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg)
	}

	// --- 1. Discovery ---
	files, err := DiscoverModules(cfg)
	if err != nil {
		return nil, err
	}

	// --- 2. Concurrent scoring ---
	measurements, err := ScoreModules(ctx, cfg, scorer, files)
	if err != nil {
		return nil, err
	}

	// --- 3. Change-count pass ---
	changes, err := CountChanges(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	// --- 4. Aggregation ---
	metricsMap := agg.NewMetricsMap(cfg.Extensions)
	for _, m := range measurements {
		metricsMap.ApplyMaintainability(m)
	}
	for _, c := range changes {
		metricsMap.ApplyChanges(c)
	}

	// --- 5. Selection, sort, limit ---
	results := metricsMap.Select(cfg.Deleted)
	schema.SortMetrics(results, cfg.SortBy)
	return schema.LimitMetrics(results, cfg.Limit), nil
}

// sortMeasurements orders per-file scores worst first, path as tiebreak.
func sortMeasurements(measurements []schema.FileMeasurement) {
	sort.SliceStable(measurements, func(i, j int) bool {
		if measurements[i].Score != measurements[j].Score {
			return measurements[i].Score < measurements[j].Score
		}
		return measurements[i].Path < measurements[j].Path
	})
}

// sortChanges orders change counts highest first, path as tiebreak.
func sortChanges(changes []schema.FileChange) {
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].Count != changes[j].Count {
			return changes[i].Count > changes[j].Count
		}
		return changes[i].Path < changes[j].Path
	})
}
