package cmd

import (
	"github.com/spf13/cobra"

	"github.com/debtmap/debtmap/core"
	"github.com/debtmap/debtmap/internal/contract"
)

// reportCmd runs the full hotspot aggregation pipeline.
var reportCmd = &cobra.Command{
	Use:   "report [target-dir]",
	Short: "Rank files and directories by technical-debt hotspot index.",
	Long: `Score every source file's maintainability, count git commits touching each
path, and aggregate both up the directory tree. The hotspot index is the
change count divided by the maintainability percentage, so a low-quality
file that changes often ranks highest.

Directory rows fold their descendants: maintainability is the worst file
beneath them, changes are the total across them.

Examples:
  # Rank the current repository, worst hotspots first
  debtmap report

  # Only count changes from this year, top 20 rows
  debtmap report --since 2026-01-01 --limit 20

  # Export the full report for further analysis
  debtmap report --output parquet --output-file debt.parquet

  # Include files that only exist in git history
  debtmap report --deleted --sort changes`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
