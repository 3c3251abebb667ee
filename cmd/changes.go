package cmd

import (
	"github.com/spf13/cobra"

	"github.com/debtmap/debtmap/core"
	"github.com/debtmap/debtmap/internal/contract"
)

// changesCmd runs only the change-count pass.
var changesCmd = &cobra.Command{
	Use:   "changes [target-dir]",
	Short: "Count git commits touching each path.",
	Long: `Count how many commits touched each path in the target directory's git
history, listed most-changed first. No maintainability scoring happens.

Examples:
  # Count changes over the full history
  debtmap changes

  # Count recent changes only
  debtmap changes --since 2026-06-01 --json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChanges(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run changes analysis", err)
		}
	},
}
