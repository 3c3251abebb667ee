package cmd

import (
	"github.com/spf13/cobra"

	"github.com/debtmap/debtmap/core"
	"github.com/debtmap/debtmap/internal/contract"
)

// miCmd runs only the maintainability pass.
var miCmd = &cobra.Command{
	Use:   "mi [target-dir]",
	Short: "Score each source file's maintainability index.",
	Long: `Compute a maintainability index for every source file in the target
directory, listed worst first. No git history is consulted.

Examples:
  # List maintainability per file
  debtmap mi

  # Restrict scoring to Go files and emit JSON
  debtmap mi --ext go --json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMI(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run mi analysis", err)
		}
	},
}
