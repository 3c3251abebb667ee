// Package cmd defines the command-line interface for debtmap.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(miCmd)
	rootCmd.AddCommand(changesCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("since", "", "Only count changes since this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("ext", "", "Comma-separated source file extensions (defaults to a multi-language set)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated paths to exclude, matched on whole segments")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent scoring workers")
	rootCmd.PersistentFlags().String("output", string(schema.TextMode), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Per-command flags are bound to Viper at PreRun time (sharedSetup), so
	// the same key can back different commands without the binds clobbering
	// each other.
	reportCmd.Flags().String("sort", string(schema.SortByHotspot), "Sort field: path or kind ascending, maintainability/changes/hotspot descending")
	reportCmd.Flags().IntP("limit", "l", contract.DefaultLimit, "Number of results to display (0 = all)")
	reportCmd.Flags().Bool("deleted", false, "Include paths that only exist in git history")

	miCmd.Flags().Bool("json", false, "Emit the listing as JSON")
	changesCmd.Flags().Bool("json", false, "Emit the listing as JSON")
}
