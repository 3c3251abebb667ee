package cmd

import (
	"github.com/spf13/cobra"

	"github.com/debtmap/debtmap/internal/contract"
	"github.com/debtmap/debtmap/internal/mcp"
)

// mcpCmd serves the analysis over the Model Context Protocol.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve debtmap analysis tools over MCP (stdio).",
	Long: `Start a Model Context Protocol server on stdio exposing the report,
maintainability, and change-count analyses as tools for AI assistants.

Example:
  debtmap mcp`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run MCP server", err)
		}
	},
}
