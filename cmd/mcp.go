package cmd

import (
	"github.com/spf13/cobra"

	"github.com/streakhq/streak/internal/mcp"
	"github.com/streakhq/streak/schema"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Streak MCP server",
	Long:  `Launch an MCP server that lets AI agents read your contribution data via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		// Tools always answer in text; stdout belongs to the protocol.
		cfg.Output = schema.TextOut
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}
