package cmd

import (
	"github.com/gitpulse/gitpulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the GitPulse MCP server",
	Long:  `Launch an MCP server that allows AI agents to scan Git activity via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The scan handlers suppress the normal header logs in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
