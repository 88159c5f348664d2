// Package app wires this process's cobra command tree together,
// following the teacher's cmd/thv/app root-command construction idiom
// (persistent flags bound through viper, PersistentPreRun initializing
// the logger) adapted to a single-purpose server with one command
// instead of a multi-verb CLI.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/logger"
)

// NewRootCmd builds the knowledge-graph-mcp command tree. Running it
// with no subcommand starts the server, since that's this process's
// only job; "version" exists alongside it for operational convenience.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "knowledge-graph-mcp",
		DisableAutoGenTag: true,
		Short:             "An MCP server bridging an AI assistant host to a knowledge-graph HTTP API",
		Long: `knowledge-graph-mcp is a Model Context Protocol server. It speaks line-delimited
JSON-RPC over stdin/stdout to an AI assistant host, translating a fixed set of tools and
resources into authenticated HTTP calls against a remote knowledge-graph API.`,
		RunE: runServeCmdFunc,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			logger.SetLevel(debug)
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("error binding debug flag: %v", err)
	}

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
