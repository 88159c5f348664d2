package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/mcpserver"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), mcpserver.Version)
			return err
		},
	}
}
