// Package main is the entry point for the knowledge-graph-mcp server.
package main

import (
	"fmt"
	"os"

	"github.com/aaronsb/knowledge-graph-mcp/cmd/knowledge-graph-mcp/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "there was an error: %v\n", err)
		os.Exit(1)
	}
}
