package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/allowlist"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/config"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/logger"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/mcpserver"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/oauth"
)

// runServeCmdFunc implements the process lifecycle (C9, §4.7): load
// config, start the OAuth manager, build the backend client carrying
// whatever token the manager publishes, register tools/resources, and
// serve stdio until the transport closes.
func runServeCmdFunc(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	client := backend.NewClient(cfg.APIBaseURL)

	tokenManager := oauth.NewManager(oauth.Config{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		TokenURL:     cfg.APIBaseURL + "/oauth/token",
		Scopes:       []string{"read:*", "write:*"},
	}, client)
	defer tokenManager.Shutdown()
	if cfg.HasOAuthCredentials() {
		tokenManager.Initialize(ctx)
	} else {
		logger.Info("oauth: no client credentials configured, skipping token acquisition")
	}

	al, err := allowlist.Load(cfg.AllowlistPath)
	if err != nil {
		return fmt.Errorf("loading allowlist config: %w", err)
	}

	srv := mcpserver.New(&mcpserver.Deps{Backend: client, Allowlist: al})

	logger.Infof("knowledge-graph-mcp %s starting on stdio", mcpserver.Version)
	return srv.ServeStdio()
}
