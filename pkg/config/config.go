// Package config loads process configuration from the environment, following
// the teacher's viper-bound env/flag convention (cmd/vmcp/app/commands.go).
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	envOAuthClientID     = "KG_OAUTH_CLIENT_ID"
	envOAuthClientSecret = "KG_OAUTH_CLIENT_SECRET"
	envAPIURL            = "KG_API_URL"
	envAllowlistConfig   = "KG_ALLOWLIST_CONFIG"

	defaultAPIURL = "http://localhost:8000"
)

// Config holds the process's environment-derived settings.
type Config struct {
	OAuthClientID     string
	OAuthClientSecret string
	APIBaseURL        string
	AllowlistPath     string
}

// Load reads the process environment into a Config, applying defaults for
// anything left unset. It never returns an error: a missing OAuth credential
// or allowlist path is a degraded-mode condition, not a startup failure.
func Load() *Config {
	v := viper.New()
	_ = v.BindEnv("oauth_client_id", envOAuthClientID)
	_ = v.BindEnv("oauth_client_secret", envOAuthClientSecret)
	_ = v.BindEnv("api_url", envAPIURL)
	_ = v.BindEnv("allowlist_config", envAllowlistConfig)
	v.SetDefault("api_url", defaultAPIURL)

	cfg := &Config{
		OAuthClientID:     v.GetString("oauth_client_id"),
		OAuthClientSecret: v.GetString("oauth_client_secret"),
		APIBaseURL:        v.GetString("api_url"),
		AllowlistPath:     v.GetString("allowlist_config"),
	}
	if cfg.AllowlistPath == "" {
		cfg.AllowlistPath = defaultAllowlistPath()
	}
	cfg.AllowlistPath = ExpandHome(cfg.AllowlistPath)
	return cfg
}

// HasOAuthCredentials reports whether both client ID and secret are present.
// Per spec B5, a partially-set pair (only one of the two) is treated as
// absent — no acquisition is attempted.
func (c *Config) HasOAuthCredentials() bool {
	return c.OAuthClientID != "" && c.OAuthClientSecret != ""
}

func defaultAllowlistPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "knowledge-graph-mcp", "allowlist.yaml")
}

// ExpandHome expands a leading "~" in p against the HOME environment variable,
// per §4.3 step 2 / boundary behavior B4.
func ExpandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if p == "~" {
		return home
	}
	if len(p) > 1 && (p[1] == '/' || p[1] == filepath.Separator) {
		return filepath.Join(home, p[2:])
	}
	return p
}
