package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv(envOAuthClientID)
	os.Unsetenv(envOAuthClientSecret)
	os.Unsetenv(envAPIURL)
	os.Unsetenv(envAllowlistConfig)

	cfg := Load()
	if cfg.APIBaseURL != defaultAPIURL {
		t.Errorf("expected default API URL %q, got %q", defaultAPIURL, cfg.APIBaseURL)
	}
	if cfg.HasOAuthCredentials() {
		t.Error("expected no OAuth credentials by default")
	}
}

func TestHasOAuthCredentialsPartial(t *testing.T) {
	// B5: only one of the two set is treated as absent.
	cfg := &Config{OAuthClientID: "id-only"}
	if cfg.HasOAuthCredentials() {
		t.Error("expected partial credentials to be treated as absent")
	}
	cfg2 := &Config{OAuthClientSecret: "secret-only"}
	if cfg2.HasOAuthCredentials() {
		t.Error("expected partial credentials to be treated as absent")
	}
	cfg3 := &Config{OAuthClientID: "id", OAuthClientSecret: "secret"}
	if !cfg3.HasOAuthCredentials() {
		t.Error("expected full credentials to be present")
	}
}

func TestExpandHome(t *testing.T) {
	os.Setenv("HOME", "/home/tester")
	defer os.Unsetenv("HOME")

	cases := map[string]string{
		"~/data/file.txt": "/home/tester/data/file.txt",
		"~":               "/home/tester",
		"/absolute/path":  "/absolute/path",
		"relative/path":   "relative/path",
	}
	for in, want := range cases {
		if got := ExpandHome(in); got != want {
			t.Errorf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
