// Package allowlist gates file and directory ingestion paths against an
// on-disk configuration (C1): directory containment, glob allow/block
// lists, and size/count caps. The teacher has no direct path-validation
// equivalent to adapt; this package is built from gobwas/glob (already
// in the teacher's dependency closure) plus the standard library.
package allowlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/logger"
)

// Config is the on-disk allowlist shape (A5), decoded from YAML.
type Config struct {
	AllowedDirectories   []string `yaml:"allowed_directories"`
	AllowedPatterns      []string `yaml:"allowed_patterns"`
	BlockedPatterns      []string `yaml:"blocked_patterns"`
	MaxFileSizeMB        int64    `yaml:"max_file_size_mb"`
	MaxFilesPerDirectory int      `yaml:"max_files_per_directory"`
}

// Result is the outcome of validating a single path.
type Result struct {
	Allowed          bool   `json:"allowed"`
	Reason           string `json:"reason,omitempty"`
	Hint             string `json:"hint,omitempty"`
	ResolvedAbsolute string `json:"resolved_absolute,omitempty"`
}

const notInitializedHint = "run the allowlist initialization command to create a configuration before ingesting paths"

// Allowlist holds the configuration file path and the loaded
// configuration (if any); glob patterns are compiled on each validation.
// A nil *Config means "not initialized": every validation denies.
type Allowlist struct {
	path   string
	config *Config
}

// Load reads and parses the YAML allowlist file at path. A missing file
// is not an error: it yields an Allowlist with no Config, matching the
// spec's "AllowlistConfig may be absent" state.
func Load(path string) (*Allowlist, error) {
	a := &Allowlist{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugw("allowlist config not found, running uninitialized", "path", path)
			return a, nil
		}
		return nil, fmt.Errorf("allowlist: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("allowlist: parse %s: %w", path, err)
	}
	a.config = &cfg
	return a, nil
}

// GetPath returns the configuration file location.
func (a *Allowlist) GetPath() string { return a.path }

// GetConfig returns the loaded configuration, or nil if not initialized.
func (a *Allowlist) GetConfig() *Config { return a.config }

// ValidatePath applies the C1 algorithm to a file path.
func (a *Allowlist) ValidatePath(raw string) Result {
	return a.validate(raw, false)
}

// ValidateDirectory applies the C1 algorithm to a directory path, with
// the additional max_files_per_directory cap over its immediate children.
func (a *Allowlist) ValidateDirectory(raw string) Result {
	return a.validate(raw, true)
}

func (a *Allowlist) validate(raw string, isDir bool) Result {
	if a.config == nil {
		return Result{Allowed: false, Reason: "allowlist not initialized", Hint: notInitializedHint}
	}

	resolved, err := resolvePath(raw)
	if err != nil {
		return Result{Allowed: false, Reason: fmt.Sprintf("could not resolve path: %v", err)}
	}

	for _, pattern := range a.config.BlockedPatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			logger.Warnw("allowlist: skipping invalid blocked_patterns entry", "pattern", pattern, "error", err)
			continue
		}
		if matchGlob(g, pattern, resolved) {
			return Result{
				Allowed:          false,
				Reason:           fmt.Sprintf("path matches blocked pattern %q", pattern),
				ResolvedAbsolute: resolved,
			}
		}
	}

	if len(a.config.AllowedDirectories) > 0 {
		contained := false
		for _, dir := range a.config.AllowedDirectories {
			if isWithinDirectory(resolved, dir) {
				contained = true
				break
			}
		}
		if !contained {
			return Result{
				Allowed:          false,
				Reason:           "path is not within any allowed directory",
				Hint:             "add the containing directory to allowed_directories",
				ResolvedAbsolute: resolved,
			}
		}
	}

	if len(a.config.AllowedPatterns) > 0 {
		matched := false
		for _, pattern := range a.config.AllowedPatterns {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				logger.Warnw("allowlist: skipping invalid allowed_patterns entry", "pattern", pattern, "error", err)
				continue
			}
			if matchGlob(g, pattern, resolved) {
				matched = true
				break
			}
		}
		if !matched {
			return Result{
				Allowed:          false,
				Reason:           "path does not match any allowed pattern",
				ResolvedAbsolute: resolved,
			}
		}
	}

	info, statErr := os.Stat(resolved)
	if statErr == nil {
		if isDir && info.IsDir() {
			if a.config.MaxFilesPerDirectory > 0 {
				entries, err := os.ReadDir(resolved)
				if err == nil && len(entries) > a.config.MaxFilesPerDirectory {
					return Result{
						Allowed: false,
						Reason: fmt.Sprintf("directory contains %d entries, exceeding max_files_per_directory (%d)",
							len(entries), a.config.MaxFilesPerDirectory),
						ResolvedAbsolute: resolved,
					}
				}
			}
		} else if !info.IsDir() {
			if a.config.MaxFileSizeMB > 0 {
				maxBytes := a.config.MaxFileSizeMB * 1024 * 1024
				if info.Size() > maxBytes {
					return Result{
						Allowed: false,
						Reason: fmt.Sprintf("file size %d bytes exceeds max_file_size_mb (%d MB)",
							info.Size(), a.config.MaxFileSizeMB),
						ResolvedAbsolute: resolved,
					}
				}
			}
		}
	}

	return Result{Allowed: true, ResolvedAbsolute: resolved}
}

// resolvePath expands a leading "~" against HOME and cleans the result
// to an absolute path with ".." components removed. A relative path
// that isn't "~"-prefixed is resolved against the current working
// directory, since nothing downstream is permitted to see a relative
// path (§4.3 invariant).
func resolvePath(raw string) (string, error) {
	expanded := ExpandHome(raw)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(p string) string {
	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

// matchGlob reports whether resolved satisfies pattern. Patterns compile
// with '/' as the separator so "*" never crosses a directory boundary;
// a pattern with no separator of its own (e.g. "*.exe") is also tried
// against resolved's base name, so a basename-style pattern denies a
// match no matter which directory it resolves into (§8 Scenario 4).
func matchGlob(g glob.Glob, pattern, resolved string) bool {
	if g.Match(resolved) {
		return true
	}
	if !strings.Contains(pattern, "/") {
		return g.Match(filepath.Base(resolved))
	}
	return false
}

// isWithinDirectory reports whether resolved is dir itself or a descendant of it.
func isWithinDirectory(resolved, dir string) bool {
	cleanDir := filepath.Clean(ExpandHome(dir))
	rel, err := filepath.Rel(cleanDir, resolved)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && rel != "..")
}
