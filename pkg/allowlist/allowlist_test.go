package allowlist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, cfg Config) string {
	t.Helper()
	path := filepath.Join(dir, "allowlist.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create config: %v", err)
	}
	defer f.Close()

	body := "allowed_directories:\n"
	for _, d := range cfg.AllowedDirectories {
		body += "  - " + d + "\n"
	}
	body += "allowed_patterns:\n"
	for _, p := range cfg.AllowedPatterns {
		body += "  - " + p + "\n"
	}
	body += "blocked_patterns:\n"
	for _, p := range cfg.BlockedPatterns {
		body += "  - " + p + "\n"
	}
	if cfg.MaxFileSizeMB > 0 {
		body += "max_file_size_mb: " + itoa(cfg.MaxFileSizeMB) + "\n"
	}
	if cfg.MaxFilesPerDirectory > 0 {
		body += "max_files_per_directory: " + itoa(int64(cfg.MaxFilesPerDirectory)) + "\n"
	}
	if _, err := f.WriteString(body); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func TestValidatePathNotInitializedDenies(t *testing.T) {
	a := &Allowlist{path: "/nonexistent/allowlist.yaml"}
	res := a.ValidatePath("/tmp/x.txt")
	if res.Allowed {
		t.Fatal("expected deny when allowlist not initialized")
	}
	if res.Hint == "" {
		t.Error("expected a hint pointing at initialization")
	}
}

func TestLoadMissingFileLeavesUninitialized(t *testing.T) {
	a, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.GetConfig() != nil {
		t.Error("expected nil config for missing file")
	}
}

func TestBlockedPatternOverridesAllowed(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, Config{
		AllowedDirectories: []string{dir},
		AllowedPatterns:    []string{"**"},
		BlockedPatterns:    []string{"**/*.exe"},
	})
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	res := a.ValidatePath(filepath.Join(dir, "payload.exe"))
	if res.Allowed {
		t.Fatal("expected deny for blocked .exe pattern")
	}
	if res.Reason == "" {
		t.Error("expected a reason naming the blocked pattern")
	}
}

func TestBlockedPatternMatchesBasenameWithoutSeparator(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, Config{
		AllowedDirectories: []string{dir},
		AllowedPatterns:    []string{"**"},
		BlockedPatterns:    []string{"*.exe"},
	})
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	res := a.ValidatePath(filepath.Join(dir, "payload.exe"))
	if res.Allowed {
		t.Fatal("expected deny for a bare *.exe blocked pattern, regardless of directory depth")
	}
}

func TestDirectoryContainmentDeniesOutsidePath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, Config{
		AllowedDirectories: []string{dir},
		AllowedPatterns:    []string{"**"},
	})
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	res := a.ValidatePath("/etc/passwd")
	if res.Allowed {
		t.Fatal("expected deny for path outside allowed_directories")
	}
}

func TestMaxFileSizeDenies(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(big, make([]byte, 2*1024*1024), 0o644); err != nil {
		t.Fatalf("write big file: %v", err)
	}
	path := writeConfig(t, dir, Config{
		AllowedDirectories: []string{dir},
		AllowedPatterns:    []string{"**"},
		MaxFileSizeMB:      1,
	})
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	res := a.ValidatePath(big)
	if res.Allowed {
		t.Fatal("expected deny for file exceeding max_file_size_mb")
	}
}

func TestAllowedPathPasses(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(ok, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	path := writeConfig(t, dir, Config{
		AllowedDirectories: []string{dir},
		AllowedPatterns:    []string{"**/*.txt"},
		BlockedPatterns:    []string{"**/*.exe"},
	})
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	res := a.ValidatePath(ok)
	if !res.Allowed {
		t.Fatalf("expected allow, got deny: %+v", res)
	}
	if res.ResolvedAbsolute != ok {
		t.Errorf("expected resolved_absolute %q, got %q", ok, res.ResolvedAbsolute)
	}
}

func TestExpandHomeResolvesTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	got := ExpandHome("~/notes.txt")
	want := filepath.Join(home, "notes.txt")
	if got != want {
		t.Errorf("ExpandHome(~/notes.txt) = %q, want %q", got, want)
	}
}
