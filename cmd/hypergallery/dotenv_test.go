// ABOUTME: Tests for the .env file loader that reads KEY=VALUE pairs into the process environment.
// ABOUTME: Covers plain and quoted values, comments, export prefixes, and no-clobber behavior.
package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempEnv(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// unsetForTest clears key for the duration of the test and restores it after.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDotEnvSetsVariables(t *testing.T) {
	path := writeTempEnv(t, "HYPERGALLERY_TEST_A=hello\n# comment\n\nexport HYPERGALLERY_TEST_B=world\n")
	unsetForTest(t, "HYPERGALLERY_TEST_A")
	unsetForTest(t, "HYPERGALLERY_TEST_B")

	n, err := loadDotEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 variables set, got %d", n)
	}
	if got := os.Getenv("HYPERGALLERY_TEST_A"); got != "hello" {
		t.Errorf("expected HYPERGALLERY_TEST_A=hello, got %q", got)
	}
	if got := os.Getenv("HYPERGALLERY_TEST_B"); got != "world" {
		t.Errorf("expected HYPERGALLERY_TEST_B=world, got %q", got)
	}
}

func TestLoadDotEnvDoesNotClobber(t *testing.T) {
	path := writeTempEnv(t, "HYPERGALLERY_TEST_C=from-file\n")
	t.Setenv("HYPERGALLERY_TEST_C", "from-env")

	n, err := loadDotEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 variables set, got %d", n)
	}
	if got := os.Getenv("HYPERGALLERY_TEST_C"); got != "from-env" {
		t.Errorf("expected existing value to win, got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	n, err := loadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 variables set, got %d", n)
	}
}

func TestParseDotEnvLine(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"KEY=value", "KEY", "value", true},
		{`KEY="quoted value"`, "KEY", "quoted value", true},
		{`KEY='single quoted'`, "KEY", "single quoted", true},
		{"KEY=a=b=c", "KEY", "a=b=c", true},
		{"export KEY=v", "KEY", "v", true},
		{"  KEY = spaced  ", "KEY", "spaced", true},
		{"KEY=", "KEY", "", true},
		{"# KEY=comment", "", "", false},
		{"", "", "", false},
		{"no-equals", "", "", false},
		{"=value", "", "", false},
	}
	for _, tt := range tests {
		key, value, ok := parseDotEnvLine(tt.line)
		if key != tt.wantKey || value != tt.wantValue || ok != tt.wantOK {
			t.Errorf("parseDotEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, value, ok, tt.wantKey, tt.wantValue, tt.wantOK)
		}
	}
}
