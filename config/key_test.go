package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// point every source at a location that does not exist, then enable
// the ones each test needs
func isolateSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("SECRETS_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("OPENAI_KEY_FILE", filepath.Join(dir, "missing.txt"))
	return dir
}

func TestResolveAPIKey_Env(t *testing.T) {
	isolateSources(t)
	t.Setenv("OPENAI_API_KEY", "  sk-env-123  ")
	key, ok := ResolveAPIKey()
	if !ok || key != "sk-env-123" {
		t.Fatalf("expected trimmed env key, got %q ok=%v", key, ok)
	}
}

func TestResolveAPIKey_SecretsFile(t *testing.T) {
	dir := isolateSources(t)
	secrets := filepath.Join(dir, "app.env")
	if err := os.WriteFile(secrets, []byte("OPENAI_API_KEY=sk-secrets-456\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SECRETS_FILE", secrets)
	key, ok := ResolveAPIKey()
	if !ok || key != "sk-secrets-456" {
		t.Fatalf("expected secrets-file key, got %q ok=%v", key, ok)
	}
}

func TestResolveAPIKey_KeyFile(t *testing.T) {
	dir := isolateSources(t)
	keyFile := filepath.Join(dir, "openai_key.txt")
	if err := os.WriteFile(keyFile, []byte("\n  sk-file-789  \nsecond-line-ignored\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPENAI_KEY_FILE", keyFile)
	key, ok := ResolveAPIKey()
	if !ok || key != "sk-file-789" {
		t.Fatalf("expected first non-blank line of key file, got %q ok=%v", key, ok)
	}
}

func TestResolveAPIKey_EnvWinsOverFiles(t *testing.T) {
	dir := isolateSources(t)
	keyFile := filepath.Join(dir, "openai_key.txt")
	if err := os.WriteFile(keyFile, []byte("sk-file-789\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPENAI_KEY_FILE", keyFile)
	t.Setenv("OPENAI_API_KEY", "sk-env-123")
	key, _ := ResolveAPIKey()
	if key != "sk-env-123" {
		t.Fatalf("env should win over file, got %q", key)
	}
}

func TestResolveAPIKey_Absent(t *testing.T) {
	isolateSources(t)
	key, ok := ResolveAPIKey()
	if ok || key != "" {
		t.Fatalf("expected no key, got %q ok=%v", key, ok)
	}
}

func TestKeyGuidance_NamesAllSources(t *testing.T) {
	isolateSources(t)
	msg := KeyGuidance()
	for _, want := range []string{"OPENAI_API_KEY", "missing.env", "missing.txt"} {
		if !strings.Contains(msg, want) {
			t.Errorf("guidance should mention %q: %s", want, msg)
		}
	}
}
