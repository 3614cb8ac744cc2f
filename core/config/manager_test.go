package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != "openai" {
		t.Errorf("Provider: got %s, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Temperature != 0.3 {
		t.Errorf("OpenAI.Temperature: got %v, want 0.3", cfg.OpenAI.Temperature)
	}
	if cfg.OpenAI.MaxTokens != 4000 {
		t.Errorf("OpenAI.MaxTokens: got %d, want 4000", cfg.OpenAI.MaxTokens)
	}
	if cfg.Examples.Timeout != 30*time.Second {
		t.Errorf("Examples.Timeout: got %v, want 30s", cfg.Examples.Timeout)
	}
}

func TestManagerGet(t *testing.T) {
	m := NewManager("")

	cfg := m.Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.Provider != "openai" {
		t.Errorf("default provider should be openai, got %s", cfg.Provider)
	}
}

func TestManagerLoadFromFile(t *testing.T) {
	configContent := `
provider: anthropic
anthropic:
  model: claude-test
  max_tokens: 2000
examples:
  base_url: https://qna.example.com
  disabled: true
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	m := NewManager(configPath)
	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := m.Get()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider: got %s, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-test" {
		t.Errorf("Anthropic.Model: got %s, want claude-test", cfg.Anthropic.Model)
	}
	if cfg.Anthropic.MaxTokens != 2000 {
		t.Errorf("Anthropic.MaxTokens: got %d, want 2000", cfg.Anthropic.MaxTokens)
	}
	if cfg.Examples.BaseURL != "https://qna.example.com" {
		t.Errorf("Examples.BaseURL: got %s", cfg.Examples.BaseURL)
	}
	if !cfg.Examples.Disabled {
		t.Error("Examples.Disabled should be true")
	}
	// Untouched sections keep their defaults.
	if cfg.OpenAI.MaxTokens != 4000 {
		t.Errorf("OpenAI.MaxTokens default lost: got %d", cfg.OpenAI.MaxTokens)
	}
}

func TestManagerMissingFileUsesDefaults(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.yaml"))
	if err := m.Load(); err != nil {
		t.Fatalf("Load with missing file should not fail: %v", err)
	}
	if m.Get().Provider != "openai" {
		t.Errorf("expected defaults, got provider %s", m.Get().Provider)
	}
}

func TestManagerEnvironmentOverride(t *testing.T) {
	t.Setenv("FIGGEN_PROVIDER", "anthropic")
	t.Setenv("FIGGEN_OPENAI_API_KEY", "sk-test")
	t.Setenv("FIGGEN_QNA_BASE_URL", "https://qna.internal")
	t.Setenv("FIGGEN_TIMEOUT", "45s")

	m := NewManager("")
	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := m.Get()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider: got %s, want anthropic", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey: got %s", cfg.OpenAI.APIKey)
	}
	if cfg.Examples.BaseURL != "https://qna.internal" {
		t.Errorf("Examples.BaseURL: got %s", cfg.Examples.BaseURL)
	}
	if cfg.OpenAI.Timeout != 45*time.Second || cfg.Anthropic.Timeout != 45*time.Second {
		t.Errorf("Timeout override not applied: %v / %v", cfg.OpenAI.Timeout, cfg.Anthropic.Timeout)
	}
}

func TestManagerWatchers(t *testing.T) {
	m := NewManager("")

	var seen *Config
	m.Watch(func(cfg *Config) { seen = cfg })

	if err := m.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if seen == nil {
		t.Fatal("watcher was not notified")
	}
	if seen != m.Get() {
		t.Error("watcher should receive the active snapshot")
	}
}
