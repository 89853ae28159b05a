package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tubetrans/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "gemini-3-flash-preview" {
		t.Errorf("Model = %q, want 'gemini-3-flash-preview'", cfg.Model)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.TargetLang != "bn" {
		t.Errorf("TargetLang = %q, want 'bn'", cfg.TargetLang)
	}
	if cfg.HTTPTimeout != config.HTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, config.HTTPTimeout)
	}
	if cfg.DefaultTab != TabOriginal {
		t.Errorf("DefaultTab = %q, want original", cfg.DefaultTab)
	}
}

func TestDefaultConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, "/tmp/custom/tubetrans.yaml")
	if got := DefaultConfigPath(); got != "/tmp/custom/tubetrans.yaml" {
		t.Errorf("DefaultConfigPath() = %q", got)
	}
}

func TestLoadConfig_DefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Model != config.DefaultModel {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.ConfigPath() != path {
		t.Errorf("ConfigPath() = %q, want %q", cfg.ConfigPath(), path)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "model: gemini-2.5-flash\nhttp_timeout: 30s\ntarget_lang: xx\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.TargetLang != "bn" {
		t.Errorf("unsupported target language should reset to bn, got %q", cfg.TargetLang)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("absent temperature should keep default, got %v", cfg.Temperature)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "secret-key")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Model = "gemini-custom"
	cfg.DefaultTab = TabSideBySide
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "secret-key") {
		t.Error("API key must not be written to the config file")
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model != "gemini-custom" {
		t.Errorf("Model = %q, want gemini-custom", loaded.Model)
	}
	if loaded.DefaultTab != TabSideBySide {
		t.Errorf("DefaultTab = %q", loaded.DefaultTab)
	}
	if loaded.HTTPTimeout != config.HTTPTimeout {
		t.Errorf("HTTPTimeout did not round-trip: %v", loaded.HTTPTimeout)
	}
	if loaded.APIKey != "secret-key" {
		t.Errorf("APIKey = %q, want from env", loaded.APIKey)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	t.Setenv(config.APIKeyEnvFallback, "fallback")
	if got := APIKeyFromEnv(); got != "fallback" {
		t.Errorf("APIKeyFromEnv() = %q, want fallback", got)
	}

	t.Setenv(config.APIKeyEnv, "primary")
	if got := APIKeyFromEnv(); got != "primary" {
		t.Errorf("APIKeyFromEnv() = %q, want primary", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	os.Unsetenv(config.APIKeyEnv)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(config.APIKeyEnv); got != "from-dotenv" {
		t.Errorf("API_KEY = %q, want from-dotenv", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
