package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tubetrans/internal/config"
	"tubetrans/internal/text"
)

// Config holds application settings.
// The API key is read from the environment only and never written to disk.
type Config struct {
	// Gemini settings
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"` // translation sampling temperature

	// Translation target (ISO 639-1)
	TargetLang string `yaml:"target_lang"`

	// Transport
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// Viewer
	DefaultTab ViewTab `yaml:"default_tab"`

	// Logging (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	APIKey string `yaml:"-"`

	path string
}

func DefaultConfig() *Config {
	return &Config{
		Model:       config.DefaultModel,
		BaseURL:     config.DefaultBaseURL,
		Temperature: config.TranslationTemperature,
		TargetLang:  config.DefaultTargetLang,
		HTTPTimeout: config.HTTPTimeout,
		DefaultTab:  TabOriginal,
		LogLevel:    "info",
	}
}

// DefaultConfigPath returns $TUBETRANS_CONFIG or <user config dir>/tubetrans/config.yaml.
func DefaultConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(config.ConfigPathEnv)); p != "" {
		return filepath.Clean(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, config.AppName, "config.yaml")
}

// ConfigPath returns the file this config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	if c.path == "" {
		return DefaultConfigPath()
	}
	return c.path
}

// LoadConfig reads path (DefaultConfigPath when empty) over the defaults.
// A missing file yields the defaults. The API key is taken from the environment.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.normalize()
	cfg.APIKey = APIKeyFromEnv()
	return cfg, nil
}

// normalize restores defaults for fields left blank or out of range.
func (c *Config) normalize() {
	def := DefaultConfig()
	if strings.TrimSpace(c.Model) == "" {
		c.Model = def.Model
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		c.Temperature = def.Temperature
	}
	if !text.IsSupportedLanguage(c.TargetLang) {
		c.TargetLang = def.TargetLang
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = def.HTTPTimeout
	}
	switch c.DefaultTab {
	case TabOriginal, TabTranslated, TabSideBySide:
	default:
		c.DefaultTab = def.DefaultTab
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Save normalizes c and writes it to ConfigPath.
func (c *Config) Save() error {
	c.normalize()
	configPath := c.ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = config.DotEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// APIKeyFromEnv returns API_KEY, falling back to GEMINI_API_KEY.
func APIKeyFromEnv() string {
	if k := strings.TrimSpace(os.Getenv(config.APIKeyEnv)); k != "" {
		return k
	}
	return strings.TrimSpace(os.Getenv(config.APIKeyEnvFallback))
}
