// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/snapsphere/internal/tui/theme"
	"github.com/javiermolinar/snapsphere/internal/unsplash"
)

// Config holds the application configuration.
type Config struct {
	Unsplash UnsplashConfig `toml:"unsplash"`
	UI       UIConfig       `toml:"ui"`
}

// UnsplashConfig holds API settings.
type UnsplashConfig struct {
	BaseURL   string `toml:"base_url"`   // e.g., "https://api.unsplash.com"
	AccessKey string `toml:"access_key"` // public client id
	Timeout   string `toml:"timeout"`    // e.g., "15s"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	DarkTheme  string `toml:"dark_theme"`  // "mocha", "macchiato", "frappe"
	LightTheme string `toml:"light_theme"` // "latte", "light"
	StartDark  bool   `toml:"start_dark"`
	Mouse      bool   `toml:"mouse"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Unsplash: UnsplashConfig{
			BaseURL: unsplash.DefaultBaseURL,
			Timeout: "15s",
		},
		UI: UIConfig{
			DarkTheme:  theme.DefaultDark,
			LightTheme: theme.DefaultLight,
			StartDark:  false,
			Mouse:      true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "snapsphere", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	// Keys pasted into files or env often carry a newline.
	cfg.Unsplash.AccessKey = strings.TrimSpace(cfg.Unsplash.AccessKey)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// UNSPLASH_ACCESS_KEY is the name most Unsplash tooling uses.
	if v := os.Getenv("UNSPLASH_ACCESS_KEY"); v != "" {
		cfg.Unsplash.AccessKey = v
	}
	if v := os.Getenv("SNAPSPHERE_ACCESS_KEY"); v != "" {
		cfg.Unsplash.AccessKey = v
	}
	if v := os.Getenv("SNAPSPHERE_BASE_URL"); v != "" {
		cfg.Unsplash.BaseURL = v
	}
	if v := os.Getenv("SNAPSPHERE_TIMEOUT"); v != "" {
		cfg.Unsplash.Timeout = v
	}

	if v := os.Getenv("SNAPSPHERE_DARK_THEME"); v != "" {
		cfg.UI.DarkTheme = v
	}
	if v := os.Getenv("SNAPSPHERE_LIGHT_THEME"); v != "" {
		cfg.UI.LightTheme = v
	}
	if v := os.Getenv("SNAPSPHERE_START_DARK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing SNAPSPHERE_START_DARK: %w", err)
		}
		cfg.UI.StartDark = b
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Unsplash.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", c.Unsplash.BaseURL)
	}

	if _, err := c.RequestTimeout(); err != nil {
		return err
	}

	if !theme.IsDarkTheme(c.UI.DarkTheme) {
		return fmt.Errorf("dark_theme must be one of %s, got %q", strings.Join(theme.DarkThemes(), ", "), c.UI.DarkTheme)
	}
	if !theme.IsLightTheme(c.UI.LightTheme) {
		return fmt.Errorf("light_theme must be one of %s, got %q", strings.Join(theme.LightThemes(), ", "), c.UI.LightTheme)
	}
	return nil
}

// RequestTimeout parses the configured HTTP timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Unsplash.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout must be a duration like 15s, got %q", c.Unsplash.Timeout)
	}
	if d <= 0 {
		return 0, errors.New("timeout must be positive")
	}
	return d, nil
}

// HasAccessKey reports whether an API key is configured.
func (c *Config) HasAccessKey() bool {
	return c.Unsplash.AccessKey != ""
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// The access key is a credential; keep the file private.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
