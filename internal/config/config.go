package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the application configuration. Preferences live in
// ~/.stride/config.toml; credentials come from the environment (a .env file
// in the working directory is honored) and are never written to disk outside
// the token store.
type Config struct {
	Strava StravaConfig `toml:"-"`
	Maps   MapsConfig   `toml:"maps"`
	Fetch  FetchConfig  `toml:"fetch"`
}

// StravaConfig holds Strava API credentials.
type StravaConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// MapsConfig holds static-map rendering settings. APIKey is optional: with
// no key configured, reports simply contain no map images.
type MapsConfig struct {
	APIKey string `toml:"-"`
	Size   string `toml:"size"`
}

// FetchConfig holds API fetch defaults.
type FetchConfig struct {
	PerPage int `toml:"per_page"`
}

// ErrNoConfig is returned when the config file doesn't exist. Callers may
// treat it as non-fatal since every file setting has a default.
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Maps:  MapsConfig{Size: "600x400"},
		Fetch: FetchConfig{PerPage: 10},
	}
}

// Load reads config.toml (if present), then overlays credentials from the
// environment. A .env file in the working directory is loaded first, the way
// the rest of the Strava tooling expects.
func Load() (*Config, error) {
	// Ignore a missing .env; real env vars still apply.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Maps.Size == "" {
		cfg.Maps.Size = DefaultConfig().Maps.Size
	}
	if cfg.Fetch.PerPage <= 0 {
		cfg.Fetch.PerPage = DefaultConfig().Fetch.PerPage
	}

	cfg.Strava.ClientID = os.Getenv("STRAVA_CLIENT_ID")
	cfg.Strava.ClientSecret = os.Getenv("STRAVA_CLIENT_SECRET")
	cfg.Strava.RefreshToken = os.Getenv("STRAVA_REFRESH_TOKEN")
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	return &cfg, nil
}

// Validate checks that required credentials are present.
func (c *Config) Validate() error {
	if c.Strava.ClientID == "" {
		return errors.New("STRAVA_CLIENT_ID is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.ClientSecret == "" {
		return errors.New("STRAVA_CLIENT_SECRET is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.RefreshToken == "" {
		return errors.New("STRAVA_REFRESH_TOKEN is required")
	}
	return nil
}

// CreateExample writes an example config file unless one already exists.
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	example := `# stride configuration. Credentials are NOT stored here; set
# STRAVA_CLIENT_ID, STRAVA_CLIENT_SECRET and STRAVA_REFRESH_TOKEN in the
# environment or a .env file. GOOGLE_MAPS_API_KEY enables route map images.

[maps]
size = "600x400"

[fetch]
per_page = 10
`
	if err := os.WriteFile(path, []byte(example), 0644); err != nil {
		return fmt.Errorf("writing example config: %w", err)
	}
	return nil
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".stride", "config.toml"), nil
}

// GetConfigDir returns the path to the config directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".stride"), nil
}
