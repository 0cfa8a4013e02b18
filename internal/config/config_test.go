package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STRAVA_CLIENT_ID", "12345")
	t.Setenv("STRAVA_CLIENT_SECRET", "shh")
	t.Setenv("STRAVA_REFRESH_TOKEN", "refresh")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Maps.Size != "600x400" {
		t.Errorf("maps size = %q", cfg.Maps.Size)
	}
	if cfg.Fetch.PerPage != 10 {
		t.Errorf("per_page = %d", cfg.Fetch.PerPage)
	}
	if cfg.Strava.ClientID != "12345" {
		t.Errorf("client id = %q", cfg.Strava.ClientID)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	setEnv(t)
	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".stride")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "[maps]\nsize = \"800x600\"\n\n[fetch]\nper_page = 25\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Maps.Size != "800x600" {
		t.Errorf("maps size = %q, want 800x600", cfg.Maps.Size)
	}
	if cfg.Fetch.PerPage != 25 {
		t.Errorf("per_page = %d, want 25", cfg.Fetch.PerPage)
	}
}

func TestValidateMissingCredentials(t *testing.T) {
	setEnv(t)
	t.Setenv("STRAVA_CLIENT_ID", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("missing client id should fail validation")
	}
}

func TestCreateExample(t *testing.T) {
	setEnv(t)

	if err := CreateExample(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(os.Getenv("HOME"), ".stride", "config.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("example config missing: %v", err)
	}
	// A second call must not clobber the existing file.
	if err := CreateExample(); err != nil {
		t.Fatal(err)
	}
}
