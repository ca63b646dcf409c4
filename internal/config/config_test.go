package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if !strings.HasPrefix(cfg.DataDir, home) {
		t.Fatalf("DataDir = %q, want under %q", cfg.DataDir, home)
	}
}

func TestLoad_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	content := "api_url = \"https://store.example.com\"\ndata_dir = \"" + tmp + "\"\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://store.example.com" {
		t.Fatalf("APIURL = %q, want https://store.example.com", cfg.APIURL)
	}
	if cfg.DataDir != tmp {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, tmp)
	}
}

func TestLoad_EmptyFieldsFallBackToDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgFile, []byte("api_url = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
}

func TestLoad_InvalidTOMLIsAnError(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(cfgFile); err == nil {
		t.Fatal("Load returned nil error for invalid TOML, want error")
	}
}

func TestConfig_DerivedPaths(t *testing.T) {
	cfg := Config{DataDir: "/var/lib/wishlet"}

	if got := cfg.WishlistPath(); got != filepath.Join("/var/lib/wishlet", "wishlist.json") {
		t.Fatalf("WishlistPath() = %q", got)
	}
	if got := cfg.LogPath(); got != filepath.Join("/var/lib/wishlet", "wishlet.log") {
		t.Fatalf("LogPath() = %q", got)
	}
}
