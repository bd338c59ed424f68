package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	os.Unsetenv("CRYPTOTRACK_API_PROVIDER")
	os.Unsetenv("CRYPTOTRACK_API_VS_CURRENCY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.API.Provider != "coingecko" {
		t.Errorf("API.Provider: got %q, want %q", cfg.API.Provider, "coingecko")
	}
	if cfg.API.VsCurrency != "usd" {
		t.Errorf("API.VsCurrency: got %q, want %q", cfg.API.VsCurrency, "usd")
	}
	if cfg.API.TimeoutSec != 10 {
		t.Errorf("API.TimeoutSec: got %d, want 10", cfg.API.TimeoutSec)
	}
	if cfg.API.Coingecko.BaseURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("API.Coingecko.BaseURL: got %q", cfg.API.Coingecko.BaseURL)
	}
	if cfg.API.Coincap.BaseURL != "https://api.coincap.io/v2" {
		t.Errorf("API.Coincap.BaseURL: got %q", cfg.API.Coincap.BaseURL)
	}
	if cfg.Watch.IntervalSec != 30 {
		t.Errorf("Watch.IntervalSec: got %d, want 30", cfg.Watch.IntervalSec)
	}
	if cfg.Search.Limit != 10 {
		t.Errorf("Search.Limit: got %d, want 10", cfg.Search.Limit)
	}
	if cfg.News.Limit != 10 {
		t.Errorf("News.Limit: got %d, want 10", cfg.News.Limit)
	}
	if len(cfg.News.Feeds) == 0 {
		t.Error("News.Feeds should have defaults")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := &Config{
		API:   APIConfig{TimeoutSec: 10},
		Watch: WatchConfig{IntervalSec: 30},
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}
	if cfg.WatchInterval() != 30*time.Second {
		t.Errorf("WatchInterval() = %v", cfg.WatchInterval())
	}
}

// ── LoadFromFile ──

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  provider: coincap
  vs_currency: eur
  timeout_sec: 5
  coingecko:
    base_url: http://localhost:9999/v3
watch:
  interval_sec: 5
news:
  limit: 3
  feeds:
    - name: Test Feed
      url: http://localhost:9999/rss
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	if cfg.API.Provider != "coincap" {
		t.Errorf("API.Provider: got %q, want %q", cfg.API.Provider, "coincap")
	}
	if cfg.API.VsCurrency != "eur" {
		t.Errorf("API.VsCurrency: got %q, want %q", cfg.API.VsCurrency, "eur")
	}
	if cfg.API.TimeoutSec != 5 {
		t.Errorf("API.TimeoutSec: got %d, want 5", cfg.API.TimeoutSec)
	}
	if cfg.API.Coingecko.BaseURL != "http://localhost:9999/v3" {
		t.Errorf("API.Coingecko.BaseURL: got %q", cfg.API.Coingecko.BaseURL)
	}
	// Unset values keep their defaults.
	if cfg.API.Coincap.BaseURL != "https://api.coincap.io/v2" {
		t.Errorf("API.Coincap.BaseURL: got %q", cfg.API.Coincap.BaseURL)
	}
	if cfg.Watch.IntervalSec != 5 {
		t.Errorf("Watch.IntervalSec: got %d, want 5", cfg.Watch.IntervalSec)
	}
	if len(cfg.News.Feeds) != 1 || cfg.News.Feeds[0].Name != "Test Feed" {
		t.Errorf("News.Feeds: got %+v", cfg.News.Feeds)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

// ── Environment overrides ──

func TestEnvOverride(t *testing.T) {
	t.Setenv("CRYPTOTRACK_API_PROVIDER", "coincap")
	t.Setenv("CRYPTOTRACK_WATCH_INTERVAL_SEC", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.Provider != "coincap" {
		t.Errorf("API.Provider: got %q, want env override %q", cfg.API.Provider, "coincap")
	}
	if cfg.Watch.IntervalSec != 7 {
		t.Errorf("Watch.IntervalSec: got %d, want 7", cfg.Watch.IntervalSec)
	}
}
